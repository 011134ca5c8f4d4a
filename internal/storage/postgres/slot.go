package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"flashcarder/internal/domain"
)

// slotKey is the fixed name of the key-value slot holding the sequence
const slotKey = "words"

// SlotStorage implements storage.WordStorage over a single key-value row
type SlotStorage struct {
	db *sql.DB
}

// NewSlotStorage creates a new postgres-backed slot storage
func NewSlotStorage(db *sql.DB) *SlotStorage {
	return &SlotStorage{db: db}
}

// Load reads and decodes the slot payload.
// An absent row means nothing has been saved yet.
func (s *SlotStorage) Load() ([]domain.Word, error) {
	var payload string
	query := `SELECT payload FROM word_slots WHERE slot_key = $1`
	err := s.db.QueryRow(query, slotKey).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var words []domain.Word
	if err := json.Unmarshal([]byte(payload), &words); err != nil {
		return nil, fmt.Errorf("decode slot payload: %w", err)
	}

	return words, nil
}

// Save upserts the encoded sequence into the slot row
func (s *SlotStorage) Save(words []domain.Word) error {
	payload, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("encode slot payload: %w", err)
	}

	query := `
		INSERT INTO word_slots (slot_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	_, err = s.db.Exec(query, slotKey, string(payload))
	return err
}
