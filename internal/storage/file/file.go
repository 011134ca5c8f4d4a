package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flashcarder/internal/domain"
)

// Storage keeps the word sequence as a single JSON document on disk
type Storage struct {
	path string
}

// New creates a file-backed storage writing to the given path
func New(path string) *Storage {
	return &Storage{path: path}
}

// Load reads the stored sequence. A missing file means nothing has been
// saved yet and yields an empty sequence without an error.
func (s *Storage) Load() ([]domain.Word, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read words file: %w", err)
	}

	var words []domain.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("decode words file: %w", err)
	}

	return words, nil
}

// Save replaces the stored sequence. The document is written to a temp
// file and renamed into place so the slot is never left torn.
func (s *Storage) Save(words []domain.Word) error {
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("encode words: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".words-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace words file: %w", err)
	}

	return nil
}
