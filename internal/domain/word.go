package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word represents a saved English-Chinese translation pair
type Word struct {
	ID        string    `json:"id"`
	English   string    `json:"english"`
	Chinese   string    `json:"chinese"`
	CreatedAt time.Time `json:"created_at"`
}

// NewWord creates a word with a fresh identifier.
// The identifier is assigned here once and never changes afterwards.
func NewWord(english, chinese string) Word {
	return Word{
		ID:        uuid.NewString(),
		English:   english,
		Chinese:   chinese,
		CreatedAt: time.Now(),
	}
}

// DedupKey returns the key used to detect already-saved words
func (w Word) DedupKey() string {
	return strings.ToLower(w.English)
}
