package testutil

import (
	"time"

	"flashcarder/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word with a fixed creation time
func NewTestWord(english, chinese string) domain.Word {
	return domain.Word{
		ID:        uuid.NewString(),
		English:   english,
		Chinese:   chinese,
		CreatedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

// NewTestWords creates a sequence of distinct test words
func NewTestWords(pairs ...[2]string) []domain.Word {
	words := make([]domain.Word, 0, len(pairs))
	for _, p := range pairs {
		words = append(words, NewTestWord(p[0], p[1]))
	}
	return words
}
