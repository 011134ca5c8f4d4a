package storage

import "flashcarder/internal/domain"

// WordStorage persists the full word sequence to a durable slot.
// Load returns an empty sequence when nothing has been stored yet.
type WordStorage interface {
	Load() ([]domain.Word, error)
	Save(words []domain.Word) error
}
