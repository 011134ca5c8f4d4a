package testutil

import (
	"context"

	"flashcarder/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordStorage is a mock for storage.WordStorage
type MockWordStorage struct {
	mock.Mock
}

func (m *MockWordStorage) Load() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordStorage) Save(words []domain.Word) error {
	args := m.Called(words)
	return args.Error(0)
}

// MockTranslator is a mock for translator.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
