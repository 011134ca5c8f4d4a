package service

import (
	"strings"
	"sync"

	"flashcarder/internal/domain"
	"flashcarder/internal/storage"

	"go.uber.org/zap"
)

// WordStore is the single authoritative in-memory collection of saved
// words. All access is serialized through its mutex; the persisted copy
// is kept in sync on every successful insert.
type WordStore struct {
	storage storage.WordStorage
	logger  *zap.Logger

	mu    sync.RWMutex
	words []domain.Word
	subs  []func([]domain.Word)
}

// NewWordStore creates a word store backed by the given storage
func NewWordStore(st storage.WordStorage, logger *zap.Logger) *WordStore {
	return &WordStore{
		storage: st,
		logger:  logger,
	}
}

// Init loads the persisted sequence into memory. Missing or unreadable
// data degrades to an empty collection and never fails the caller.
func (s *WordStore) Init() {
	words, err := s.storage.Load()
	if err != nil {
		s.logger.Warn("Failed to load saved words, starting with empty collection",
			zap.Error(err),
		)
		words = nil
	}

	s.mu.Lock()
	s.words = words
	s.mu.Unlock()

	s.logger.Info("Word store initialized", zap.Int("count", len(words)))
}

// Add inserts the pair at the end of the collection unless a word with
// the same English text (case-insensitive) is already stored. A duplicate
// is a silent no-op returning the existing entry. A successful insert is
// persisted immediately, best-effort.
func (s *WordStore) Add(english, chinese string) (domain.Word, bool) {
	key := strings.ToLower(english)

	s.mu.Lock()
	for _, w := range s.words {
		if w.DedupKey() == key {
			s.mu.Unlock()
			return w, false
		}
	}

	word := domain.NewWord(english, chinese)
	s.words = append(s.words, word)
	snapshot := s.snapshotLocked()
	subs := append([]func([]domain.Word){}, s.subs...)

	// Persist while still holding the lock so concurrent inserts cannot
	// land their snapshots in the durable slot out of order.
	s.persist(snapshot)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}

	return word, true
}

// List returns a copy of the current ordered snapshot
func (s *WordStore) List() []domain.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of saved words
func (s *WordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Subscribe registers fn to be called with a fresh snapshot after every
// successful insert. Subscribers must not mutate the snapshot.
func (s *WordStore) Subscribe(fn func([]domain.Word)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// persist writes the snapshot through the storage. Failures are logged
// and swallowed; the in-memory state stays authoritative for the session.
func (s *WordStore) persist(words []domain.Word) {
	if err := s.storage.Save(words); err != nil {
		s.logger.Warn("Failed to persist words, keeping in-memory state",
			zap.Error(err),
			zap.Int("count", len(words)),
		)
	}
}

func (s *WordStore) snapshotLocked() []domain.Word {
	return append([]domain.Word(nil), s.words...)
}
