package service

import (
	"math/rand"

	"flashcarder/internal/domain"
)

// FlashcardSession drills a fixed snapshot of words with random draws.
// The session copies the snapshot at construction and does not observe
// later store mutations.
type FlashcardSession struct {
	words    []domain.Word
	rng      *rand.Rand
	index    int
	revealed bool
}

// NewFlashcardSession starts a session over the snapshot. With a
// non-empty snapshot the first card is drawn uniformly at random.
func NewFlashcardSession(words []domain.Word, rng *rand.Rand) *FlashcardSession {
	s := &FlashcardSession{
		words: append([]domain.Word(nil), words...),
		rng:   rng,
	}
	if len(s.words) > 0 {
		s.index = rng.Intn(len(s.words))
	}
	return s
}

// Current returns the card being shown, or false on an empty snapshot
func (s *FlashcardSession) Current() (domain.Word, bool) {
	if len(s.words) == 0 {
		return domain.Word{}, false
	}
	return s.words[s.index], true
}

// Reveal toggles whether the translation side is shown
func (s *FlashcardSession) Reveal() {
	if len(s.words) == 0 {
		return
	}
	s.revealed = !s.revealed
}

// Revealed reports whether the translation side is currently shown
func (s *FlashcardSession) Revealed() bool {
	return s.revealed
}

// Next draws a new card and hides the translation again. While more than
// one card exists the draw is resampled until it differs from the
// current one; with a single card the index stays put.
func (s *FlashcardSession) Next() {
	if len(s.words) == 0 {
		return
	}

	s.revealed = false

	if len(s.words) == 1 {
		return
	}

	next := s.index
	for next == s.index {
		next = s.rng.Intn(len(s.words))
	}
	s.index = next
}

// QuizSession iterates a fixed snapshot in order and checks typed
// answers against the stored translation.
type QuizSession struct {
	words       []domain.Word
	index       int
	lastCorrect *bool
}

// NewQuizSession starts a quiz over the snapshot, beginning at the first
// word
func NewQuizSession(words []domain.Word) *QuizSession {
	return &QuizSession{
		words: append([]domain.Word(nil), words...),
	}
}

// Current returns the word being asked, or false on an empty snapshot
func (s *QuizSession) Current() (domain.Word, bool) {
	if len(s.words) == 0 {
		return domain.Word{}, false
	}
	return s.words[s.index], true
}

// Submit checks the answer against the current word's Chinese text.
// The comparison is exact byte equality: case, punctuation and
// whitespace all count.
func (s *QuizSession) Submit(answer string) bool {
	if len(s.words) == 0 {
		return false
	}
	correct := answer == s.words[s.index].Chinese
	s.lastCorrect = &correct
	return correct
}

// Advance moves to the next word, wrapping to the start after the last
// one, and clears the last answer result
func (s *QuizSession) Advance() {
	if len(s.words) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.words)
	s.lastCorrect = nil
}

// Result returns the outcome of the last Submit since the last Advance.
// answered is false when no answer has been submitted for this card.
func (s *QuizSession) Result() (correct, answered bool) {
	if s.lastCorrect == nil {
		return false, false
	}
	return *s.lastCorrect, true
}
