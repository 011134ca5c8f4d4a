package service

import (
	"math/rand"
	"testing"

	"flashcarder/internal/domain"
	"flashcarder/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func drillRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestFlashcardSession_Empty(t *testing.T) {
	session := NewFlashcardSession(nil, drillRand())

	_, ok := session.Current()
	assert.False(t, ok)

	// All operations are no-ops on an empty snapshot
	session.Reveal()
	assert.False(t, session.Revealed())

	session.Next()
	_, ok = session.Current()
	assert.False(t, ok)
}

func TestFlashcardSession_SingleCard(t *testing.T) {
	words := testutil.NewTestWords([2]string{"cat", "貓"})
	session := NewFlashcardSession(words, drillRand())

	current, ok := session.Current()
	assert.True(t, ok)
	assert.Equal(t, "cat", current.English)

	// Next with one card keeps showing the same card
	session.Next()
	next, ok := session.Current()
	assert.True(t, ok)
	assert.Equal(t, current.ID, next.ID)
}

func TestFlashcardSession_NextNeverRepeats(t *testing.T) {
	words := testutil.NewTestWords(
		[2]string{"cat", "貓"},
		[2]string{"dog", "狗"},
		[2]string{"bird", "鳥"},
	)
	session := NewFlashcardSession(words, drillRand())

	prev, ok := session.Current()
	assert.True(t, ok)

	for i := 0; i < 200; i++ {
		session.Next()
		current, ok := session.Current()
		assert.True(t, ok)
		assert.NotEqual(t, prev.ID, current.ID, "consecutive draws must differ")
		prev = current
	}
}

func TestFlashcardSession_Reveal(t *testing.T) {
	words := testutil.NewTestWords([2]string{"cat", "貓"}, [2]string{"dog", "狗"})
	session := NewFlashcardSession(words, drillRand())

	assert.False(t, session.Revealed())

	session.Reveal()
	assert.True(t, session.Revealed())

	session.Reveal()
	assert.False(t, session.Revealed())

	// Next hides the translation again
	session.Reveal()
	session.Next()
	assert.False(t, session.Revealed())
}

func TestFlashcardSession_IgnoresLaterMutations(t *testing.T) {
	words := testutil.NewTestWords([2]string{"cat", "貓"})
	session := NewFlashcardSession(words, drillRand())

	words[0].English = "mutated"

	current, ok := session.Current()
	assert.True(t, ok)
	assert.Equal(t, "cat", current.English)
}

func TestQuizSession_Empty(t *testing.T) {
	session := NewQuizSession(nil)

	_, ok := session.Current()
	assert.False(t, ok)

	assert.False(t, session.Submit("anything"))
	session.Advance()

	_, answered := session.Result()
	assert.False(t, answered)
}

func TestQuizSession_Submit(t *testing.T) {
	tests := []struct {
		name     string
		chinese  string
		answer   string
		expected bool
	}{
		{
			name:     "exact match",
			chinese:  "正確答案",
			answer:   "正確答案",
			expected: true,
		},
		{
			name:     "trailing whitespace counts",
			chinese:  "正確答案",
			answer:   "正確答案 ",
			expected: false,
		},
		{
			name:     "different answer",
			chinese:  "正確答案",
			answer:   "錯誤",
			expected: false,
		},
		{
			name:     "empty answer",
			chinese:  "正確答案",
			answer:   "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewQuizSession(testutil.NewTestWords([2]string{"answer", tt.chinese}))

			result := session.Submit(tt.answer)

			assert.Equal(t, tt.expected, result)
			correct, answered := session.Result()
			assert.True(t, answered)
			assert.Equal(t, tt.expected, correct)
		})
	}
}

func TestQuizSession_AdvanceWraps(t *testing.T) {
	words := testutil.NewTestWords(
		[2]string{"cat", "貓"},
		[2]string{"dog", "狗"},
		[2]string{"bird", "鳥"},
	)
	session := NewQuizSession(words)

	expected := []string{"cat", "dog", "bird", "cat", "dog"}
	for i, english := range expected {
		current, ok := session.Current()
		assert.True(t, ok)
		assert.Equal(t, english, current.English, "step %d", i)
		session.Advance()
	}
}

func TestQuizSession_AdvanceClearsResult(t *testing.T) {
	session := NewQuizSession(testutil.NewTestWords([2]string{"cat", "貓"}, [2]string{"dog", "狗"}))

	session.Submit("貓")
	_, answered := session.Result()
	assert.True(t, answered)

	session.Advance()
	_, answered = session.Result()
	assert.False(t, answered)
}

func TestQuizSession_IgnoresLaterMutations(t *testing.T) {
	words := []domain.Word{testutil.NewTestWord("cat", "貓")}
	session := NewQuizSession(words)

	words[0].Chinese = "mutated"

	assert.True(t, session.Submit("貓"))
}
