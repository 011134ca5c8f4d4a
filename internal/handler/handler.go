package handler

import (
	"math/rand"
	"sync"
	"time"

	"flashcarder/internal/domain"
	"flashcarder/internal/service"
	"flashcarder/internal/translator"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	store      *service.WordStore
	translator translator.Translator
	logger     *zap.Logger

	// Per-chat interaction state and running drill sessions
	mu         sync.RWMutex
	states     map[int64]*domain.StateData
	flashcards map[int64]*service.FlashcardSession
	quizzes    map[int64]*service.QuizSession
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	store *service.WordStore,
	trans translator.Translator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		store:      store,
		translator: trans,
		logger:     logger,
		states:     make(map[int64]*domain.StateData),
		flashcards: make(map[int64]*service.FlashcardSession),
		quizzes:    make(map[int64]*service.QuizSession),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnSave, h.handleSave)
	h.bot.Handle(&btnDiscard, h.handleDiscard)
	h.bot.Handle(&btnFlashcards, h.handleFlashcards)
	h.bot.Handle(&btnReveal, h.handleReveal)
	h.bot.Handle(&btnNextCard, h.handleNextCard)
	h.bot.Handle(&btnQuiz, h.handleQuiz)
	h.bot.Handle(&btnQuizNext, h.handleQuizNext)
	h.bot.Handle(&btnWordList, h.handleWordList)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns the chat's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.mu.RLock()
	defer h.mu.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets the chat's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.states[userID] = state
}

// ResetState resets the chat to idle and drops any running drill session
func (h *Handler) ResetState(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.states[userID] = &domain.StateData{State: domain.StateIdle}
	delete(h.flashcards, userID)
	delete(h.quizzes, userID)
}

func (h *Handler) flashcardSession(userID int64) *service.FlashcardSession {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.flashcards[userID]
}

func (h *Handler) quizSession(userID int64) *service.QuizSession {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.quizzes[userID]
}

func newDrillRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Inline keyboard buttons
var (
	btnFlashcards = tele.Btn{
		Unique: "flashcards",
		Text:   "🎴 Flashcards",
	}
	btnQuiz = tele.Btn{
		Unique: "quiz",
		Text:   "📝 Quiz",
	}
	btnWordList = tele.Btn{
		Unique: "word_list",
		Text:   "📖 Saved words",
	}
	btnSave = tele.Btn{
		Unique: "save",
		Text:   "✅ Save",
	}
	btnDiscard = tele.Btn{
		Unique: "discard",
		Text:   "❌ Discard",
	}
	btnReveal = tele.Btn{
		Unique: "reveal",
		Text:   "👁 Reveal",
	}
	btnNextCard = tele.Btn{
		Unique: "next_card",
		Text:   "➡️ Next",
	}
	btnQuizNext = tele.Btn{
		Unique: "quiz_next",
		Text:   "➡️ Next question",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnFlashcards),
		menu.Row(btnQuiz),
		menu.Row(btnWordList),
	)
	return menu
}

const mainMenuText = "🏠 Main menu\n\nSend me an English word to translate, or pick a drill:"
