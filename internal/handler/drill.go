package handler

import (
	"fmt"

	"flashcarder/internal/domain"
	"flashcarder/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleFlashcards starts a flashcard session over the current snapshot
func (h *Handler) handleFlashcards(c tele.Context) error {
	userID := c.Sender().ID

	words := h.store.List()
	if len(words) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "You have no saved words yet",
			ShowAlert: true,
		})
	}

	session := service.NewFlashcardSession(words, newDrillRand())

	h.mu.Lock()
	h.states[userID] = &domain.StateData{State: domain.StateIdle}
	h.flashcards[userID] = session
	delete(h.quizzes, userID)
	h.mu.Unlock()

	h.logger.Info("Flashcard session started",
		zap.Int64("user_id", userID),
		zap.Int("cards", len(words)),
	)

	return h.renderFlashcard(c, session)
}

// renderFlashcard shows the current card, with the translation when revealed
func (h *Handler) renderFlashcard(c tele.Context, session *service.FlashcardSession) error {
	userID := c.Sender().ID

	word, ok := session.Current()
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "No cards in this session"})
	}

	text := fmt.Sprintf("🎴 %s", word.English)
	if session.Revealed() {
		text += fmt.Sprintf("\n\n🔄 %s", word.Chinese)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnReveal, btnNextCard),
		markup.Row(btnMainMenu),
	)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleReveal toggles the translation side of the current card
func (h *Handler) handleReveal(c tele.Context) error {
	userID := c.Sender().ID

	session := h.flashcardSession(userID)
	if session == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Session is over, start a new one",
			ShowAlert: true,
		})
	}

	session.Reveal()
	return h.renderFlashcard(c, session)
}

// handleNextCard draws the next card
func (h *Handler) handleNextCard(c tele.Context) error {
	userID := c.Sender().ID

	session := h.flashcardSession(userID)
	if session == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Session is over, start a new one",
			ShowAlert: true,
		})
	}

	session.Next()
	return h.renderFlashcard(c, session)
}

// handleQuiz starts a quiz session over the current snapshot
func (h *Handler) handleQuiz(c tele.Context) error {
	userID := c.Sender().ID

	words := h.store.List()
	if len(words) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "You have no saved words yet",
			ShowAlert: true,
		})
	}

	session := service.NewQuizSession(words)

	h.mu.Lock()
	h.states[userID] = &domain.StateData{State: domain.StateQuizAnswer}
	h.quizzes[userID] = session
	delete(h.flashcards, userID)
	h.mu.Unlock()

	h.logger.Info("Quiz session started",
		zap.Int64("user_id", userID),
		zap.Int("cards", len(words)),
	)

	return h.renderQuizQuestion(c, session)
}

// renderQuizQuestion asks for the translation of the current word
func (h *Handler) renderQuizQuestion(c tele.Context, session *service.QuizSession) error {
	userID := c.Sender().ID

	word, ok := session.Current()
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "No cards in this session"})
	}

	text := fmt.Sprintf("📝 Translate:\n\n%s\n\nType your answer.", word.English)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleQuizAnswer checks the typed answer against the current card
func (h *Handler) handleQuizAnswer(c tele.Context, answer string) error {
	userID := c.Sender().ID

	session := h.quizSession(userID)
	if session == nil {
		// Quiz state survived a lost session, fall back to the query flow
		h.ResetState(userID)
		return h.handleTranslateQuery(c, answer)
	}

	correct := session.Submit(answer)
	word, ok := session.Current()
	if !ok {
		h.ResetState(userID)
		return c.Send(mainMenuText, mainMenuMarkup())
	}

	var text string
	if correct {
		text = fmt.Sprintf("✅ Correct!\n\n📝 %s\n🔄 %s", word.English, word.Chinese)
	} else {
		text = fmt.Sprintf("❌ Wrong.\n\n📝 %s\n🔄 %s", word.English, word.Chinese)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnQuizNext),
		markup.Row(btnMainMenu),
	)

	return c.Send(text, markup)
}

// handleQuizNext advances the quiz to the next word, wrapping at the end
func (h *Handler) handleQuizNext(c tele.Context) error {
	userID := c.Sender().ID

	session := h.quizSession(userID)
	if session == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Session is over, start a new one",
			ShowAlert: true,
		})
	}

	session.Advance()
	return h.renderQuizQuestion(c, session)
}
