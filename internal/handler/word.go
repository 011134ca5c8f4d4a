package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flashcarder/internal/domain"
	"flashcarder/internal/translator"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	if state.State == domain.StateQuizAnswer {
		return h.handleQuizAnswer(c, text)
	}

	// Idle or pending confirmation: treat the text as a new query.
	// A fresh query replaces any unconfirmed pair.
	return h.handleTranslateQuery(c, text)
}

// handleTranslateQuery asks the gateway for a translation and shows the
// save-confirmation prompt
func (h *Handler) handleTranslateQuery(c tele.Context, text string) error {
	userID := c.Sender().ID

	res := <-translator.TranslateAsync(context.Background(), h.translator, text)
	if res.Err != nil {
		return h.sendTranslateError(c, userID, text, res.Err)
	}

	h.SetState(userID, &domain.StateData{
		State:          domain.StateConfirmSave,
		PendingEnglish: text,
		PendingChinese: res.Text,
	})

	h.logger.Info("Translation received",
		zap.Int64("user_id", userID),
		zap.String("english", text),
	)

	confirmMarkup := &tele.ReplyMarkup{}
	confirmMarkup.Inline(confirmMarkup.Row(btnSave, btnDiscard))

	msg := fmt.Sprintf("📝 %s\n🔄 %s\n\nSave this pair?", text, res.Text)
	return c.Send(msg, confirmMarkup)
}

// sendTranslateError maps gateway failures to user-facing messages
func (h *Handler) sendTranslateError(c tele.Context, userID int64, text string, err error) error {
	switch {
	case errors.Is(err, translator.ErrEmptyInput):
		return c.Send("Send me an English word to translate.")
	case errors.Is(err, translator.ErrNetwork):
		h.logger.Error("Translation request failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("english", text),
		)
		return c.Send("🌐 Translation service is unreachable. Try again later.")
	case errors.Is(err, translator.ErrMalformedResponse):
		h.logger.Error("Translation response unusable",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("english", text),
		)
		return c.Send("🤔 Translation service returned something unexpected. Try again later.")
	default:
		h.logger.Error("Translation failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Something went wrong. Try again later.")
	}
}

// handleSave persists the pending pair through the word store
func (h *Handler) handleSave(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateConfirmSave || state.PendingEnglish == "" {
		return c.Respond(&tele.CallbackResponse{Text: "Nothing to save"})
	}

	word, inserted := h.store.Add(state.PendingEnglish, state.PendingChinese)
	h.ResetState(userID)

	var text string
	if inserted {
		h.logger.Info("Word pair saved",
			zap.Int64("user_id", userID),
			zap.String("word_id", word.ID),
			zap.String("english", word.English),
		)
		text = fmt.Sprintf("✅ Saved!\n\n📝 %s\n🔄 %s\n\nSend the next word or open the menu with /start", word.English, word.Chinese)
	} else {
		text = fmt.Sprintf("ℹ️ Already saved:\n\n📝 %s\n🔄 %s", word.English, word.Chinese)
	}

	if err := c.Edit(text); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text)
	}
	return c.Respond()
}

// handleDiscard drops the pending pair without saving
func (h *Handler) handleDiscard(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	if err := c.Edit(mainMenuText, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(mainMenuText, mainMenuMarkup())
	}
	return c.Respond()
}
