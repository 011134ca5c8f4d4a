package handler

import (
	"fmt"
	"strconv"
	"strings"

	"flashcarder/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const listPageSize = 7

// paginate slices words into the requested page. Pages are 1-based;
// out-of-range pages clamp to the nearest valid one.
func paginate(words []domain.Word, page, size int) ([]domain.Word, int, int) {
	totalPages := (len(words) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(words) {
		start = len(words)
	}
	if end > len(words) {
		end = len(words)
	}

	return words[start:end], page, totalPages
}

// handleWordList shows the first page of saved words
func (h *Handler) handleWordList(c tele.Context) error {
	return h.renderWordList(c, 1)
}

// handleWordListPage handles page navigation
func (h *Handler) handleWordListPage(c tele.Context, data string) error {
	pageStr := strings.TrimPrefix(strings.TrimSpace(data), "page_")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.renderWordList(c, page)
}

// renderWordList shows one page of the saved word pairs
func (h *Handler) renderWordList(c tele.Context, page int) error {
	userID := c.Sender().ID

	words := h.store.List()
	if len(words) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "You have no saved words yet",
			ShowAlert: true,
		})
	}

	pageWords, page, totalPages := paginate(words, page, listPageSize)

	text := fmt.Sprintf("📖 Saved words (%d):\n\n", len(words))
	offset := (page - 1) * listPageSize
	for i, word := range pageWords {
		text += fmt.Sprintf("%d. %s — %s\n", offset+i+1, word.English, word.Chinese)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
		}
		rows = append(rows, navRow)
	}
	rows = append(rows, markup.Row(btnMainMenu))

	markup.Inline(rows...)

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
