package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// InlineButton creates a single callback button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, CallbackData: callbackData}
}

// ButtonRow groups buttons into one keyboard row.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// InlineKeyboard builds an inline keyboard from rows.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// PaginationRow builds the prev / current / next row. Callback data is
// "<prefix>_<page>".
func PaginationRow(page, totalPages int, prefix string) []models.InlineKeyboardButton {
	row := []models.InlineKeyboardButton{}
	if page > 0 {
		row = append(row, InlineButton("⬅️", fmt.Sprintf("%s_%d", prefix, page-1)))
	}
	row = append(row, InlineButton(fmt.Sprintf("%d/%d", page+1, totalPages), "cur"))
	if page < totalPages-1 {
		row = append(row, InlineButton("➡️", fmt.Sprintf("%s_%d", prefix, page+1)))
	}
	return row
}
