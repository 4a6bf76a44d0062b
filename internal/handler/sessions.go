package handler

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carmatch/carmatch-bot/internal/chat"
	"github.com/carmatch/carmatch-bot/internal/config"
	"github.com/carmatch/carmatch-bot/internal/middleware"
	tg "github.com/carmatch/carmatch-bot/internal/telegram"
)

func (h *Handler) handleSessions(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	conv := middleware.GetConversation(ctx)
	if conv == nil {
		return
	}
	h.sendSessionsPage(ctx, b, update.Message.Chat.ID, conv, 0, false, 0)
}

func (h *Handler) handleNew(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	conv := middleware.GetConversation(ctx)
	if conv == nil {
		return
	}
	h.createNewSession(ctx, b, update.Message.Chat.ID, conv)
}

func (h *Handler) createNewSession(ctx context.Context, b *bot.Bot, chatID int64, conv *chat.Conversation) {
	if _, err := h.sessions.CreateNew(ctx, conv); err != nil {
		slog.Error("create session", "error", err, "chat_id", chatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Не удалось создать диалог. Попробуйте позже.",
		})
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🆕 Новый диалог создан. Расскажите, какой автомобиль вы ищете.",
	})
}

func (h *Handler) sendSessionsPage(ctx context.Context, b *bot.Bot, chatID int64, conv *chat.Conversation, page int, edit bool, messageID int) {
	sessions := h.sessions.List(ctx)
	if len(sessions) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "📂 Диалогов пока нет. Отправьте сообщение или /new, чтобы начать.",
		})
		return
	}

	totalPages := int(math.Ceil(float64(len(sessions)) / float64(config.SessionsPerPage)))
	if page >= totalPages {
		page = totalPages - 1
	}

	from := page * config.SessionsPerPage
	to := from + config.SessionsPerPage
	if to > len(sessions) {
		to = len(sessions)
	}

	var rows [][]models.InlineKeyboardButton
	for _, s := range sessions[from:to] {
		label := s.Title
		if label == "" {
			label = fmt.Sprintf("Диалог от %s", s.CreatedAt.Format("02.01 15:04"))
		}
		if s.MessageCount > 0 {
			label = fmt.Sprintf("%s (%d)", label, s.MessageCount)
		}
		if conv.SessionID() == s.ID {
			label += " ✅"
		}
		rows = append(rows, tg.ButtonRow(tg.InlineButton(label, "switch_session_"+s.ID)))
	}

	rows = append(rows, tg.ButtonRow(
		tg.InlineButton("➕ Новый", "new_session"),
		tg.InlineButton("🗑 Текущий", "delete_current"),
	))
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, "sessions_page"))
	}

	text := fmt.Sprintf("📂 *Диалоги* (%d шт.)", len(sessions))
	keyboard := tg.InlineKeyboard(rows...)

	if edit && messageID != 0 {
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        text,
			ParseMode:   models.ParseModeMarkdownV1,
			ReplyMarkup: keyboard,
		})
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: keyboard,
	})
}

func (h *Handler) handleNewSession(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	conv := middleware.GetConversation(ctx)
	if conv == nil || update.CallbackQuery.Message.Message == nil {
		return
	}
	h.createNewSession(ctx, b, update.CallbackQuery.Message.Message.Chat.ID, conv)
}

func (h *Handler) handleDeleteCurrentSession(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	conv := middleware.GetConversation(ctx)
	if conv == nil || update.CallbackQuery.Message.Message == nil {
		return
	}
	chatID := update.CallbackQuery.Message.Message.Chat.ID

	id := conv.SessionID()
	if id == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ Активного диалога нет.",
		})
		return
	}

	if err := h.sessions.Delete(ctx, conv, id); err != nil {
		slog.Error("delete session", "error", err, "session_id", id)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Не удалось удалить диалог.",
		})
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🗑 Диалог удалён. Продолжайте в новом диалоге.",
	})
}

func (h *Handler) handleSwitchSession(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	conv := middleware.GetConversation(ctx)
	if conv == nil || update.CallbackQuery.Message.Message == nil {
		return
	}
	chatID := update.CallbackQuery.Message.Message.Chat.ID

	id := strings.TrimPrefix(update.CallbackQuery.Data, "switch_session_")
	if id == "" {
		return
	}

	if err := h.sessions.Switch(ctx, conv, id); err != nil {
		slog.Error("switch session", "error", err, "session_id", id)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Не удалось переключить диалог.",
		})
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✅ Диалог переключён. Продолжайте беседу.",
	})
}

func (h *Handler) handleSessionsPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	conv := middleware.GetConversation(ctx)
	if conv == nil || update.CallbackQuery.Message.Message == nil {
		return
	}
	msg := update.CallbackQuery.Message.Message

	page, err := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "sessions_page_"))
	if err != nil || page < 0 {
		return
	}
	h.sendSessionsPage(ctx, b, msg.Chat.ID, conv, page, true, msg.ID)
}
