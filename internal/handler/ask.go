package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carmatch/carmatch-bot/internal/api"
	"github.com/carmatch/carmatch-bot/internal/domain"
	tg "github.com/carmatch/carmatch-bot/internal/telegram"
)

// handleAsk answers a one-shot question through the stateless completion
// endpoint. Nothing is recorded in any session.
func (h *Handler) handleAsk(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	chatID := update.Message.Chat.ID

	question := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/ask"))
	if question == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ Напишите вопрос после команды: /ask какой седан выбрать до миллиона?",
		})
		return
	}

	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	answer, err := h.backend.Complete(ctx, []api.CompleteMessage{
		{Role: domain.RoleUser, Content: question},
	})
	if err != nil {
		slog.Error("chat complete", "error", err, "chat_id", chatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Не удалось получить ответ. Попробуйте позже.",
		})
		return
	}

	if err := tg.SendLongMessage(ctx, b, chatID, answer); err != nil {
		slog.Error("send answer", "error", err, "chat_id", chatID)
	}
}
