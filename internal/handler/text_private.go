package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carmatch/carmatch-bot/internal/config"
	"github.com/carmatch/carmatch-bot/internal/domain"
	"github.com/carmatch/carmatch-bot/internal/middleware"
	tg "github.com/carmatch/carmatch-bot/internal/telegram"
)

// HandleTextPrivate drives one full send interaction for a private text
// message: session bootstrap, orchestrated send, reply and card rendering.
func (h *Handler) HandleTextPrivate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	msg := update.Message
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	conv := middleware.GetConversation(ctx)
	if conv == nil {
		return
	}
	chatID := msg.Chat.ID

	// 1. Guarantee a backend session before anything is sent
	if _, err := h.sessions.EnsureActive(ctx, conv); err != nil {
		if errors.Is(err, domain.ErrStateDiscarded) {
			return
		}
		slog.Error("ensure session", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Не удалось открыть диалог. Попробуйте позже.",
		})
		return
	}

	// 2. Typing indicator until the turn resolves
	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	// 3. Run the send state machine
	turn, err := h.orchestrator.Send(ctx, conv, msg.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyMessage):
			// nothing to send
		case errors.Is(err, domain.ErrSendInFlight):
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "⏳ Дождитесь ответа на предыдущий запрос.",
			})
		case errors.Is(err, domain.ErrNoActiveSession):
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "❌ Диалог не найден. Отправьте /new, чтобы начать заново.",
			})
		default:
			slog.Error("send turn", "error", err, "chat_id", chatID)
		}
		return
	}

	// 4. Render: text when present, cards when the turn produced them
	if turn.Reply != "" {
		if err := tg.SendLongMessage(ctx, b, chatID, turn.Reply); err != nil {
			slog.Error("send reply", "error", err, "chat_id", chatID)
		}
	}
	if len(turn.Cars) > 0 {
		cards := tg.FormatCars(turn.Cars, config.MaxCardsPerTurn)
		if err := tg.SendLongMessage(ctx, b, chatID, cards); err != nil {
			slog.Error("send car cards", "error", err, "chat_id", chatID)
		}
	}
}
