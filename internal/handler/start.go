package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const welcomeText = `👋 Добро пожаловать в CarMatch!

Я помогу подобрать автомобиль под ваши пожелания. Расскажите, какую машину вы ищете: бюджет, тип кузова, год выпуска, топливо — и я предложу варианты из базы.

Команды:
/new — начать новый диалог
/sessions — список диалогов
/ask — быстрый вопрос без сохранения диалога`

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   welcomeText,
	})
	if err != nil {
		slog.Error("send welcome", "error", err)
	}
}

func (h *Handler) handleNoop(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})
}
