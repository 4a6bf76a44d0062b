package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carmatch/carmatch-bot/internal/chat"
)

type ctxKey string

const conversationKey ctxKey = "conversation"

// GetConversation extracts the per-chat conversation from context.
func GetConversation(ctx context.Context) *chat.Conversation {
	conv, ok := ctx.Value(conversationKey).(*chat.Conversation)
	if !ok {
		return nil
	}
	return conv
}

// ConversationLoader returns middleware that resolves the update's chat to
// its conversation state and puts it into context.
func ConversationLoader(registry *chat.Registry) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var chatID int64

			if update.Message != nil {
				chatID = update.Message.Chat.ID
			} else if update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil {
				chatID = update.CallbackQuery.Message.Message.Chat.ID
			}

			if chatID != 0 {
				ctx = context.WithValue(ctx, conversationKey, registry.Get(chatID))
			}
			next(ctx, b, update)
		}
	}
}
