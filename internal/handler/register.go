package handler

import "github.com/go-telegram/bot"

// Register attaches all command and callback handlers to the bot.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/new", bot.MatchTypePrefix, h.handleNew)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/sessions", bot.MatchTypePrefix, h.handleSessions)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/ask", bot.MatchTypePrefix, h.handleAsk)

	// Sessions callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "new_session", bot.MatchTypePrefix, h.handleNewSession)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "delete_current", bot.MatchTypePrefix, h.handleDeleteCurrentSession)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "switch_session_", bot.MatchTypePrefix, h.handleSwitchSession)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "sessions_page_", bot.MatchTypePrefix, h.handleSessionsPage)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "cur", bot.MatchTypeExact, h.handleNoop)
}
