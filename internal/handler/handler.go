package handler

import (
	"github.com/go-telegram/bot"

	"github.com/carmatch/carmatch-bot/internal/api"
	"github.com/carmatch/carmatch-bot/internal/chat"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot          *bot.Bot
	backend      *api.Client
	sessions     *chat.SessionManager
	orchestrator *chat.Orchestrator
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot          *bot.Bot
	Backend      *api.Client
	Sessions     *chat.SessionManager
	Orchestrator *chat.Orchestrator
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:          deps.Bot,
		backend:      deps.Backend,
		sessions:     deps.Sessions,
		orchestrator: deps.Orchestrator,
	}
}
