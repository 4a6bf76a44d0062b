package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carmatch/carmatch-bot/internal/api"
	"github.com/carmatch/carmatch-bot/internal/chat"
	"github.com/carmatch/carmatch-bot/internal/config"
	"github.com/carmatch/carmatch-bot/internal/handler"
	"github.com/carmatch/carmatch-bot/internal/middleware"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Authenticate with the CarMatch backend
	tokens := &api.TokenStore{}
	backend := api.New(cfg.APIBaseURL, tokens)

	auth, err := backend.Login(ctx, cfg.APIEmail, cfg.APIPassword)
	if err != nil && cfg.AutoRegister {
		slog.Warn("login failed, registering bot account", "error", err)
		auth, err = backend.Register(ctx, cfg.APIEmail, cfg.APIPassword)
	}
	if err != nil {
		slog.Error("failed to authenticate with backend", "error", err)
		os.Exit(1)
	}
	tokens.Set(auth.AccessToken)
	slog.Info("authenticated with backend", "user_id", auth.User.ID, "email", auth.User.Email)

	// Initialize conversation layer
	registry := chat.NewRegistry()
	sessions := chat.NewSessionManager(backend)
	orchestrator := chat.NewOrchestrator(backend, sessions)

	// Handler pointer for use in the default handler closure
	var h *handler.Handler

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.ConversationLoader(registry),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil || update.Message == nil {
				return
			}
			if update.Message.Chat.Type == "private" {
				h.HandleTextPrivate(ctx, b, update)
			}
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:          b,
		Backend:      backend,
		Sessions:     sessions,
		Orchestrator: orchestrator,
	})

	// Register all handlers
	h.Register()

	// Keep the advisory session list warm
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sessions.RefreshList()
			}
		}
	}()

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	// Graceful shutdown
	slog.Info("bot stopped gracefully")
}
