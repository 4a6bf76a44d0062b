package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/carmatch/carmatch-bot/internal/config"
	"github.com/carmatch/carmatch-bot/internal/domain"
)

// SessionAPI is the session surface of the backend the manager depends on.
type SessionAPI interface {
	CreateSession(ctx context.Context) (*domain.Session, error)
	CurrentSession(ctx context.Context) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error)
}

// SessionManager guarantees a conversation has a backend session before any
// message goes out, and keeps an advisory copy of the session list for the
// /sessions view.
type SessionManager struct {
	api SessionAPI

	mu       sync.RWMutex
	sessions []domain.Session
}

func NewSessionManager(api SessionAPI) *SessionManager {
	return &SessionManager{api: api}
}

// EnsureActive binds the conversation to the backend's current session,
// loading its message history. Idempotent: an already-bound conversation is
// returned as-is. A bootstrap completing after the conversation was cleared
// or rebound is discarded.
func (m *SessionManager) EnsureActive(ctx context.Context, conv *Conversation) (string, error) {
	if id := conv.SessionID(); id != "" {
		return id, nil
	}

	gen := conv.snapshotGeneration()

	session, err := m.api.CurrentSession(ctx)
	if err != nil {
		return "", fmt.Errorf("ensure session: %w", err)
	}

	history, err := m.api.ListMessages(ctx, session.ID)
	if err != nil {
		// history is advisory, start from an empty timeline
		slog.Warn("load session history failed", "session_id", session.ID, "error", err)
		history = nil
	}

	if !conv.bindIfCurrent(gen, session.ID, history) {
		return "", domain.ErrStateDiscarded
	}
	return session.ID, nil
}

// CreateNew always creates a fresh backend session and makes it active,
// discarding the current timeline and car results.
func (m *SessionManager) CreateNew(ctx context.Context, conv *Conversation) (*domain.Session, error) {
	session, err := m.api.CreateSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	conv.Rebind(session.ID, nil)
	m.RefreshList()
	return session, nil
}

// List fetches the session list. Best-effort: the list is advisory, so a
// failure degrades to an empty list instead of propagating.
func (m *SessionManager) List(ctx context.Context) []domain.Session {
	sessions, err := m.api.ListSessions(ctx)
	if err != nil {
		slog.Warn("list sessions failed", "error", err)
		return nil
	}
	m.setCached(sessions)
	return sessions
}

// Delete removes a session. When the deleted session was the active one, the
// conversation is rebound to a fresh current session.
func (m *SessionManager) Delete(ctx context.Context, conv *Conversation, id string) error {
	if err := m.api.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if conv.SessionID() == id {
		conv.Clear()
		if _, err := m.EnsureActive(ctx, conv); err != nil {
			slog.Warn("rebind after delete failed", "error", err)
		}
	}
	m.RefreshList()
	return nil
}

// Switch rebinds the conversation to an existing session and loads its
// history.
func (m *SessionManager) Switch(ctx context.Context, conv *Conversation, id string) error {
	history, err := m.api.ListMessages(ctx, id)
	if err != nil {
		return fmt.Errorf("switch session: %w", err)
	}
	conv.Rebind(id, history)
	return nil
}

// RefreshList updates the advisory session list in the background.
// Fire-and-forget: failures are logged and swallowed, overlapping refreshes
// simply overwrite each other.
func (m *SessionManager) RefreshList() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.RefreshTimeout)
		defer cancel()

		sessions, err := m.api.ListSessions(ctx)
		if err != nil {
			slog.Warn("session list refresh failed", "error", err)
			return
		}
		m.setCached(sessions)
	}()
}

// Cached returns the advisory session list from the last successful fetch.
func (m *SessionManager) Cached() []domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Session, len(m.sessions))
	copy(out, m.sessions)
	return out
}

func (m *SessionManager) setCached(sessions []domain.Session) {
	m.mu.Lock()
	m.sessions = sessions
	m.mu.Unlock()
}
