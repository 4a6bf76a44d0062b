package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/carmatch/carmatch-bot/internal/api"
	"github.com/carmatch/carmatch-bot/internal/config"
	"github.com/carmatch/carmatch-bot/internal/domain"
)

// SendAPI is the backend surface one send interaction needs.
type SendAPI interface {
	SendMessage(ctx context.Context, sessionID, content string) (*api.SendMessageResponse, error)
	SearchCars(ctx context.Context, q domain.CarSearchQuery) (*api.CarSearchResponse, error)
}

// User-visible failure texts, shown in the assistant role.
const (
	replyTimeout      = "⏳ Сервер отвечает слишком долго. Попробуйте ещё раз."
	replyConnectivity = "❌ Не удалось связаться с сервером. Попробуйте позже."
)

// Turn is the outcome of one send interaction, ready for rendering.
type Turn struct {
	// Assistant text to show; empty when inline search results suppress it
	Reply string
	// Car results for this turn; nil clears the previous cards
	Cars []domain.CarResult
	// Failed marks Reply as error text rather than a model answer
	Failed bool
}

// Orchestrator runs the send state machine: optimistic append, remote call,
// outcome branching and reconciliation. At most one send per conversation is
// in flight; the Sending state gates re-entry.
type Orchestrator struct {
	api      SendAPI
	sessions *SessionManager
}

func NewOrchestrator(sendAPI SendAPI, sessions *SessionManager) *Orchestrator {
	return &Orchestrator{api: sendAPI, sessions: sessions}
}

// Send pushes one user message through the full interaction. Trimmed-empty
// content, an unbound session and an in-flight send are rejected before
// anything is appended or sent. Transport failures come back as a displayable
// assistant turn, not as an error; the returned error is only for rejected
// sends and caller-cancelled contexts.
func (o *Orchestrator) Send(ctx context.Context, conv *Conversation, content string) (*Turn, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	conv.mu.Lock()
	if conv.sessionID == "" {
		conv.mu.Unlock()
		return nil, domain.ErrNoActiveSession
	}
	if conv.state == StateSending {
		conv.mu.Unlock()
		return nil, domain.ErrSendInFlight
	}
	conv.state = StateSending
	conv.timeline.AppendOptimistic(conv.sessionID, content)
	sessionID := conv.sessionID
	conv.mu.Unlock()

	resp, err := o.api.SendMessage(ctx, sessionID, content)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			// nothing displayable: drop the placeholder and bail out
			conv.timeline.RollbackLastOptimistic()
			conv.state = StateIdle
			return nil, err
		}
		conv.state = StateFailure
		text := failureText(err)
		conv.timeline.AppendLocal(sessionID, domain.RoleAssistant, text)
		conv.cars = nil
		conv.state = StateIdle
		return &Turn{Reply: text, Failed: true}, nil
	}

	conv.state = StateSuccess
	turn := &Turn{}

	switch {
	case len(resp.SearchResults) > 0:
		// inline results replace the reply: cards alone represent the turn
		conv.cars = resp.SearchResults
		turn.Cars = resp.SearchResults

	case resp.ReadyForSearch && len(resp.ExtractedParams) >= config.MinParamsForSearch:
		conv.timeline.Reconcile(resp.Message)
		turn.Reply = resp.Message.Content
		conv.cars = o.search(ctx, resp.ExtractedParams)
		turn.Cars = conv.cars

	default:
		conv.timeline.Reconcile(resp.Message)
		turn.Reply = resp.Message.Content
		conv.cars = nil
	}

	conv.state = StateIdle
	o.sessions.RefreshList()
	return turn, nil
}

// search issues the structured search for a ready turn. Its failure is
// advisory and degrades to an empty result set.
func (o *Orchestrator) search(ctx context.Context, params []domain.ExtractedParam) []domain.CarResult {
	query := BuildSearchQuery(params)
	resp, err := o.api.SearchCars(ctx, query)
	if err != nil {
		slog.Warn("car search failed", "error", err)
		return nil
	}
	return resp.Results
}

// failureText maps a send failure onto the text shown in the assistant role:
// structured validation detail verbatim, a fixed message for timeouts, a
// generic connectivity message otherwise.
func failureText(err error) string {
	var se *api.StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	if api.IsTimeout(err) {
		return replyTimeout
	}
	return replyConnectivity
}
