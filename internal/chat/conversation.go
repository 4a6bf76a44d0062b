// Package chat is the conversation orchestration layer: per-chat state, the
// optimistic message timeline, parameter translation and the send state
// machine.
package chat

import (
	"sync"

	"github.com/carmatch/carmatch-bot/internal/domain"
)

// SendState is the phase of the send state machine.
type SendState int

const (
	StateIdle SendState = iota
	StateSending
	StateSuccess
	StateFailure
)

func (s SendState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	}
	return "unknown"
}

// Conversation is the client-side state of one Telegram chat: the bound
// backend session, the message timeline, the current car results and the
// send gate. All mutation happens under its lock; the orchestrator is the
// only writer during a send.
type Conversation struct {
	mu         sync.Mutex
	chatID     int64
	sessionID  string
	timeline   *Timeline
	cars       []domain.CarResult
	state      SendState
	generation uint64
}

func NewConversation(chatID int64) *Conversation {
	return &Conversation{
		chatID:   chatID,
		timeline: NewTimeline(nil),
	}
}

func (c *Conversation) ChatID() int64 { return c.chatID }

func (c *Conversation) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

func (c *Conversation) State() SendState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Messages returns the timeline in display order.
func (c *Conversation) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeline.Messages()
}

func (c *Conversation) Cars() []domain.CarResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CarResult, len(c.cars))
	copy(out, c.cars)
	return out
}

// Clear unbinds the session and discards timeline and car state. Any
// in-flight bootstrap started before the call is invalidated.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.sessionID = ""
	c.timeline = NewTimeline(nil)
	c.cars = nil
	c.state = StateIdle
}

// Rebind points the conversation at a new session, discarding prior state.
func (c *Conversation) Rebind(sessionID string, history []domain.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.sessionID = sessionID
	c.timeline = NewTimeline(history)
	c.cars = nil
	c.state = StateIdle
}

func (c *Conversation) snapshotGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// bindIfCurrent installs a bootstrap result unless the conversation was
// cleared or rebound since gen was snapshotted. The stale result is dropped.
func (c *Conversation) bindIfCurrent(gen uint64, sessionID string, history []domain.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return false
	}
	c.sessionID = sessionID
	c.timeline = NewTimeline(history)
	c.cars = nil
	c.state = StateIdle
	return true
}

// Registry hands out one Conversation per Telegram chat.
type Registry struct {
	mu    sync.Mutex
	convs map[int64]*Conversation
}

func NewRegistry() *Registry {
	return &Registry{convs: make(map[int64]*Conversation)}
}

func (r *Registry) Get(chatID int64) *Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.convs[chatID]
	if !ok {
		conv = NewConversation(chatID)
		r.convs[chatID] = conv
	}
	return conv
}
