package chat

import (
	"sort"
	"time"

	"github.com/carmatch/carmatch-bot/internal/domain"
)

// Timeline is the ordered message view of one session. Inserts are
// append-oriented; Messages always re-sorts by sequence order, so
// out-of-order arrival still renders correctly. Not safe for concurrent use;
// the owning Conversation serializes access.
type Timeline struct {
	msgs []domain.Message
	// index of the unconfirmed optimistic user message, -1 when none
	pending int
}

func NewTimeline(history []domain.Message) *Timeline {
	t := &Timeline{pending: -1}
	if len(history) > 0 {
		t.msgs = make([]domain.Message, len(history))
		copy(t.msgs, history)
	}
	return t
}

func (t *Timeline) Len() int { return len(t.msgs) }

// HasPending reports whether an optimistic user message awaits confirmation.
func (t *Timeline) HasPending() bool { return t.pending >= 0 }

// AppendOptimistic inserts a placeholder user message, visible immediately.
// Its sequence order speculates the next position; the server never sees the
// placeholder id. An unconfirmed leftover from a failed earlier turn is
// replaced, keeping at most one optimistic message at a time.
func (t *Timeline) AppendOptimistic(sessionID, content string) domain.Message {
	m := domain.Message{
		ID:            domain.LocalMessageID,
		SessionID:     sessionID,
		Role:          domain.RoleUser,
		Content:       content,
		SequenceOrder: len(t.msgs) + 1,
		CreatedAt:     time.Now(),
	}
	if t.pending >= 0 {
		m.SequenceOrder = t.msgs[t.pending].SequenceOrder
		t.msgs[t.pending] = m
		return m
	}
	t.msgs = append(t.msgs, m)
	t.pending = len(t.msgs) - 1
	return m
}

// AppendLocal inserts a display-only message that is never reconciled, such
// as error text shown in the assistant role.
func (t *Timeline) AppendLocal(sessionID, role, content string) domain.Message {
	m := domain.Message{
		ID:            domain.LocalMessageID,
		SessionID:     sessionID,
		Role:          role,
		Content:       content,
		SequenceOrder: len(t.msgs) + 1,
		CreatedAt:     time.Now(),
	}
	t.msgs = append(t.msgs, m)
	return m
}

// Reconcile merges a server-confirmed message into the timeline: it replaces
// the message with the same server id, confirms a placeholder occupying the
// same position, or appends. Server-confirmed messages are never renumbered.
// A confirmed message arriving after the optimistic placeholder implicitly
// confirms it: the server accepted everything that precedes it.
func (t *Timeline) Reconcile(m domain.Message) {
	if !m.Confirmed() {
		return
	}
	for i := range t.msgs {
		if t.msgs[i].Confirmed() && t.msgs[i].ID == m.ID {
			t.msgs[i] = m
			return
		}
	}
	for i := range t.msgs {
		if !t.msgs[i].Confirmed() && t.msgs[i].Role == m.Role && t.msgs[i].SequenceOrder == m.SequenceOrder {
			t.msgs[i] = m
			if t.pending == i {
				t.pending = -1
			}
			return
		}
	}
	t.msgs = append(t.msgs, m)
	if t.pending >= 0 && t.msgs[t.pending].SequenceOrder < m.SequenceOrder {
		t.pending = -1
	}
}

// RollbackLastOptimistic removes the unconfirmed placeholder. Used when a
// send fails with nothing displayable in its place.
func (t *Timeline) RollbackLastOptimistic() {
	if t.pending < 0 {
		return
	}
	t.msgs = append(t.msgs[:t.pending], t.msgs[t.pending+1:]...)
	t.pending = -1
}

// Messages returns a copy sorted ascending by sequence order.
func (t *Timeline) Messages() []domain.Message {
	out := make([]domain.Message, len(t.msgs))
	copy(out, t.msgs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SequenceOrder < out[j].SequenceOrder
	})
	return out
}
