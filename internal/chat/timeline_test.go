package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmatch/carmatch-bot/internal/domain"
)

func serverMsg(id int64, role string, seq int, content string) domain.Message {
	return domain.Message{
		ID:            id,
		SessionID:     "sess-1",
		Role:          role,
		Content:       content,
		SequenceOrder: seq,
		CreatedAt:     time.Now(),
	}
}

func TestTimelineRendersSortedRegardlessOfArrivalOrder(t *testing.T) {
	tl := NewTimeline(nil)
	tl.Reconcile(serverMsg(3, domain.RoleUser, 3, "third"))
	tl.Reconcile(serverMsg(1, domain.RoleUser, 1, "first"))
	tl.Reconcile(serverMsg(4, domain.RoleAssistant, 4, "fourth"))
	tl.Reconcile(serverMsg(2, domain.RoleAssistant, 2, "second"))

	msgs := tl.Messages()
	require.Len(t, msgs, 4)
	for i, want := range []string{"first", "second", "third", "fourth"} {
		assert.Equal(t, want, msgs[i].Content)
		assert.Equal(t, i+1, msgs[i].SequenceOrder)
	}
}

func TestTimelineAppendOptimistic(t *testing.T) {
	history := []domain.Message{
		serverMsg(1, domain.RoleUser, 1, "hi"),
		serverMsg(2, domain.RoleAssistant, 2, "hello"),
	}
	tl := NewTimeline(history)

	m := tl.AppendOptimistic("sess-1", "need a sedan")
	assert.Equal(t, domain.LocalMessageID, m.ID)
	assert.Equal(t, domain.RoleUser, m.Role)
	assert.Equal(t, 3, m.SequenceOrder)
	assert.True(t, tl.HasPending())

	msgs := tl.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "need a sedan", msgs[2].Content)
}

func TestTimelineOptimisticLeftoverIsReplaced(t *testing.T) {
	tl := NewTimeline(nil)
	tl.AppendOptimistic("sess-1", "first try")
	tl.AppendOptimistic("sess-1", "second try")

	msgs := tl.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "second try", msgs[0].Content)
	assert.Equal(t, 1, msgs[0].SequenceOrder)
}

func TestTimelineReconcileConfirmsPlaceholderAtSamePosition(t *testing.T) {
	tl := NewTimeline(nil)
	tl.AppendOptimistic("sess-1", "need a sedan")

	tl.Reconcile(serverMsg(10, domain.RoleUser, 1, "need a sedan"))

	assert.False(t, tl.HasPending())
	msgs := tl.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, int64(10), msgs[0].ID)
}

func TestTimelineLaterServerMessageConfirmsPlaceholder(t *testing.T) {
	tl := NewTimeline(nil)
	tl.AppendOptimistic("sess-1", "need a sedan")

	// the assistant reply lands after the placeholder position
	tl.Reconcile(serverMsg(11, domain.RoleAssistant, 2, "what is your budget?"))

	assert.False(t, tl.HasPending())
	msgs := tl.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.LocalMessageID, msgs[0].ID)
	assert.Equal(t, int64(11), msgs[1].ID)
}

func TestTimelineReconcileReplacesByServerID(t *testing.T) {
	tl := NewTimeline([]domain.Message{serverMsg(5, domain.RoleAssistant, 1, "draft")})
	tl.Reconcile(serverMsg(5, domain.RoleAssistant, 1, "final"))

	msgs := tl.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "final", msgs[0].Content)
}

func TestTimelineRollbackLastOptimistic(t *testing.T) {
	tl := NewTimeline([]domain.Message{serverMsg(1, domain.RoleUser, 1, "hi")})
	tl.AppendOptimistic("sess-1", "lost message")

	tl.RollbackLastOptimistic()

	assert.False(t, tl.HasPending())
	msgs := tl.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Content)

	// rollback with nothing pending is a no-op
	tl.RollbackLastOptimistic()
	assert.Len(t, tl.Messages(), 1)
}

func TestTimelineLocalMessagesAreNotReconciled(t *testing.T) {
	tl := NewTimeline(nil)
	tl.AppendLocal("sess-1", domain.RoleAssistant, "⏳ Сервер отвечает слишком долго. Попробуйте ещё раз.")

	assert.False(t, tl.HasPending())
	require.Len(t, tl.Messages(), 1)

	// an unconfirmed message never enters via Reconcile
	tl.Reconcile(domain.Message{ID: domain.LocalMessageID, Role: domain.RoleUser, Content: "x", SequenceOrder: 2})
	assert.Len(t, tl.Messages(), 1)
}
