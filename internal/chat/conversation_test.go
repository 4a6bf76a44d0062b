package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carmatch/carmatch-bot/internal/domain"
)

func TestRegistryReturnsOneConversationPerChat(t *testing.T) {
	r := NewRegistry()

	a := r.Get(1)
	b := r.Get(2)
	assert.NotSame(t, a, b)
	assert.Same(t, a, r.Get(1))
	assert.Equal(t, int64(1), a.ChatID())
}

func TestConversationClearDiscardsState(t *testing.T) {
	conv := NewConversation(1)
	conv.Rebind("sess-1", []domain.Message{serverMsg(1, domain.RoleUser, 1, "hi")})
	conv.cars = []domain.CarResult{{ID: 5}}

	conv.Clear()

	assert.Empty(t, conv.SessionID())
	assert.Empty(t, conv.Messages())
	assert.Empty(t, conv.Cars())
	assert.Equal(t, StateIdle, conv.State())
}

func TestSendStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "sending", StateSending.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "failure", StateFailure.String())
	assert.Equal(t, "unknown", SendState(42).String())
}
