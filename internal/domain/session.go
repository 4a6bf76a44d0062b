package domain

import "time"

// Session is a server-tracked conversation thread. The backend assigns the
// id; the client never invents one.
type Session struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	Title        string    `json:"title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LocalMessageID marks a locally inserted message that the server has not
// confirmed yet.
const LocalMessageID int64 = 0

type Message struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	// Server-assigned position within the session; the sole ordering key.
	SequenceOrder int       `json:"sequence_order"`
	CreatedAt     time.Time `json:"created_at"`
}

// Confirmed reports whether the message carries a real server id.
func (m Message) Confirmed() bool {
	return m.ID != LocalMessageID
}
