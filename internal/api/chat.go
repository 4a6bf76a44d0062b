package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carmatch/carmatch-bot/internal/domain"
)

// SendMessageResponse is the confirmed assistant turn. When the backend has
// already run the search itself, SearchResults carries the cars and the
// textual content is meant to be suppressed.
type SendMessageResponse struct {
	domain.Message
	ExtractedParams []domain.ExtractedParam `json:"extracted_params,omitempty"`
	ReadyForSearch  bool                    `json:"ready_for_search,omitempty"`
	SearchResults   []domain.CarResult      `json:"search_results,omitempty"`
}

func (c *Client) CreateSession(ctx context.Context) (*domain.Session, error) {
	var session domain.Session
	if err := c.post(ctx, "/chat/sessions", nil, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &session, nil
}

// CurrentSession returns the user's current "new dialog" session, creating
// one server-side when none exists.
func (c *Client) CurrentSession(ctx context.Context) (*domain.Session, error) {
	var session domain.Session
	if err := c.get(ctx, "/chat/sessions/current", nil, &session); err != nil {
		return nil, fmt.Errorf("get current session: %w", err)
	}
	return &session, nil
}

func (c *Client) ListSessions(ctx context.Context) ([]domain.Session, error) {
	var result struct {
		Sessions []domain.Session `json:"sessions"`
	}
	if err := c.get(ctx, "/chat/sessions", nil, &result); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return result.Sessions, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/chat/sessions/"+id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (c *Client) ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	var result struct {
		Messages []domain.Message `json:"messages"`
	}
	if err := c.get(ctx, "/chat/sessions/"+sessionID+"/messages", nil, &result); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return result.Messages, nil
}

// SendMessage posts a user message and waits for the assistant turn. Uses the
// extended deadline.
func (c *Client) SendMessage(ctx context.Context, sessionID, content string) (*SendMessageResponse, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	var resp SendMessageResponse
	err := c.do(ctx, c.sendClient, http.MethodPost, "/chat/sessions/"+sessionID+"/messages", nil, body, &resp)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	return &resp, nil
}

// CompleteMessage is one turn of the stateless chat mode.
type CompleteMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Complete runs a one-shot chat completion without touching any session.
func (c *Client) Complete(ctx context.Context, messages []CompleteMessage) (string, error) {
	body := struct {
		Messages []CompleteMessage `json:"messages"`
	}{Messages: messages}

	var resp struct {
		Content string `json:"content"`
	}
	if err := c.post(ctx, "/chat/complete", body, &resp); err != nil {
		return "", fmt.Errorf("chat complete: %w", err)
	}
	return resp.Content, nil
}
