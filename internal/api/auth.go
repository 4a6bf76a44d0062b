package api

import (
	"context"
	"fmt"
	"time"
)

type AuthUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        AuthUser `json:"user"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/register", credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &resp, nil
}
