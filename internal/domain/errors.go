package domain

import "errors"

var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrNoActiveSession = errors.New("no active session")
	ErrSendInFlight    = errors.New("send already in flight")
	ErrStateDiscarded  = errors.New("conversation state was reset")
	ErrSessionNotFound = errors.New("session not found")
)
