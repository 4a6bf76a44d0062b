package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// StatusError is a non-2xx backend response. Detail carries the decoded
// FastAPI-style error description, empty when the body had none.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
}

// decodeStatusError extracts the "detail" field, which the backend sends
// either as a plain string or as a list of field errors with "msg" entries.
func decodeStatusError(status int, body []byte) *StatusError {
	se := &StatusError{StatusCode: status}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return se
	}

	var s string
	if json.Unmarshal(payload.Detail, &s) == nil {
		se.Detail = s
		return se
	}

	var fields []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(payload.Detail, &fields) == nil {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			if f.Msg != "" {
				msgs = append(msgs, f.Msg)
			}
		}
		se.Detail = strings.Join(msgs, "; ")
	}
	return se
}

// IsTimeout reports whether err is a deadline-class transport failure, as
// opposed to generic connectivity trouble.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
