package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ArjunBora/Eduzo/internal/common"
)

// Error is a collaborator rejection: the HTTP status plus the server's
// detail message, which the UI surfaces verbatim when present.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap maps the status code onto the shared sentinels so callers can use
// errors.Is without depending on HTTP details.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// Message returns the server's detail when usable, or a generic fallback.
// Local validation failures are shown as-is; a raw transport error yields
// the generic fallback so connection internals never reach the user.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if errors.Is(err, common.ErrValidation) {
		return err.Error()
	}
	return "Something went wrong. Please try again."
}

// decodeError builds an *Error from a non-2xx response body. FastAPI error
// bodies are {"detail": ...} where detail is usually a string; pydantic
// validation failures put a list there, which we flatten.
func decodeError(status int, body []byte) error {
	var parsed struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Detail) == 0 {
		return &Error{Status: status}
	}

	var msg string
	if err := json.Unmarshal(parsed.Detail, &msg); err == nil {
		return &Error{Status: status, Detail: msg}
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(parsed.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return &Error{Status: status, Detail: strings.Join(msgs, "; ")}
		}
	}

	return &Error{Status: status}
}
