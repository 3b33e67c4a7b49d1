// Package common defines sentinel errors shared across the EduZo client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Collaborator rejections, mapped from HTTP status codes.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")

	// Transport-level failure: connection refused, timeout, DNS.
	ErrUnavailable = errors.New("service unavailable")

	// Client-side form validation failure.
	ErrValidation = errors.New("validation error")

	// Operation requires a logged-in session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPortfolioUnavailable is the single error the public resolver
	// returns for unknown tokens, private portfolios and transport
	// failures alike, so a caller cannot enumerate which of the three
	// happened.
	ErrPortfolioUnavailable = errors.New("portfolio not found or private")
)
