// Package session holds the client's authentication state: an opaque bearer
// token plus identity claims decoded from it. One Session instance exists
// per running client and is passed explicitly to everything that needs it.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/client/storage"
)

// Claims is what the client reads out of the access token for display and
// role dispatch. The token is decoded without signature verification: the
// client has no verification key, and authorization is enforced by the
// backend on every request anyway.
type Claims struct {
	Subject   string
	Role      models.Role
	ExpiresAt time.Time
}

// Session is the single cross-component piece of mutable client state.
// It is not safe for concurrent use; the REPL runtime is single-threaded.
type Session struct {
	store  storage.Repository
	token  string
	claims Claims
}

func New(store storage.Repository) *Session {
	return &Session{store: store}
}

// Restore loads a previously persisted token, if any, so a session survives
// process restarts. A missing token just leaves the session anonymous.
func (s *Session) Restore(ctx context.Context) error {
	value, err := s.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return err
	}
	s.token = string(value)
	s.claims = decodeClaims(s.token)
	return nil
}

// SetToken stores the token in memory and persists it durably.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.store.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		return err
	}
	s.token = token
	s.claims = decodeClaims(token)
	return nil
}

// Token returns the current bearer token, or "" when anonymous.
func (s *Session) Token() string {
	return s.token
}

// IsAuthenticated is a pure function of token presence, recomputed on every
// call. It is never cached separately from the token.
func (s *Session) IsAuthenticated() bool {
	return s.token != ""
}

func (s *Session) Claims() Claims {
	return s.claims
}

// Clear wipes the in-memory and persisted token. Idempotent: clearing an
// anonymous session is a no-op that still succeeds.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, storage.KeyToken); err != nil {
		return err
	}
	s.token = ""
	s.claims = Claims{}
	return nil
}

// decodeClaims extracts sub/role/exp from the JWT payload. Tokens that do
// not parse yield empty claims; token presence alone still authenticates.
func decodeClaims(token string) Claims {
	if token == "" {
		return Claims{}
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if role, ok := mc["role"].(string); ok {
		c.Role = models.Role(role)
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c
}
