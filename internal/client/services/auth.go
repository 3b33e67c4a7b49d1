package services

import (
	"context"
	"fmt"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/client/session"
)

// AuthService owns the session lifecycle.
//
// Contract:
//   - Login: authenticate against the backend and persist the token.
//     Collaborator rejections propagate with the server message intact.
//   - Register: create an account; no session side effect, the user must
//     still log in afterwards.
//   - Logout: always succeeds, clears memory and durable state, idempotent.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Session
	events  *api.EventLogger
}

func NewAuthService(client api.Client, sess *session.Session, events *api.EventLogger) AuthService {
	return &authService{client: client, session: sess, events: events}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	a.events.Log(ctx, "login", a.session.Claims().Subject, map[string]any{
		"role": string(a.session.Claims().Role),
	})
	return nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	if err := checkStruct(reg); err != nil {
		return err
	}
	if err := a.client.Register(ctx, reg); err != nil {
		return err
	}
	a.events.Log(ctx, "register", reg.Email, map[string]any{"role": string(reg.Role)})
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}
