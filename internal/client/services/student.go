package services

import (
	"context"
	"fmt"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/client/session"
	"github.com/ArjunBora/Eduzo/internal/common"
)

// StudentService is the student-facing portfolio view controller. It holds
// the last reconciled portfolio as its view state; mutations never patch
// that state locally but re-fetch it from the backend, so the client can
// never drift from server-assigned fields.
type StudentService interface {
	// LoadPortfolio fetches the portfolio and replaces the view state.
	// On failure the previous view state is left untouched.
	LoadPortfolio(ctx context.Context) (*models.Portfolio, error)

	// Portfolio returns the current (possibly stale) view state, or nil
	// before the first successful load.
	Portfolio() *models.Portfolio

	// AddAchievement validates and submits a new achievement, then
	// reconciles by re-fetching the portfolio.
	AddAchievement(ctx context.Context, a models.NewAchievement) error

	// UpdateProfile patches profile fields and replaces the view state
	// with the server's response.
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Portfolio, error)

	// Share returns the portfolio's share token, requesting one from the
	// backend only when the portfolio is not public yet. Calling it
	// repeatedly is safe and does not re-issue network requests once a
	// token is held.
	Share(ctx context.Context) (string, error)
}

type studentService struct {
	client  api.Client
	session *session.Session
	events  *api.EventLogger

	portfolio *models.Portfolio
}

func NewStudentService(client api.Client, sess *session.Session, events *api.EventLogger) StudentService {
	return &studentService{client: client, session: sess, events: events}
}

func (s *studentService) LoadPortfolio(ctx context.Context) (*models.Portfolio, error) {
	p, err := s.client.OwnPortfolio(ctx)
	if err != nil {
		return nil, err
	}
	s.portfolio = p
	return p, nil
}

func (s *studentService) Portfolio() *models.Portfolio {
	return s.portfolio
}

func (s *studentService) AddAchievement(ctx context.Context, a models.NewAchievement) error {
	if err := checkStruct(a); err != nil {
		return err
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", common.ErrValidation, a.Category)
	}

	if _, err := s.client.AddAchievement(ctx, a); err != nil {
		return err
	}
	s.events.Log(ctx, "achievement_submitted", s.session.Claims().Subject, map[string]any{
		"category": string(a.Category),
	})

	// Reconcile rather than insert locally: the server assigns id, status
	// and created_at. The record is saved even if this refresh fails.
	if _, err := s.LoadPortfolio(ctx); err != nil {
		return fmt.Errorf("achievement saved, but refreshing the portfolio failed: %w", err)
	}
	return nil
}

func (s *studentService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Portfolio, error) {
	p, err := s.client.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	s.portfolio = p
	return p, nil
}

func (s *studentService) Share(ctx context.Context) (string, error) {
	// Already public: hand back the held token without a network request.
	if s.portfolio != nil && s.portfolio.IsPublic && s.portfolio.ShareToken != "" {
		return s.portfolio.ShareToken, nil
	}

	p, err := s.client.SharePortfolio(ctx)
	if err != nil {
		return "", err
	}
	if s.portfolio != nil {
		s.portfolio.IsPublic = p.IsPublic
		s.portfolio.ShareToken = p.ShareToken
	} else {
		s.portfolio = p
	}

	s.events.Log(ctx, "portfolio_shared", s.session.Claims().Subject, nil)
	return p.ShareToken, nil
}
