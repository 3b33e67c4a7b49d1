// Package api contains the outbound HTTP/JSON clients for the three EduZo
// service origins: the portfolio/auth backend, the AI tutor service, and the
// analytics service.
package api

import (
	"context"

	"github.com/ArjunBora/Eduzo/internal/client/models"
)

// Client is the portfolio/auth API surface consumed by the application
// services. The concrete implementation is HTTPClient; tests substitute
// fakes.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates an account. It has no session side effect; the
	// user must still log in afterwards.
	Register(ctx context.Context, reg models.Registration) error

	// OwnPortfolio fetches the authenticated student's portfolio.
	OwnPortfolio(ctx context.Context) (*models.Portfolio, error)

	// UpdateProfile patches nullable profile fields and returns the
	// updated portfolio.
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Portfolio, error)

	// AddAchievement submits a new achievement. The backend assigns
	// id/status/created_at.
	AddAchievement(ctx context.Context, a models.NewAchievement) (*models.Achievement, error)

	// PendingAchievements lists every PENDING achievement across
	// students (faculty only).
	PendingAchievements(ctx context.Context) ([]models.Achievement, error)

	// VerifyAchievement submits a faculty decision for one achievement.
	VerifyAchievement(ctx context.Context, id int, decision models.AchievementStatus) error

	// Analytics fetches the faculty dashboard aggregates.
	Analytics(ctx context.Context) (*models.AnalyticsReport, error)

	// SharePortfolio makes the portfolio public and returns it with the
	// share token set.
	SharePortfolio(ctx context.Context) (*models.Portfolio, error)

	// PublicPortfolio fetches the read-only verified-only view for a
	// share token. The request carries no credentials.
	PublicPortfolio(ctx context.Context, shareToken string) (*models.Portfolio, error)
}
