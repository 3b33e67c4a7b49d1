package services

import (
	"context"
	"fmt"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/client/session"
	"github.com/ArjunBora/Eduzo/internal/common"
)

// FacultyService is the faculty-facing review controller: the pending
// verification queue plus the aggregate analytics shown next to it. Like
// the student controller, its view state only changes on a successful
// fetch; a failed refresh keeps the previous queue visible.
type FacultyService interface {
	// LoadQueue fetches the pending achievements and the dashboard
	// aggregates, replacing the view state on success.
	LoadQueue(ctx context.Context) ([]models.Achievement, *models.AnalyticsReport, error)

	// Queue returns the current (possibly stale) pending list.
	Queue() []models.Achievement

	// Report returns the current aggregates, or nil before first load.
	Report() *models.AnalyticsReport

	// Verify submits one VERIFIED/REJECTED decision and re-fetches the
	// queue; the decided item no longer appears since it left PENDING.
	Verify(ctx context.Context, achievementID int, decision models.AchievementStatus) error
}

type facultyService struct {
	client  api.Client
	session *session.Session
	events  *api.EventLogger

	queue  []models.Achievement
	report *models.AnalyticsReport
}

func NewFacultyService(client api.Client, sess *session.Session, events *api.EventLogger) FacultyService {
	return &facultyService{client: client, session: sess, events: events}
}

func (f *facultyService) LoadQueue(ctx context.Context) ([]models.Achievement, *models.AnalyticsReport, error) {
	pending, err := f.client.PendingAchievements(ctx)
	if err != nil {
		return nil, nil, err
	}
	report, err := f.client.Analytics(ctx)
	if err != nil {
		return nil, nil, err
	}
	f.queue = pending
	f.report = report
	return pending, report, nil
}

func (f *facultyService) Queue() []models.Achievement {
	return f.queue
}

func (f *facultyService) Report() *models.AnalyticsReport {
	return f.report
}

func (f *facultyService) Verify(ctx context.Context, achievementID int, decision models.AchievementStatus) error {
	if !decision.Decision() {
		return fmt.Errorf("%w: decision must be %s or %s", common.ErrValidation,
			models.StatusVerified, models.StatusRejected)
	}

	if err := f.client.VerifyAchievement(ctx, achievementID, decision); err != nil {
		return err
	}
	f.events.Log(ctx, "achievement_reviewed", f.session.Claims().Subject, map[string]any{
		"achievement_id": achievementID,
		"decision":       string(decision),
	})

	if _, _, err := f.LoadQueue(ctx); err != nil {
		return fmt.Errorf("decision saved, but refreshing the queue failed: %w", err)
	}
	return nil
}
