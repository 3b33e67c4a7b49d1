package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/client/session"
	"github.com/ArjunBora/Eduzo/internal/client/storage"
	"github.com/ArjunBora/Eduzo/internal/logging"
)

// ---- fakes ----

// memStore is an in-memory storage.Repository for session tests.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

// fakeClient implements api.Client for unit tests.
type fakeClient struct {
	LoginRet string
	LoginErr error

	RegisterErr error

	PortfolioRet *models.Portfolio
	PortfolioErr error

	AddRet *models.Achievement
	AddErr error

	PendingRet []models.Achievement
	PendingErr error

	VerifyErr error

	AnalyticsRet *models.AnalyticsReport
	AnalyticsErr error

	ShareRet *models.Portfolio
	ShareErr error

	PublicRet *models.Portfolio
	PublicErr error

	// call accounting
	Calls         []string
	LastLoginUser string
	LastAdd       models.NewAchievement
	LastVerifyID  int
	LastDecision  models.AchievementStatus
	LastPublicTok string
}

func (f *fakeClient) Login(_ context.Context, username, _ string) (string, error) {
	f.Calls = append(f.Calls, "login")
	f.LastLoginUser = username
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, _ models.Registration) error {
	f.Calls = append(f.Calls, "register")
	return f.RegisterErr
}

func (f *fakeClient) OwnPortfolio(_ context.Context) (*models.Portfolio, error) {
	f.Calls = append(f.Calls, "me")
	if f.PortfolioErr != nil {
		return nil, f.PortfolioErr
	}
	cp := *f.PortfolioRet
	return &cp, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, _ models.ProfileUpdate) (*models.Portfolio, error) {
	f.Calls = append(f.Calls, "profile")
	if f.PortfolioErr != nil {
		return nil, f.PortfolioErr
	}
	cp := *f.PortfolioRet
	return &cp, nil
}

func (f *fakeClient) AddAchievement(_ context.Context, a models.NewAchievement) (*models.Achievement, error) {
	f.Calls = append(f.Calls, "add")
	f.LastAdd = a
	return f.AddRet, f.AddErr
}

func (f *fakeClient) PendingAchievements(_ context.Context) ([]models.Achievement, error) {
	f.Calls = append(f.Calls, "pending")
	return append([]models.Achievement(nil), f.PendingRet...), f.PendingErr
}

func (f *fakeClient) VerifyAchievement(_ context.Context, id int, decision models.AchievementStatus) error {
	f.Calls = append(f.Calls, "verify")
	f.LastVerifyID = id
	f.LastDecision = decision
	return f.VerifyErr
}

func (f *fakeClient) Analytics(_ context.Context) (*models.AnalyticsReport, error) {
	f.Calls = append(f.Calls, "analytics")
	return f.AnalyticsRet, f.AnalyticsErr
}

func (f *fakeClient) SharePortfolio(_ context.Context) (*models.Portfolio, error) {
	f.Calls = append(f.Calls, "share")
	if f.ShareErr != nil {
		return nil, f.ShareErr
	}
	cp := *f.ShareRet
	return &cp, nil
}

func (f *fakeClient) PublicPortfolio(_ context.Context, tok string) (*models.Portfolio, error) {
	f.Calls = append(f.Calls, "public")
	f.LastPublicTok = tok
	return f.PublicRet, f.PublicErr
}

func (f *fakeClient) count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// ---- wiring helpers ----

func newTestSession(t *testing.T) (*session.Session, storage.Repository) {
	t.Helper()
	store := newMemStore()
	sess := session.New(store)
	require.NoError(t, sess.Restore(context.Background()))
	return sess, store
}

// testEvents returns an EventLogger whose posts fail silently, which is the
// contract anyway.
func testEvents() *api.EventLogger {
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return api.NewEventLogger("http://127.0.0.1:0", nil, log)
}
