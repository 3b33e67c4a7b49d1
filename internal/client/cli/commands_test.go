package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/client/session"
	"github.com/ArjunBora/Eduzo/internal/client/storage"
	"github.com/ArjunBora/Eduzo/internal/common"
	"github.com/ArjunBora/Eduzo/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

// memStore is an in-memory storage.Repository.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}
func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memStore) Clear(ctx context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

type fakeAuth struct {
	loginErr    error
	registerErr error
	reg         models.Registration
	logoutCount int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) error { return f.loginErr }
func (f *fakeAuth) Register(ctx context.Context, reg models.Registration) error {
	f.reg = reg
	return f.registerErr
}
func (f *fakeAuth) Logout(ctx context.Context) error { f.logoutCount++; return nil }

type fakeStudent struct {
	portfolio *models.Portfolio
	loadErr   error

	added    []models.NewAchievement
	addErr   error
	updated  *models.ProfileUpdate
	shareTok string
	shareErr error
}

func (f *fakeStudent) LoadPortfolio(ctx context.Context) (*models.Portfolio, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.portfolio, nil
}
func (f *fakeStudent) Portfolio() *models.Portfolio { return f.portfolio }
func (f *fakeStudent) AddAchievement(ctx context.Context, a models.NewAchievement) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, a)
	return nil
}
func (f *fakeStudent) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Portfolio, error) {
	f.updated = &upd
	return f.portfolio, nil
}
func (f *fakeStudent) Share(ctx context.Context) (string, error) {
	if f.shareErr != nil {
		return "", f.shareErr
	}
	return f.shareTok, nil
}

type fakeFaculty struct {
	queue   []models.Achievement
	report  *models.AnalyticsReport
	loadErr error

	verifiedID int
	decision   models.AchievementStatus
	verifyErr  error
}

func (f *fakeFaculty) LoadQueue(ctx context.Context) ([]models.Achievement, *models.AnalyticsReport, error) {
	if f.loadErr != nil {
		return nil, nil, f.loadErr
	}
	return f.queue, f.report, nil
}
func (f *fakeFaculty) Queue() []models.Achievement     { return f.queue }
func (f *fakeFaculty) Report() *models.AnalyticsReport { return f.report }
func (f *fakeFaculty) Verify(ctx context.Context, achievementID int, decision models.AchievementStatus) error {
	if f.verifyErr != nil {
		return f.verifyErr
	}
	f.verifiedID = achievementID
	f.decision = decision
	return nil
}

type fakePublic struct {
	portfolio *models.Portfolio
	err       error
	tokens    []string
}

func (f *fakePublic) Fetch(ctx context.Context, shareToken string) (*models.Portfolio, error) {
	f.tokens = append(f.tokens, shareToken)
	if f.err != nil {
		return nil, f.err
	}
	return f.portfolio, nil
}

type fakeAssistant struct {
	reply *models.TutorReply
	err   error
}

func (f *fakeAssistant) Ask(ctx context.Context, question string) (*models.TutorReply, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	store := newMemStore()
	a := &App{
		log:       logging.NewTextLogger(io.Discard, slog.LevelError),
		store:     store,
		session:   session.New(store),
		auth:      &fakeAuth{},
		student:   &fakeStudent{},
		faculty:   &fakeFaculty{},
		public:    &fakePublic{},
		assistant: &fakeAssistant{},
		reader:    readerFromLines(),
		out:       out,
	}
	return a, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
}

// ------------ tests ------------

func TestLogin_RejectionPrintsServerDetail(t *testing.T) {
	a, out := newTestApp(t)
	a.auth = &fakeAuth{loginErr: &api.Error{Status: 401, Detail: "Incorrect username or password"}}
	a.reader = readerFromLines("student@example.com")
	stubPassword(t, "wrong")

	err := a.Login(context.Background())

	require.Error(t, err)
	assert.Contains(t, out.String(), "Incorrect username or password")
	assert.False(t, a.isLoggedIn())
}

func TestRegister_StudentFieldsCollected(t *testing.T) {
	a, out := newTestApp(t)
	auth := &fakeAuth{}
	a.auth = auth
	a.reader = readerFromLines(
		"new@example.com",
		"Priya Sharma",
		"student",
		"ENR-042",
		"CSE",
		"B.Tech",
		"2023",
	)
	stubPassword(t, "secret1")

	err := a.Register(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", auth.reg.Email)
	assert.Equal(t, models.RoleStudent, auth.reg.Role)
	assert.Equal(t, "ENR-042", auth.reg.EnrollmentNo)
	assert.Equal(t, 2023, auth.reg.EnrollmentYear)
	assert.Contains(t, out.String(), "Use 'login' to sign in.")
	assert.False(t, a.isLoggedIn(), "registration must not log the user in")
}

func TestRegister_DuplicateEmailMessage(t *testing.T) {
	a, out := newTestApp(t)
	a.auth = &fakeAuth{registerErr: &api.Error{Status: 400, Detail: "Email already registered"}}
	a.reader = readerFromLines("dup@example.com", "Dup User", "faculty", "CSE")
	stubPassword(t, "secret1")

	err := a.Register(context.Background())

	require.Error(t, err)
	assert.Contains(t, out.String(), "Email already registered")
}

func TestShowPortfolio_StaleCopyOnRefreshFailure(t *testing.T) {
	a, out := newTestApp(t)
	a.student = &fakeStudent{
		portfolio: &models.Portfolio{StudentName: "Priya Sharma"},
		loadErr:   common.ErrUnavailable,
	}

	err := a.ShowPortfolio(context.Background())

	require.Error(t, err)
	assert.Contains(t, out.String(), "showing the last loaded copy")
	assert.Contains(t, out.String(), "Priya Sharma")
}

func TestAddAchievement_GuardBlocksReentry(t *testing.T) {
	a, out := newTestApp(t)
	st := &fakeStudent{}
	a.student = st
	a.submitting = true

	err := a.AddAchievement(context.Background())

	require.NoError(t, err)
	assert.Empty(t, st.added)
	assert.Contains(t, out.String(), "already in progress")
}

func TestAddAchievement_SubmitsOnce(t *testing.T) {
	a, out := newTestApp(t)
	st := &fakeStudent{portfolio: &models.Portfolio{}}
	a.student = st
	a.reader = readerFromLines(
		"Hackathon winner",
		"Won the inter-college hackathon.",
		"",
		"technical",
		"2024-05-31",
	)

	err := a.AddAchievement(context.Background())

	require.NoError(t, err)
	require.Len(t, st.added, 1)
	assert.Equal(t, "Hackathon winner", st.added[0].Title)
	assert.Equal(t, models.CategoryTechnical, st.added[0].Category)
	require.NotNil(t, st.added[0].DateAchieved)
	assert.Equal(t, "2024-05-31", st.added[0].DateAchieved.Format("2006-01-02"))
	assert.Contains(t, out.String(), "submitted for verification")
	assert.False(t, a.submitting)
}

func TestShare_PrintsToken(t *testing.T) {
	a, out := newTestApp(t)
	a.student = &fakeStudent{shareTok: "tok-123"}

	err := a.Share(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "tok-123")
}

func TestPublicView_FailuresAreIndistinguishable(t *testing.T) {
	for _, failure := range []error{
		common.ErrPortfolioUnavailable,
		&api.Error{Status: 404, Detail: "Portfolio not found or private"},
		common.ErrUnavailable,
	} {
		a, out := newTestApp(t)
		a.public = &fakePublic{err: failure}

		err := a.PublicView(context.Background(), "whatever")

		require.Error(t, err)
		assert.Equal(t, "Portfolio not found or private.\n", out.String())
	}
}

func TestPublicView_OnlyVerifiedShown(t *testing.T) {
	a, out := newTestApp(t)
	a.public = &fakePublic{portfolio: &models.Portfolio{
		StudentName: "Priya Sharma",
		Achievements: []models.Achievement{
			{ID: 1, Title: "Verified one", Category: models.CategoryAcademic, Status: models.StatusVerified},
			{ID: 2, Title: "Still pending", Category: models.CategorySports, Status: models.StatusPending},
		},
		IsPublic:   true,
		ShareToken: "tok-123",
	}}

	err := a.PublicView(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Verified one")
	assert.NotContains(t, out.String(), "Still pending")
	assert.NotContains(t, out.String(), "tok-123", "public view must not echo the share token")
}

func TestPublicView_NoVerifiedIsNotAnError(t *testing.T) {
	a, out := newTestApp(t)
	a.public = &fakePublic{portfolio: &models.Portfolio{StudentName: "Priya Sharma"}}

	err := a.PublicView(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No verified achievements yet.")
}

func TestVerifyDecision_ArgParsing(t *testing.T) {
	a, out := newTestApp(t)
	fc := &fakeFaculty{}
	a.faculty = fc

	require.NoError(t, a.VerifyDecision(context.Background(), []string{"7"}))
	assert.Contains(t, out.String(), "Usage: verify")

	require.Error(t, a.VerifyDecision(context.Background(), []string{"x", "verified"}))
	assert.Equal(t, 0, fc.verifiedID)

	require.NoError(t, a.VerifyDecision(context.Background(), []string{"7", "rejected"}))
	assert.Equal(t, 7, fc.verifiedID)
	assert.Equal(t, models.StatusRejected, fc.decision)
}

func TestReviewQueue_PrintsAggregates(t *testing.T) {
	a, out := newTestApp(t)
	a.faculty = &fakeFaculty{
		queue: []models.Achievement{
			{ID: 3, Title: "Paper published", StudentName: "Priya Sharma", Category: models.CategoryResearch},
		},
		report: &models.AnalyticsReport{TotalStudents: 12, TotalAchievements: 30, VerifiedCount: 20, PendingCount: 5},
	}

	err := a.ReviewQueue(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Students: 12, achievements: 30 (20 verified, 5 pending)")
	assert.Contains(t, out.String(), "Paper published")
}

func TestAsk_PrintsReply(t *testing.T) {
	a, out := newTestApp(t)
	a.assistant = &fakeAssistant{reply: &models.TutorReply{
		Answer: "Use spaced repetition.",
		Cached: true,
	}}
	a.reader = readerFromLines("How do I prepare for finals?", "")

	err := a.Ask(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Use spaced repetition.")
	assert.Contains(t, out.String(), "(cached answer)")
}

func TestToggleTheme_Persists(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.ToggleTheme(ctx))
	assert.True(t, a.darkMode)
	assert.Contains(t, out.String(), "Dark mode on.")

	v, err := a.store.Get(ctx, storage.KeyDarkMode)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	// A fresh app restores the preference.
	b := &App{log: a.log, store: a.store}
	b.loadTheme(ctx)
	assert.True(t, b.darkMode)

	require.NoError(t, a.ToggleTheme(ctx))
	assert.False(t, a.darkMode)
}

func TestLogout_ClearsRoleHint(t *testing.T) {
	a, out := newTestApp(t)
	auth := &fakeAuth{}
	a.auth = auth
	a.roleHint = models.RoleFaculty

	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, 1, auth.logoutCount)
	assert.Equal(t, models.Role(""), a.roleHint)
	assert.Contains(t, out.String(), "Logged out.")
}
