package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/config"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/client/services"
	"github.com/ArjunBora/Eduzo/internal/client/session"
	"github.com/ArjunBora/Eduzo/internal/client/storage"
	"github.com/ArjunBora/Eduzo/internal/logging"
)

// App wires the EduZo CLI together: configuration, the local store, the
// restored session and the services the commands run against.
type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	store     storage.Repository
	session   *session.Session
	auth      services.AuthService
	student   services.StudentService
	faculty   services.FacultyService
	public    services.PublicService
	assistant services.AssistantService

	reader *bufio.Reader
	out    io.Writer

	// roleHint resolves the role for tokens without a role claim, set once
	// after login or restore by probing the portfolio endpoint.
	roleHint models.Role

	darkMode   bool
	submitting bool
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.StorePath)
	if err != nil {
		return nil, fmt.Errorf("error opening local store: %w", err)
	}

	store := storage.NewSQLiteRepository(db)

	sess := session.New(store)
	if err := sess.Restore(ctx); err != nil {
		log.Warn(ctx, "could not restore session", "error", err)
	}

	httpc := &http.Client{Timeout: c.RequestTimeout}
	apiClient := api.NewHTTPClient(c.PortfolioAPIURL, httpc, sess.Token)
	tutor := api.NewTutorClient(c.AIAPIURL, httpc)
	events := api.NewEventLogger(c.AnalyticsAPIURL, httpc, log)

	app := &App{
		config:    c,
		log:       log,
		db:        db,
		store:     store,
		session:   sess,
		auth:      services.NewAuthService(apiClient, sess, events),
		student:   services.NewStudentService(apiClient, sess, events),
		faculty:   services.NewFacultyService(apiClient, sess, events),
		public:    services.NewPublicService(apiClient, events),
		assistant: services.NewAssistantService(tutor, sess, events),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	app.loadTheme(ctx)

	return app, nil
}

// Run starts the interactive loop. It blocks until the user exits or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to EduZo CLI (type 'help' for commands)")

	if a.session.IsAuthenticated() {
		a.resolveRole(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// role reports the effective role of the current session, empty when
// anonymous. The JWT role claim wins; roleHint covers tokens without one.
func (a *App) role() models.Role {
	if !a.session.IsAuthenticated() {
		return ""
	}
	if r := a.session.Claims().Role; r != "" {
		return r
	}
	return a.roleHint
}

func (a *App) getStatus() string {
	s := ""
	if sub := a.session.Claims().Subject; sub != "" {
		s = sub
	}
	if r := a.role(); r != "" {
		if s != "" {
			s += " "
		}
		s += string(r)
	}
	if a.darkMode {
		if s != "" {
			s += " "
		}
		s += "dark"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
