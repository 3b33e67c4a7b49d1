package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/common"
)

// TokenSource supplies the current bearer token, or "" when anonymous.
// The session object provides one; keeping it a func avoids coupling the
// transport to session management.
type TokenSource func() string

// HTTPClient talks to the portfolio/auth backend over REST/JSON.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

// NewHTTPClient builds a client for the given base URL. A nil httpClient
// falls back to http.DefaultClient; a nil token source means all requests
// go out anonymous.
func NewHTTPClient(baseURL string, httpClient *http.Client, token TokenSource) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		token:      token,
	}
}

// do sends one JSON request and decodes the response into out (when non-nil).
// Transport failures wrap common.ErrUnavailable; non-2xx statuses become
// *Error values carrying the server's detail message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// Login posts form-encoded credentials, matching the backend's OAuth2
// password-flow endpoint.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", decodeError(resp.StatusCode, data)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", &Error{Status: resp.StatusCode, Detail: "login response missing access token"}
	}
	return parsed.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", reg, false, nil)
}

func (c *HTTPClient) OwnPortfolio(ctx context.Context) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/me", nil, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := c.do(ctx, http.MethodPut, "/api/portfolio/profile", upd, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) AddAchievement(ctx context.Context, a models.NewAchievement) (*models.Achievement, error) {
	var created models.Achievement
	if err := c.do(ctx, http.MethodPost, "/api/portfolio/achievements", a, true, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) PendingAchievements(ctx context.Context) ([]models.Achievement, error) {
	var list []models.Achievement
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/achievements/pending", nil, true, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// VerifyAchievement submits the decision. The backend takes the status as a
// query parameter, not a body field.
func (c *HTTPClient) VerifyAchievement(ctx context.Context, id int, decision models.AchievementStatus) error {
	path := fmt.Sprintf("/api/portfolio/achievements/%d/verify?status=%s", id, url.QueryEscape(string(decision)))
	return c.do(ctx, http.MethodPut, path, nil, true, nil)
}

func (c *HTTPClient) Analytics(ctx context.Context) (*models.AnalyticsReport, error) {
	var report models.AnalyticsReport
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/analytics", nil, true, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *HTTPClient) SharePortfolio(ctx context.Context) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := c.do(ctx, http.MethodPost, "/api/portfolio/share", nil, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) PublicPortfolio(ctx context.Context, shareToken string) (*models.Portfolio, error) {
	var p models.Portfolio
	path := "/api/portfolio/public/" + url.PathEscape(shareToken)
	if err := c.do(ctx, http.MethodGet, path, nil, false, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
