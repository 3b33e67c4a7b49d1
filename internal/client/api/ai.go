package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/common"
)

// TutorClient calls the AI tutor service, which lives on its own origin.
type TutorClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTutorClient(baseURL string, httpClient *http.Client) *TutorClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TutorClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

type askRequest struct {
	Question  string `json:"question"`
	StudentID string `json:"student_id"`
}

// Ask submits a question and returns the tutor's reply.
func (c *TutorClient) Ask(ctx context.Context, question, studentID string) (*models.TutorReply, error) {
	payload, err := json.Marshal(askRequest{Question: question, StudentID: studentID})
	if err != nil {
		return nil, fmt.Errorf("encode ask request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ai/ask", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create ask request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ask response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, data)
	}

	var reply models.TutorReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, fmt.Errorf("decode ask response: %w", err)
	}
	return &reply, nil
}
