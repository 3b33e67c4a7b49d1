package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/client/session"
	"github.com/ArjunBora/Eduzo/internal/common"
)

// AssistantService fronts the AI tutor.
type AssistantService interface {
	Ask(ctx context.Context, question string) (*models.TutorReply, error)
}

type assistantService struct {
	tutor   *api.TutorClient
	session *session.Session
	events  *api.EventLogger
}

func NewAssistantService(tutor *api.TutorClient, sess *session.Session, events *api.EventLogger) AssistantService {
	return &assistantService{tutor: tutor, session: sess, events: events}
}

func (a *assistantService) Ask(ctx context.Context, question string) (*models.TutorReply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", common.ErrValidation)
	}

	studentID := a.session.Claims().Subject
	if studentID == "" {
		studentID = "guest"
	}

	reply, err := a.tutor.Ask(ctx, question, studentID)
	if err != nil {
		return nil, err
	}
	a.events.Log(ctx, "ai_question", studentID, map[string]any{"cached": reply.Cached})
	return reply, nil
}
