package services

import (
	"context"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/common"
)

// PublicService resolves share tokens to read-only public portfolios.
// The token is an unguessable capability, not an identity credential, so no
// authentication is attached to the fetch.
type PublicService interface {
	Fetch(ctx context.Context, shareToken string) (*models.Portfolio, error)
}

type publicService struct {
	client api.Client
	events *api.EventLogger
}

func NewPublicService(client api.Client, events *api.EventLogger) PublicService {
	return &publicService{client: client, events: events}
}

// Fetch returns the verified-only public view for a token. Every failure,
// unknown token or private portfolio or transport error, collapses into
// common.ErrPortfolioUnavailable so that a caller probing tokens cannot
// learn whether a private portfolio exists.
func (p *publicService) Fetch(ctx context.Context, shareToken string) (*models.Portfolio, error) {
	view, err := p.client.PublicPortfolio(ctx, shareToken)
	if err != nil {
		return nil, common.ErrPortfolioUnavailable
	}
	p.events.Log(ctx, "public_view", "", map[string]any{"achievements": len(view.Achievements)})
	return view, nil
}
