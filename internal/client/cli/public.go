package cli

import (
	"context"
	"fmt"
)

// PublicView resolves a share token to its read-only portfolio. Every
// failure, unknown token, withdrawn share or unreachable backend, prints
// the same message so a caller cannot probe which tokens exist.
func (a *App) PublicView(ctx context.Context, token string) error {
	p, err := a.public.Fetch(ctx, token)
	if err != nil {
		fmt.Fprintln(a.out, "Portfolio not found or private.")
		return err
	}

	printPortfolio(a.out, p, true)
	return nil
}
