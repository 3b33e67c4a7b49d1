package cli

import (
	"context"
	"fmt"

	"github.com/ArjunBora/Eduzo/internal/client/api"
)

// Share publishes the portfolio and prints the share token. Sharing an
// already public portfolio reuses the existing token without another
// network round trip.
func (a *App) Share(ctx context.Context) error {
	token, err := a.student.Share(ctx)
	if err != nil {
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	fmt.Fprintf(a.out, "Portfolio is public. Share token: %s\n", token)
	fmt.Fprintln(a.out, "Anyone with the token can view the verified achievements via 'public <token>'.")
	return nil
}
