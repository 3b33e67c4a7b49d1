package cli

import (
	"context"
	"fmt"

	"github.com/ArjunBora/Eduzo/internal/client/api"
)

// Ask sends a question to the AI tutor and prints the answer. The tutor is
// available to students and anonymous visitors alike; answers served from
// the tutor's cache are marked as such.
func (a *App) Ask(ctx context.Context) error {
	question, err := getMultiline(a.reader, "Your question (empty line to finish)", a.out)
	if err != nil {
		return err
	}

	reply, err := a.assistant.Ask(ctx, question)
	if err != nil {
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	if reply.Reasoning != "" {
		fmt.Fprintf(a.out, "Reasoning: %s\n", reply.Reasoning)
	}
	fmt.Fprintln(a.out, reply.Answer)
	if reply.Cached {
		fmt.Fprintln(a.out, "(cached answer)")
	}
	return nil
}
