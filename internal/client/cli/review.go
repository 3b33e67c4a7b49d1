package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
)

// ReviewQueue fetches and prints the pending achievements together with the
// dashboard aggregates. On failure a previously loaded queue is shown with
// a notice.
func (a *App) ReviewQueue(ctx context.Context) error {
	queue, report, err := a.faculty.LoadQueue(ctx)
	if err != nil {
		if stale := a.faculty.Queue(); stale != nil {
			fmt.Fprintln(a.out, "Could not refresh the queue, showing the last loaded copy.")
			printQueue(a, stale, a.faculty.Report())
			return err
		}
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	printQueue(a, queue, report)
	return nil
}

func printQueue(a *App, queue []models.Achievement, report *models.AnalyticsReport) {
	if report != nil {
		fmt.Fprintf(a.out, "Students: %d, achievements: %d (%d verified, %d pending)\n",
			report.TotalStudents, report.TotalAchievements, report.VerifiedCount, report.PendingCount)
	}

	if len(queue) == 0 {
		fmt.Fprintln(a.out, "No achievements waiting for review.")
		return
	}

	fmt.Fprintln(a.out, "Pending review:")
	for _, ach := range queue {
		fmt.Fprintf(a.out, "  [%d] %s - %s (%s)\n", ach.ID, ach.StudentName, ach.Title, ach.Category)
		if ach.Description != "" {
			fmt.Fprintf(a.out, "      %s\n", ach.Description)
		}
	}
	fmt.Fprintln(a.out, "Use 'verify <id> <verified|rejected>' to record a decision.")
}

// VerifyDecision records a faculty decision from "verify <id> <decision>"
// arguments. The id must be numeric and the decision one of the two
// terminal states; PENDING is not a decision.
func (a *App) VerifyDecision(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: verify <id> <verified|rejected>")
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Achievement id must be a number.")
		return err
	}

	decision := models.AchievementStatus(strings.ToUpper(args[1]))
	if err := a.faculty.Verify(ctx, id, decision); err != nil {
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	fmt.Fprintf(a.out, "Achievement %d marked %s.\n", id, decision)
	return nil
}
