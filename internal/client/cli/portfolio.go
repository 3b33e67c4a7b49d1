package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
)

// ShowPortfolio fetches and prints the student's own portfolio. When the
// fetch fails and an earlier load succeeded, the stale copy is shown with
// a notice instead of an empty screen.
func (a *App) ShowPortfolio(ctx context.Context) error {
	p, err := a.student.LoadPortfolio(ctx)
	if err != nil {
		if stale := a.student.Portfolio(); stale != nil {
			fmt.Fprintln(a.out, "Could not refresh the portfolio, showing the last loaded copy.")
			printPortfolio(a.out, stale, false)
			return err
		}
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	printPortfolio(a.out, p, false)
	return nil
}

// printPortfolio renders a portfolio. publicView restricts the listing to
// verified achievements, matching what a share link exposes.
func printPortfolio(out io.Writer, p *models.Portfolio, publicView bool) {
	fmt.Fprintf(out, "%s", p.StudentName)
	if p.EnrollmentNo != "" {
		fmt.Fprintf(out, " (%s)", p.EnrollmentNo)
	}
	fmt.Fprintln(out)

	if p.Department != "" || p.Program != "" {
		fmt.Fprintf(out, "  %s %s", p.Program, p.Department)
		if p.EnrollmentYear != 0 {
			fmt.Fprintf(out, ", enrolled %d", p.EnrollmentYear)
		}
		fmt.Fprintln(out)
	}
	if p.GPA != "" {
		fmt.Fprintf(out, "  GPA: %s\n", p.GPA)
	}
	if p.Bio != "" {
		fmt.Fprintf(out, "  %s\n", p.Bio)
	}

	achievements := p.Achievements
	if publicView {
		achievements = p.Verified()
	}
	if len(achievements) == 0 {
		if publicView {
			fmt.Fprintln(out, "No verified achievements yet.")
		} else {
			fmt.Fprintln(out, "No achievements yet. Use 'add' to record one.")
		}
		return
	}

	fmt.Fprintln(out, "Achievements:")
	for _, ach := range achievements {
		fmt.Fprintf(out, "  [%d] %s (%s)", ach.ID, ach.Title, ach.Category)
		if !publicView {
			fmt.Fprintf(out, " - %s", ach.Status)
		}
		if ach.DateAchieved != nil {
			fmt.Fprintf(out, " - %s", ach.DateAchieved.Format("2006-01-02"))
		}
		fmt.Fprintln(out)
	}

	if !publicView {
		if p.IsPublic {
			fmt.Fprintf(out, "Portfolio is public, share token: %s\n", p.ShareToken)
		} else {
			fmt.Fprintln(out, "Portfolio is private. Use 'share' to publish it.")
		}
	}
}

// EditProfile prompts for the updatable profile fields. Empty answers leave
// the corresponding field unchanged on the backend.
func (a *App) EditProfile(ctx context.Context) error {
	fmt.Fprintln(a.out, "Leave a field empty to keep its current value.")

	upd := models.ProfileUpdate{}
	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Full name", &upd.FullName},
		{"Phone number", &upd.PhoneNumber},
		{"Date of birth (YYYY-MM-DD)", &upd.DateOfBirth},
		{"Department", &upd.Department},
		{"Program", &upd.Program},
		{"Bio", &upd.Bio},
	}
	for _, f := range fields {
		answer, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if answer != "" {
			*f.dst = &answer
		}
	}

	p, err := a.student.UpdateProfile(ctx, upd)
	if err != nil {
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	printPortfolio(a.out, p, false)
	return nil
}
