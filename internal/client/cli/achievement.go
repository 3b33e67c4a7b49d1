package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
)

// AddAchievement prompts for a new achievement and submits it. The
// submitting flag guards against a re-entrant submission of the same form;
// the record is PENDING until a faculty member reviews it.
func (a *App) AddAchievement(ctx context.Context) error {
	if a.submitting {
		fmt.Fprintln(a.out, "A submission is already in progress.")
		return nil
	}

	na := models.NewAchievement{}

	var err error
	if na.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if na.Description, err = getMultiline(a.reader, "Description (empty line to finish)", a.out); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Categories: %s\n", joinCategories())
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	na.Category = models.AchievementCategory(strings.ToUpper(category))

	dateAnswer, err := getSimpleText(a.reader, "Date achieved (YYYY-MM-DD, optional)", a.out)
	if err != nil {
		return err
	}
	if dateAnswer != "" {
		t, err := time.Parse("2006-01-02", dateAnswer)
		if err != nil {
			fmt.Fprintln(a.out, "Date must look like 2024-05-31.")
			return err
		}
		na.DateAchieved = &t
	}

	a.submitting = true
	defer func() { a.submitting = false }()

	if err := a.student.AddAchievement(ctx, na); err != nil {
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	fmt.Fprintln(a.out, "Achievement submitted for verification.")
	return nil
}

func joinCategories() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
