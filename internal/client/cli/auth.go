package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ArjunBora/Eduzo/internal/client/api"
	"github.com/ArjunBora/Eduzo/internal/client/models"
	"github.com/ArjunBora/Eduzo/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend.
// On success it resolves the session role and greets the user; on rejection
// the backend's message is shown verbatim and the session stays anonymous.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	a.resolveRole(ctx)
	fmt.Fprintf(a.out, "Logged in as %s.\n", string(a.role()))
	return nil
}

// resolveRole pins the session role for tokens that carry no role claim.
// The portfolio endpoint answers 200 for students and 403 for everyone
// else, which is enough to split the client's two-role surface.
func (a *App) resolveRole(ctx context.Context) {
	a.roleHint = ""
	if a.session.Claims().Role != "" {
		return
	}
	if _, err := a.student.LoadPortfolio(ctx); err != nil {
		if errors.Is(err, common.ErrForbidden) {
			a.roleHint = models.RoleFaculty
			return
		}
		a.log.Warn(ctx, "could not resolve role", "error", err)
		return
	}
	a.roleHint = models.RoleStudent
}

// Register walks through the signup prompts. The role answer decides which
// profile fields are asked for. A successful registration does not log the
// user in; they are pointed at the login command instead.
func (a *App) Register(ctx context.Context) error {
	reg := models.Registration{}

	var err error
	if reg.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if reg.Password, err = getPassword(a.out); err != nil {
		return err
	}
	if reg.FullName, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}

	roleAnswer, err := getSimpleText(a.reader, "Role (student/faculty)", a.out)
	if err != nil {
		return err
	}
	reg.Role = models.Role(strings.ToLower(roleAnswer))

	switch reg.Role {
	case models.RoleStudent:
		if reg.EnrollmentNo, err = getSimpleText(a.reader, "Enrollment number", a.out); err != nil {
			return err
		}
		if reg.Department, err = getSimpleText(a.reader, "Department", a.out); err != nil {
			return err
		}
		if reg.Program, err = getSimpleText(a.reader, "Program", a.out); err != nil {
			return err
		}
		year, err := getSimpleText(a.reader, "Enrollment year", a.out)
		if err != nil {
			return err
		}
		if year != "" {
			if reg.EnrollmentYear, err = strconv.Atoi(year); err != nil {
				fmt.Fprintln(a.out, "Enrollment year must be a number.")
				return err
			}
		}
	case models.RoleFaculty:
		if reg.FacultyDepartment, err = getSimpleText(a.reader, "Department", a.out); err != nil {
			return err
		}
	}

	if err := a.auth.Register(ctx, reg); err != nil {
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

// Logout clears the session. Logging out twice is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, api.Message(err))
		return err
	}
	a.roleHint = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
