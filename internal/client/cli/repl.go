package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ArjunBora/Eduzo/internal/client/models"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowPortfolio(ctx context.Context) error
	AddAchievement(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Share(ctx context.Context) error
	PublicView(ctx context.Context, token string) error
	ReviewQueue(ctx context.Context) error
	VerifyDecision(ctx context.Context, args []string) error
	Ask(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
}

// runREPL is the read–eval–print loop of the EduZo CLI. It reads a line,
// parses the first token as the command, and dispatches to methods on 'a'.
// The loop exits on scanner EOF or "exit"/"quit".
//
// The command set is gated on the session: anonymous users can only log in,
// register or resolve a public share token; the rest of the surface splits
// over the closed role set {student, faculty}. Commands outside the current
// gate are reported as unknown.
//
// Errors returned by command handlers are ignored here; handlers print
// their own alerts. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "eduzo %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a, out)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "public":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: public <share-token>")
				continue
			}
			_ = a.PublicView(ctx, args[0])

		case "login":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Already logged in. Use logout first.")
				continue
			}
			_ = a.Login(ctx)

		case "register":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Already logged in. Use logout first.")
				continue
			}
			_ = a.Register(ctx)

		case "logout":
			if !a.isLoggedIn() {
				fmt.Fprintln(out, "Not logged in.")
				continue
			}
			_ = a.Logout(ctx)

		case "portfolio", "p":
			if a.role() != models.RoleStudent {
				unknown(out, cmd)
				continue
			}
			_ = a.ShowPortfolio(ctx)

		case "add":
			if a.role() != models.RoleStudent {
				unknown(out, cmd)
				continue
			}
			_ = a.AddAchievement(ctx)

		case "profile":
			if a.role() != models.RoleStudent {
				unknown(out, cmd)
				continue
			}
			_ = a.EditProfile(ctx)

		case "share":
			if a.role() != models.RoleStudent {
				unknown(out, cmd)
				continue
			}
			_ = a.Share(ctx)

		case "ask":
			if a.isLoggedIn() && a.role() != models.RoleStudent {
				unknown(out, cmd)
				continue
			}
			_ = a.Ask(ctx)

		case "queue", "q":
			if a.role() != models.RoleFaculty {
				unknown(out, cmd)
				continue
			}
			_ = a.ReviewQueue(ctx)

		case "verify":
			if a.role() != models.RoleFaculty {
				unknown(out, cmd)
				continue
			}
			_ = a.VerifyDecision(ctx, args)

		default:
			unknown(out, cmd)
		}
	}
}

func printHelp(a execIface, out io.Writer) {
	switch {
	case !a.isLoggedIn():
		fmt.Fprintln(out, "Available commands: login, register, public <token>, ask, theme, exit")
	case a.role() == models.RoleFaculty:
		fmt.Fprintln(out, "Available commands: (q)ueue, verify <id> <verified|rejected>, public <token>, theme, logout, exit")
	default:
		fmt.Fprintln(out, "Available commands: (p)ortfolio, add, profile, share, public <token>, ask, theme, logout, exit")
	}
}

func unknown(out io.Writer, cmd string) {
	fmt.Fprintln(out, "Unknown command:", cmd)
}
