package cli

import (
	"context"
	"fmt"

	"github.com/ArjunBora/Eduzo/internal/client/storage"
)

// loadTheme restores the persisted theme preference. A missing or broken
// store entry just leaves the default light theme.
func (a *App) loadTheme(ctx context.Context) {
	v, err := a.store.Get(ctx, storage.KeyDarkMode)
	if err != nil {
		a.log.Warn(ctx, "could not load theme preference", "error", err)
		return
	}
	a.darkMode = string(v) == "1"
}

// ToggleTheme flips the dark mode flag and persists it so the choice
// survives restarts.
func (a *App) ToggleTheme(ctx context.Context) error {
	a.darkMode = !a.darkMode

	v := []byte("0")
	if a.darkMode {
		v = []byte("1")
	}
	if err := a.store.Set(ctx, storage.KeyDarkMode, v); err != nil {
		a.log.Warn(ctx, "could not persist theme preference", "error", err)
	}

	if a.darkMode {
		fmt.Fprintln(a.out, "Dark mode on.")
	} else {
		fmt.Fprintln(a.out, "Dark mode off.")
	}
	return nil
}
