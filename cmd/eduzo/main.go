package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ArjunBora/Eduzo/internal/client/cli"
	"github.com/ArjunBora/Eduzo/internal/client/config"
	"github.com/ArjunBora/Eduzo/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}
