package main

import (
	"context"
	"os"

	"TomatoScanner/internal/app"
	"TomatoScanner/internal/config"
	"TomatoScanner/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger, os.Stdout)

	if _, err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
