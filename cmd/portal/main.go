package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/enokjanuario/primeholding/internal/buildinfo"
	"github.com/enokjanuario/primeholding/internal/client/cli"
	"github.com/enokjanuario/primeholding/internal/client/config"
	"github.com/enokjanuario/primeholding/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// A missing .env is fine; the environment may be set by other means.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
