package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/agroconnect/agroconnect-cli/internal/buildinfo"
	"github.com/agroconnect/agroconnect-cli/internal/client/cli"
	"github.com/agroconnect/agroconnect-cli/internal/client/config"
	"github.com/agroconnect/agroconnect-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// Optional; the environment wins over a missing .env.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
