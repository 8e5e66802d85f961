package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/forkedapp/forked/internal/client/cli"
	"github.com/forkedapp/forked/internal/client/config"
	"github.com/forkedapp/forked/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
