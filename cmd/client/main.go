package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/plateful/plateful/internal/client/cli"
	"github.com/plateful/plateful/internal/client/config"
	"github.com/plateful/plateful/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
