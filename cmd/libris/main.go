package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dkravets/libris/internal/client/cli"
	"github.com/dkravets/libris/internal/client/config"
	"github.com/dkravets/libris/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(context.Background())
}
