package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nidhi8595/DevTinder3/internal/client/cli"
	"github.com/Nidhi8595/DevTinder3/internal/client/config"
	"github.com/Nidhi8595/DevTinder3/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
