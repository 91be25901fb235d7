package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fundcli/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApplication(ctx)
	if err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		application.Logger.Error("application exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
