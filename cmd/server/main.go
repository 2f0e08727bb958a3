package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
)

func main() {
	config.SetLogLevel()

	app, session, services, cfg := internal.SetupApp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		result, err := session.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Game stopped", "id", session.ID(), "error", err)
			return
		}
		slog.Info("Game over", "id", session.ID(), "dark", result.Dark, "light", result.Light, "winner", result.Winner)
	}()

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			slog.Error("Failed to shut down server", "error", err)
		}
	}()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	listenErr := app.Listen(address)
	if listenErr != nil {
		slog.Error("Server stopped", "error", listenErr)
	}

	// The session records into the services until Run returns.
	stop()
	<-session.Done()

	if err := services.Close(); err != nil {
		slog.Error("Failed to close services", "error", err)
	}

	if listenErr != nil {
		os.Exit(1)
	}
}
