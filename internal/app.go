package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/routes"
	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/session"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 4 * 1024
	servicesTimeout     = 10 * time.Second
)

// SetupApp loads the configuration, connects to the configured services and
// creates the game session. Failures are fatal. The caller owns the returned
// services and closes them once the session is done.
func SetupApp() (*fiber.App, *session.Session, *services.Services, *config.ServerConfig) {
	cfg := config.LoadServerConfig()

	ctx, cancel := context.WithTimeout(context.Background(), servicesTimeout)
	defer cancel()

	services, err := services.InitServices(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	s, err := session.New(cfg.Game, Recorders(services)...)
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		os.Exit(1)
	}

	return BuildApp(services, s), s, services, cfg
}

// Recorders returns a recorder for every configured service.
func Recorders(services *services.Services) []session.Recorder {
	var recorders []session.Recorder

	if services.Redis != nil {
		recorders = append(recorders, repository.NewEventRepositoryFromServices(services))
	}

	if services.Postgres != nil {
		recorders = append(recorders, repository.NewResultRepositoryFromServices(services))
	}

	return recorders
}

// BuildApp creates the Fiber app serving s.
func BuildApp(services *services.Services, s *session.Session) *fiber.App {
	// A single session is hosted per process, so prefork is never used.
	app := fiber.New(fiber.Config{
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Setup session and connections to external services in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("session", s)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
