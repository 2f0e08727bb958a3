package api

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
)

// GetResult returns the stored result of a finished game.
func GetResult(c *fiber.Ctx) error {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	if services.Postgres == nil {
		return c.Status(fiber.StatusNotImplemented).SendString("Results are not stored")
	}

	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid game ID")
	}

	repo := repository.NewResultRepositoryFromServices(services)

	result, err := repo.GetResult(c.Context(), gameID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).SendString("Game result not found")
	}
	if err != nil {
		slog.Error("Failed to load game result", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(result)
}
