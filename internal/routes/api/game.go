package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/reversi"
	"github.com/lk16/reversi/internal/session"
)

// SelectCellPayload is the body of a cell selection.
type SelectCellPayload struct {
	Position *reversi.Position `json:"position"`
}

// GetGame returns the current state of the game.
func GetGame(c *fiber.Ctx) error {
	s := c.Locals("session").(*session.Session) //nolint: errcheck

	return c.JSON(s.Snapshot())
}

// SelectCell forwards a cell selection to the human player.
// Illegal cells are accepted here and dropped by the player, just like clicks on the board.
func SelectCell(c *fiber.Ctx) error {
	s := c.Locals("session").(*session.Session) //nolint: errcheck

	var payload SelectCellPayload
	if err := c.BodyParser(&payload); err != nil || payload.Position == nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}

	ctx, cancel := context.WithTimeout(context.Background(), session.SelectTimeout)
	defer cancel()

	err := s.Select(ctx, *payload.Position)

	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusAccepted)
	case errors.Is(err, session.ErrNotAwaitingInput):
		return c.Status(fiber.StatusConflict).SendString(err.Error())
	case errors.Is(err, session.ErrFinished):
		return c.Status(fiber.StatusGone).SendString(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusRequestTimeout).SendString(err.Error())
	default:
		slog.Error("Failed to select cell", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}
