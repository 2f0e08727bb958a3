package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Game routes
	apiGroup.Get("/game", GetGame)
	apiGroup.Post("/game/select", SelectCell)

	// Result routes
	apiGroup.Get("/results/:id", GetResult)
}
