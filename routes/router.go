package routes

import (
	"atlas/middlewares"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	app.Use(middlewares.ZapLogger())

	registerQueryRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).
			Render("errors/404", fiber.Map{})
	})
}
