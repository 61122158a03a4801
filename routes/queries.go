package routes

import (
	handlers "atlas/handlers/queries"

	"github.com/gofiber/fiber/v2"
)

func registerQueryRoutes(app *fiber.App) {
	queryHandler := handlers.NewQueryHandler()
	queryGroup := app.Group("/queries")

	queryGroup.Get("/", queryHandler.AllQueries)
	queryGroup.Get("/create", queryHandler.InsertCreateQueries)
	queryGroup.Get("/update", queryHandler.UpdateQueries)
	queryGroup.Get("/delete", queryHandler.DeleteQueries)
}
