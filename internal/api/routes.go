package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	cycle := app.Group("/api/cycle", handler.RequireUser)
	cycle.Get("/state", handler.CycleState)
	cycle.Get("/lengths", handler.CycleLengths)
	cycle.Post("/start", handler.StartCycle)
	cycle.Post("/:cycleID/period-end", handler.MarkPeriodEnd)

	notes := app.Group("/api/notes", handler.RequireUser)
	notes.Get("/", handler.ListNotes)
	notes.Post("/", handler.AddNote)
}
