package handler

import (
	"github.com/gofiber/fiber/v2"

	"journalfetch/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when no database backs the service; /health then reports
// healthy without a dependency check.
func RegisterRoutes(app *fiber.App, db Pinger, journals service.JournalService, onboarding service.Onboarding) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/session", GetSession(journals, onboarding))

	journal := app.Group("/journal")
	journal.Post("/download", DownloadJournal(journals))
	journal.Post("/view", ViewJournal(journals))
	journal.Get("/file", ServeJournalFile(journals))
	app.Delete("/journal", DeleteJournal(journals))

	app.Get("/onboarding", GetOnboarding(onboarding))
	app.Put("/onboarding/dont-show-again", SetDontShowAgain(onboarding))
	app.Post("/onboarding/dismiss", DismissOnboarding(onboarding))
}
