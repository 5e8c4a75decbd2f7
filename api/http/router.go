package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvtailor/api/http/handlers"
)

// Handlers groups the route handlers registered by Register.
type Handlers struct {
	Health  *handlers.HealthHandler
	Session *handlers.SessionHandler
	Profile *handlers.ProfileHandler
	Company *handlers.CompanyHandler
	Match   *handlers.MatchHandler
	Tailor  *handlers.TailorHandler
}

// Register wires all HTTP routes onto given Fiber app. authMW guards
// everything except probes and session creation.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)
	v1.Post("/session", h.Session.Create)

	p := v1.Group("", authMW)

	p.Get("/profile", h.Profile.Get)
	p.Put("/profile", h.Profile.Put)

	cg := p.Group("/companies")
	cg.Get("/", h.Company.List)
	cg.Post("/", h.Company.Create)
	cg.Get("/:id", h.Company.Get)
	cg.Put("/:id", h.Company.Update)
	cg.Delete("/:id", h.Company.Delete)
	cg.Post("/:id/contacts", h.Company.AddContact)
	cg.Delete("/:id/contacts/:contactId", h.Company.RemoveContact)
	cg.Post("/:id/applications", h.Company.AddApplication)
	cg.Patch("/:id/applications/:appId", h.Company.UpdateApplication)
	cg.Post("/:id/resumes", h.Company.RecordResume)
	p.Get("/calendar", h.Company.Calendar)

	p.Post("/keywords", h.Match.Keywords)
	p.Post("/keywords/file", h.Match.KeywordsFromFile)
	p.Post("/match", h.Match.Match)

	tg := p.Group("/tailor")
	tg.Post("/adapt", h.Tailor.Adapt)
	tg.Post("/live", h.Tailor.Live)
	tg.Post("/letter", h.Tailor.Letter)
}
