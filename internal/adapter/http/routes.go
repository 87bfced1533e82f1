package http

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts the résumé service and session routes on app. A nil
// resume handler leaves the service API out, as when sessions talk to a
// remote service.
func Register(app *fiber.App, rh *ResumeHandler, sh *SessionHandler) {
	api := app.Group("/api")
	api.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if rh != nil {
		r := api.Group("/resume")
		r.Post("/", rh.Save)
		r.Get("/:userID", rh.Get)
		r.Delete("/:userID", rh.Delete)
		r.Post("/:userID/generate", rh.Generate)
		r.Post("/:userID/generate/github", rh.GenerateFromRepository)
		r.Get("/:userID/exports", rh.Exports)
	}

	s := api.Group("/sessions")
	s.Post("/", sh.Create)
	s.Get("/:sid", sh.Get)
	s.Delete("/:sid", sh.Delete)
	s.Put("/:sid/user", sh.SetUser)
	s.Put("/:sid/basic", sh.SetBasic)
	s.Post("/:sid/entries", sh.AddEntry)
	s.Patch("/:sid/entries/:eid", sh.UpdateEntry)
	s.Delete("/:sid/entries/:eid", sh.RemoveEntry)
	s.Get("/:sid/preview", sh.Preview)
	s.Post("/:sid/load", sh.Load)
	s.Post("/:sid/save", sh.Save)
	s.Post("/:sid/generate", sh.Generate)
	s.Post("/:sid/repository", sh.AddRepository)
	s.Get("/:sid/export.json", sh.ExportJSON)
	s.Get("/:sid/export.pdf", sh.ExportPDF)
}
