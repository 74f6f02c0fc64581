package history

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/render"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
)

// SetupHistoryRoutes sets up the history page and print queue API routes
func SetupHistoryRoutes(app *fiber.App, sess *session.Session, renderer render.Renderer) {
	// Web routes
	app.Get("/history", func(c *fiber.Ctx) error {
		return HistoryPage(c, sess)
	})

	// API routes
	api := app.Group("/api/queue")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetQueueAPI(c, sess)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return EnqueueManyAPI(c, sess)
	})

	api.Post("/toggle/:id", func(c *fiber.Ctx) error {
		return ToggleQueueAPI(c, sess)
	})

	api.Post("/select-all", func(c *fiber.Ctx) error {
		return SelectAllAPI(c, sess)
	})

	api.Delete("/", func(c *fiber.Ctx) error {
		return ClearQueueAPI(c, sess)
	})

	api.Get("/pdf", func(c *fiber.Ctx) error {
		return DownloadBatchPDFAPI(c, sess, renderer)
	})
}

func HistoryPage(c *fiber.Ctx, sess *session.Session) error {
	profile := sess.Profile()
	return c.Render("history/index", fiber.Map{
		"Title":       "Receipt History - " + profile.Name,
		"CurrentPage": "history",
		"Profile":     profile,
		"Receipts":    sess.History(),
		"QueueCount":  sess.QueueLen(),
		"PageCount":   sess.PageEstimate(),
	})
}
