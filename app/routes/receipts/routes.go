package receipts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/receipt"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/render"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
)

// SetupReceiptsRoutes sets up the receipt pages and API routes
func SetupReceiptsRoutes(app *fiber.App, sess *session.Session, numbers *receipt.NumberGenerator, renderer render.Renderer) {
	builder := receipt.NewBuilder(numbers)

	// Web routes
	app.Get("/", func(c *fiber.Ctx) error {
		return ReceiptsPage(c, sess)
	})

	// API routes
	api := app.Group("/api/receipts")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetReceiptsAPI(c, sess)
	})

	api.Get("/number", func(c *fiber.Ctx) error {
		return NextNumberAPI(c, numbers)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateReceiptAPI(c, sess, builder)
	})

	api.Post("/bulk", func(c *fiber.Ctx) error {
		return CreateReceiptsBulkAPI(c, sess, builder)
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetReceiptByIDAPI(c, sess)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteReceiptAPI(c, sess)
	})

	api.Get("/:id/pdf", func(c *fiber.Ctx) error {
		return DownloadReceiptPDFAPI(c, sess, renderer)
	})

	api.Get("/:id/png", func(c *fiber.Ctx) error {
		return DownloadReceiptPNGAPI(c, sess, renderer)
	})
}

func ReceiptsPage(c *fiber.Ctx, sess *session.Session) error {
	profile := sess.Profile()
	return c.Render("receipts/index", fiber.Map{
		"Title":       "New Receipt - " + profile.Name,
		"CurrentPage": "receipts",
		"Profile":     profile,
		"Categories":  sess.Categories(),
	})
}
