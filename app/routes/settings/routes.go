package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
)

// SetupSettingsRoutes sets up the settings page, profile and category APIs
func SetupSettingsRoutes(app *fiber.App, sess *session.Session) {
	// Web routes
	app.Get("/settings", func(c *fiber.Ctx) error {
		return SettingsPage(c, sess)
	})

	// Profile API routes
	profile := app.Group("/api/profile")

	profile.Get("/", func(c *fiber.Ctx) error {
		return GetProfileAPI(c, sess)
	})

	profile.Put("/", func(c *fiber.Ctx) error {
		return UpdateProfileAPI(c, sess)
	})

	profile.Post("/logo", func(c *fiber.Ctx) error {
		return UploadLogoAPI(c, sess)
	})

	profile.Delete("/logo", func(c *fiber.Ctx) error {
		return RemoveLogoAPI(c, sess)
	})

	// Category API routes
	categories := app.Group("/api/categories")

	categories.Get("/", func(c *fiber.Ctx) error {
		return GetCategoriesAPI(c, sess)
	})

	categories.Post("/", func(c *fiber.Ctx) error {
		return CreateCategoryAPI(c, sess)
	})

	categories.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateCategoryAPI(c, sess)
	})

	categories.Post("/:id/toggle", func(c *fiber.Ctx) error {
		return ToggleCategoryAPI(c, sess)
	})
}

func SettingsPage(c *fiber.Ctx, sess *session.Session) error {
	profile := sess.Profile()
	return c.Render("settings/index", fiber.Map{
		"Title":       "Settings - " + profile.Name,
		"CurrentPage": "settings",
		"Profile":     profile,
		"Categories":  sess.Categories(),
	})
}
