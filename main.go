package main

import (
	"encoding/json"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/config"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/receipt"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/render"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/routes/history"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/routes/receipts"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/routes/settings"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/services"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/store"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// API requests get JSON errors
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func openStore(cfg *config.Config) store.Store {
	if cfg.StoreDriver == "postgres" {
		st, err := store.NewPgStore(cfg.DatabaseURL)
		if err == nil {
			log.Println("Using PostgreSQL state store")
			return st
		}
		log.Printf("PostgreSQL store unavailable, falling back to file store: %v", err)
	}

	st, err := store.NewFileStore(filepath.Join(cfg.DataDir, "state"))
	if err != nil {
		log.Fatal("Failed to open file store:", err)
	}
	log.Printf("Using file state store in %s", cfg.DataDir)
	return st
}

func main() {
	cfg := config.Load()

	// State store and session
	st := openStore(cfg)
	sess, err := session.Load(st)
	if err != nil {
		log.Fatal("Failed to load application state:", err)
	}

	// Rendering engine; the app stays usable without it
	var renderer render.Renderer
	if engine, err := render.NewEngine(); err != nil {
		log.Printf("Rendering disabled: %v", err)
		renderer = render.Unavailable{}
	} else {
		renderer = engine
	}

	// Background state backups
	services.StartBackupService(sess, cfg.BackupDir, cfg.BackupInterval)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Setup receipt routes
	numbers := receipt.NewNumberGenerator(cfg.ReceiptPrefix)
	receipts.SetupReceiptsRoutes(app, sess, numbers, renderer)

	// Setup history and print queue routes
	history.SetupHistoryRoutes(app, sess, renderer)

	// Setup settings routes
	settings.SetupSettingsRoutes(app, sess)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
