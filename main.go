package main

import (
	"log"
	"os"

	"institut_backend/config"
	"institut_backend/handlers"
	"institut_backend/internal/ws"
	"institut_backend/middleware"
	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.LoadConfig()

	var store storage.Storage
	if cfg.DatabaseURL != "" {
		db, err := storage.InitDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if cfg.ResetDB {
			if err := config.ResetAndMigrate(db); err != nil {
				log.Fatal("Failed to reset database:", err)
			}
		} else {
			if err := config.Migrate(db); err != nil {
				log.Fatal("Failed to migrate database:", err)
			}
		}
		store = storage.NewGormStorage(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage")
		store = storage.NewMemoryStorage()
	}

	if err := config.SeedAdminUser(store, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	if err := config.SeedSettings(store); err != nil {
		log.Fatal("Failed to seed settings:", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName:      "Institut Backend",
		ServerHeader: "Institut Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(models.Error(msg))
		},
	})

	middleware.SetupMiddleware(app)
	sessions := middleware.NewSessionStore()

	app.Static("/uploads", cfg.UploadDir)

	handlers.RegisterRoutes(app, store, sessions, hub, cfg.UploadDir)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
