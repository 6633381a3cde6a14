package main

import (
	"log"

	"github.com/izzatredzuan/imu-chiropractic-form/app/config"
	"github.com/izzatredzuan/imu-chiropractic-form/app/database"
	"github.com/izzatredzuan/imu-chiropractic-form/app/routes/assessments"
	"github.com/izzatredzuan/imu-chiropractic-form/app/routes/auth"
	"github.com/izzatredzuan/imu-chiropractic-form/app/routes/profiles"
	"github.com/izzatredzuan/imu-chiropractic-form/app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// apiErrorHandler maps unhandled fiber errors onto the JSON envelope
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	// Initialize database connection
	config.Init()

	// Run migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Migration failed:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOrigins:     "http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// Consent signature images are written below the media directory
	store := storage.NewDiskStore(config.GetEnv().MediaDir)

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup profile routes
	profiles.SetupProfileRoutes(app, config.GetDB())

	// Setup assessment routes
	assessments.SetupAssessmentRoutes(app, config.GetDB(), store)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	addr := config.GetEnv().ListenAddr
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
