package profiles

import (
	"database/sql"

	"github.com/izzatredzuan/imu-chiropractic-form/app/models"
	"github.com/izzatredzuan/imu-chiropractic-form/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupProfileRoutes sets up all profile-related routes
func SetupProfileRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/profiles", auth.AuthMiddleware)

	// Any authenticated caller can list profiles by role (the intake form
	// needs the clinician picker); everything else is admin-only.
	api.Get("/", func(c *fiber.Ctx) error { return GetProfilesAPI(c, db) })

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error { return CreateProfileAPI(c, db) })
	admin.Get("/:id", func(c *fiber.Ctx) error { return GetProfileAPI(c, db) })
	admin.Put("/:id", func(c *fiber.Ctx) error { return UpdateProfileAPI(c, db) })
	admin.Post("/:id/lock", func(c *fiber.Ctx) error { return SetLockAPI(c, db) })
}
