package assessments

import (
	"database/sql"

	"github.com/izzatredzuan/imu-chiropractic-form/app/routes/auth"
	"github.com/izzatredzuan/imu-chiropractic-form/app/storage"

	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentRoutes sets up all assessment-related routes
func SetupAssessmentRoutes(app *fiber.App, db *sql.DB, store storage.SignatureStore) {
	api := app.Group("/api/assessments", auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetAssessmentsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateAssessmentAPI(c, db, store) })
	api.Put("/", func(c *fiber.Ctx) error { return UpdateAssessmentAPI(c, db, store) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetAssessmentAPI(c, db) })
}
