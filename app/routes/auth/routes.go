package auth

import (
	"strings"

	"github.com/izzatredzuan/imu-chiropractic-form/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Post("/change-password", ChangePasswordAPI)
	auth.Get("/me", MeAPI)
}

// MeAPI returns the caller's profile as resolved from the token.
func MeAPI(c *fiber.Ctx) error {
	profile := c.Locals("profile").(*models.Profile)
	return c.JSON(profile)
}

// AuthMiddleware validates the JWT and sets the caller's profile context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile := &models.Profile{
		ID:           claims.ProfileID,
		UserID:       claims.UserID,
		MemberID:     claims.MemberID,
		OfficialName: claims.OfficialName,
		Role:         models.Role(claims.Role),
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("profile", profile)

	return c.Next()
}

// RoleMiddleware checks that the caller holds one of the allowed roles.
func RoleMiddleware(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile := c.Locals("profile").(*models.Profile)

		for _, allowed := range allowedRoles {
			if profile.Role == allowed {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{"detail": "Insufficient permissions"})
	}
}
