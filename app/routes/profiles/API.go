package profiles

import (
	"database/sql"
	"strings"

	"github.com/izzatredzuan/imu-chiropractic-form/app/database"
	"github.com/izzatredzuan/imu-chiropractic-form/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfilesAPI lists profiles, optionally filtered by role. Feeds the
// admin user list and the student/evaluator pickers on the intake form.
func GetProfilesAPI(c *fiber.Ctx, db *sql.DB) error {
	role := c.Query("role")
	if role != "" && !models.ValidRole(role) {
		return c.Status(400).JSON(fiber.Map{"role": "Unknown role"})
	}

	list, err := database.ListProfiles(db, role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch profiles"})
	}
	return c.JSON(list)
}

// GetProfileAPI returns one profile by id.
func GetProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	profile, err := database.GetProfileByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"detail": "Profile not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}
	return c.JSON(profile)
}

// CreateProfileAPI creates a user account together with its profile.
func CreateProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Email        string `json:"email"`
		Password     string `json:"password"`
		MemberID     string `json:"member_id"`
		OfficialName string `json:"official_name"`
		Role         string `json:"role"`
		Phone        string `json:"phone"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if strings.TrimSpace(req.Email) == "" {
		return c.Status(400).JSON(fiber.Map{"email": "Email is required"})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"password": "Password must be at least 8 characters"})
	}
	if strings.TrimSpace(req.MemberID) == "" {
		return c.Status(400).JSON(fiber.Map{"member_id": "Member ID is required"})
	}
	if strings.TrimSpace(req.OfficialName) == "" {
		return c.Status(400).JSON(fiber.Map{"official_name": "Official name is required"})
	}
	if !models.ValidRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{"role": "Role must be student, clinician or admin"})
	}

	if exists, err := database.EmailExists(db, req.Email); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	} else if exists {
		return c.Status(400).JSON(fiber.Map{"email": "Email already exists"})
	}
	if exists, err := database.MemberIDExists(db, req.MemberID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	} else if exists {
		return c.Status(400).JSON(fiber.Map{"member_id": "Member ID already exists"})
	}

	user := &models.User{Email: req.Email, Password: req.Password}
	profile := &models.Profile{
		MemberID:     strings.TrimSpace(req.MemberID),
		OfficialName: strings.TrimSpace(req.OfficialName),
		Role:         models.Role(req.Role),
		Phone:        req.Phone,
	}

	if err := database.CreateUserWithProfile(db, user, profile); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// UpdateProfileAPI updates the mutable profile fields.
func UpdateProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	profile, err := database.GetProfileByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"detail": "Profile not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	var req struct {
		OfficialName *string `json:"official_name,omitempty"`
		Role         *string `json:"role,omitempty"`
		Phone        *string `json:"phone,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.OfficialName != nil {
		if strings.TrimSpace(*req.OfficialName) == "" {
			return c.Status(400).JSON(fiber.Map{"official_name": "Official name cannot be blank"})
		}
		profile.OfficialName = strings.TrimSpace(*req.OfficialName)
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return c.Status(400).JSON(fiber.Map{"role": "Role must be student, clinician or admin"})
		}
		profile.Role = models.Role(*req.Role)
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}

	if err := database.UpdateProfile(db, profile); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// SetLockAPI locks or unlocks a profile; locked profiles cannot log in.
func SetLockAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Locked bool `json:"locked"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.SetProfileLocked(db, c.Params("id"), req.Locked); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"detail": "Profile not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update lock flag"})
	}

	msg := "Profile unlocked"
	if req.Locked {
		msg = "Profile locked"
	}
	return c.JSON(fiber.Map{"message": msg})
}
