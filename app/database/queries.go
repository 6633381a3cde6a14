package database

import (
	"database/sql"
	"fmt"

	"github.com/izzatredzuan/imu-chiropractic-form/app/models"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// GetUserByEmail fetches an active user and their profile by email.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	profile := &models.Profile{}
	query := `SELECT u.id, u.email, u.password, u.is_active, u.created_at, u.updated_at,
			  p.id, p.user_id, p.member_id, p.official_name, p.role, p.phone, p.is_locked,
			  p.created_at, p.updated_at
			  FROM users u
			  JOIN profiles p ON p.user_id = u.id
			  WHERE u.email = $1 AND u.is_active = true AND u.deleted_at IS NULL`

	var phone sql.NullString
	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		&profile.ID, &profile.UserID, &profile.MemberID, &profile.OfficialName, &profile.Role,
		&phone, &profile.IsLocked, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		profile.Phone = phone.String
	}
	user.Profile = profile
	return user, nil
}

// GetProfileByID fetches a profile by its primary key.
func GetProfileByID(db *sql.DB, profileID string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `SELECT id, user_id, member_id, official_name, role, phone, is_locked, created_at, updated_at
			  FROM profiles WHERE id = $1`

	var phone sql.NullString
	err := db.QueryRow(query, profileID).Scan(
		&profile.ID, &profile.UserID, &profile.MemberID, &profile.OfficialName,
		&profile.Role, &phone, &profile.IsLocked, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		profile.Phone = phone.String
	}
	return profile, nil
}

// GetProfileByUserID fetches the profile attached to a user account.
func GetProfileByUserID(db *sql.DB, userID string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `SELECT id, user_id, member_id, official_name, role, phone, is_locked, created_at, updated_at
			  FROM profiles WHERE user_id = $1`

	var phone sql.NullString
	err := db.QueryRow(query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.MemberID, &profile.OfficialName,
		&profile.Role, &phone, &profile.IsLocked, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		profile.Phone = phone.String
	}
	return profile, nil
}

// ListProfiles returns profiles, optionally restricted to one role.
// Used by the admin user list and the student/evaluator pickers.
func ListProfiles(db *sql.DB, role string) ([]*models.Profile, error) {
	query := `SELECT p.id, p.user_id, p.member_id, p.official_name, p.role, p.phone, p.is_locked,
			  p.created_at, p.updated_at
			  FROM profiles p
			  JOIN users u ON u.id = p.user_id AND u.deleted_at IS NULL
			  WHERE ($1 = '' OR p.role = $1)
			  ORDER BY p.official_name`

	rows, err := db.Query(query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile := &models.Profile{}
		var phone sql.NullString
		err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.MemberID, &profile.OfficialName,
			&profile.Role, &phone, &profile.IsLocked, &profile.CreatedAt, &profile.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		if phone.Valid {
			profile.Phone = phone.String
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// CreateUserWithProfile creates the user account and its profile in one
// transaction. The caller supplies a plain-text password; it is hashed here.
func CreateUserWithProfile(db *sql.DB, user *models.User, profile *models.Profile) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO users (email, password, is_active) VALUES ($1, $2, true)
		 RETURNING id, created_at, updated_at`,
		user.Email, hashed,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	err = tx.QueryRow(
		`INSERT INTO profiles (user_id, member_id, official_name, role, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		user.ID, profile.MemberID, profile.OfficialName, profile.Role, profile.Phone,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	profile.UserID = user.ID

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}

	user.Password = ""
	user.IsActive = true
	user.Profile = profile
	return nil
}

// UpdateProfile updates the mutable profile fields.
func UpdateProfile(db *sql.DB, profile *models.Profile) error {
	query := `UPDATE profiles
			  SET official_name = $2, role = $3, phone = $4, updated_at = NOW()
			  WHERE id = $1`

	result, err := db.Exec(query, profile.ID, profile.OfficialName, profile.Role, profile.Phone)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetProfileLocked flips the lock flag; locked profiles cannot log in.
func SetProfileLocked(db *sql.DB, profileID string, locked bool) error {
	result, err := db.Exec(
		`UPDATE profiles SET is_locked = $2, updated_at = NOW() WHERE id = $1`,
		profileID, locked,
	)
	if err != nil {
		return fmt.Errorf("failed to update lock flag: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(
		`UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`,
		userID, hashedPassword,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// EmailExists reports whether an account already uses the email.
func EmailExists(db *sql.DB, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`, email,
	).Scan(&exists)
	return exists, err
}

// MemberIDExists reports whether a profile already uses the member id.
func MemberIDExists(db *sql.DB, memberID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE member_id = $1)`, memberID,
	).Scan(&exists)
	return exists, err
}
