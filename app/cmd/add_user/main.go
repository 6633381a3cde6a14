package main

import (
	"flag"
	"fmt"

	"github.com/izzatredzuan/imu-chiropractic-form/app/config"
	"github.com/izzatredzuan/imu-chiropractic-form/app/database"
	"github.com/izzatredzuan/imu-chiropractic-form/app/models"
)

func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	memberID := flag.String("member-id", "", "unique member id")
	name := flag.String("name", "", "official full name")
	role := flag.String("role", "admin", "student, clinician or admin")
	flag.Parse()

	if *email == "" || *password == "" || *memberID == "" || *name == "" {
		fmt.Println("Usage: add_user -email ... -password ... -member-id ... -name ... [-role admin]")
		return
	}
	if !models.ValidRole(*role) {
		fmt.Println("Role must be student, clinician or admin")
		return
	}

	// Initialize database connection
	config.Init()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		return
	}

	user := &models.User{Email: *email, Password: *password}
	profile := &models.Profile{
		MemberID:     *memberID,
		OfficialName: *name,
		Role:         models.Role(*role),
	}

	if err := database.CreateUserWithProfile(db, user, profile); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s (%s, %s)\n",
		profile.OfficialName, profile.MemberID, profile.Role)
}
