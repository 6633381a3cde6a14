package main

import (
	"log"

	"github.com/izzatredzuan/imu-chiropractic-form/app/config"
	"github.com/izzatredzuan/imu-chiropractic-form/app/database"
)

func main() {
	log.Println("Starting migration...")

	config.Init()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Migration completed successfully!")
}
