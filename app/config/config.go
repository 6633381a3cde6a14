package config

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	_ "github.com/lib/pq"
)

// Env holds everything read from the environment at startup.
type Env struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"imu_clinic"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	JWTSecret  string `env:"JWT_SECRET" envDefault:"imu-chiropractic-secret-key"`

	// MediaDir is where consent signature images are written.
	MediaDir string `env:"MEDIA_DIR" envDefault:"media"`
}

type Config struct {
	DB  *sql.DB
	Env Env
}

var AppConfig *Config

// Init parses the environment and opens the database pool.
func Init() {
	var e Env
	if err := env.Parse(&e); err != nil {
		log.Fatal("Failed to parse environment:", err)
	}

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=10",
		e.DBHost, e.DBPort, e.DBUser, e.DBName, e.DBSSLMode)
	if e.DBPassword != "" {
		psqlInfo += fmt.Sprintf(" password=%s", e.DBPassword)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection to %s:%d/%s: %v",
			e.DBHost, e.DBPort, e.DBName, err)
	}

	AppConfig = &Config{DB: db, Env: e}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetEnv() Env {
	return AppConfig.Env
}
