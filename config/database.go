package config

import (
	"fmt"
	"log"
	"os"

	"nexustech/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// databaseURL prefers DATABASE_URL and falls back to the per-environment parts.
func databaseURL(env string) string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	var prefix string
	switch env {
	case "dev":
		prefix = "DEV"
	case "qc":
		prefix = "QC"
	case "prod", "production":
		prefix = "PROD"
	default:
		log.Printf("Unknown environment %q, using DEV_DB_* settings", env)
		prefix = "DEV"
	}

	sslmode := "disable"
	if prefix == "PROD" {
		sslmode = "require"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		os.Getenv(prefix+"_DB_HOST"),
		os.Getenv(prefix+"_DB_USER"),
		os.Getenv(prefix+"_DB_PASSWORD"),
		os.Getenv(prefix+"_DB_NAME"),
		os.Getenv(prefix+"_DB_PORT"),
		sslmode,
	)
}

// ConnectDB opens the postgres pool and migrates the schema.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	DB = db
	log.Println("Successfully connected to db")
	return db, nil
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.WorkLog{},
		&models.PaymentRequest{},
		&models.PaymentHistory{},
		&models.ContactMessage{},
	); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	return nil
}
