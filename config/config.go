package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cldops/trainroom-server/models"
	"github.com/cldops/trainroom-server/utils"
)

var DB *gorm.DB

// ConnectDB opens the PostgreSQL connection, migrates the schema and
// provisions the default admin account.
func ConnectDB() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := EnsureDefaultAdmin(db); err != nil {
		log.Fatalf("failed to provision default admin: %v", err)
	}

	DB = db
	log.Println("Connected to PostgreSQL & migrated successfully")
}

// Migrate creates/updates every table. Shared with the test fixtures.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Room{},
		&models.Booking{},
		&models.Trip{},
		&models.Holiday{},
		&models.Todo{},
		&models.ChatMessage{},
		&models.FutureProject{},
		&models.PasswordChangeRequest{},
	)
}

// EnsureDefaultAdmin is an idempotent provisioning step run once at startup:
// if no account with the configured admin username exists, it creates an
// active superuser with a profile. Re-running it is a no-op.
func EnsureDefaultAdmin(db *gorm.DB) error {
	username := envOr("ADMIN_USERNAME", "CLD")
	email := envOr("ADMIN_EMAIL", "cld@example.com")
	password := envOr("ADMIN_PASSWORD", "CLD2025")

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := models.User{
			Username:    username,
			Email:       email,
			Password:    hash,
			IsActive:    true,
			IsStaff:     true,
			IsSuperuser: true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: admin.ID, Color: models.DefaultColor}).Error
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
