package database

import (
	"fmt"
	"log"

	"github.com/pattusdev/API-Development-and-Documentation-project/internal/config"
	"github.com/pattusdev/API-Development-and-Documentation-project/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

var defaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// SeedCategories inserts the default category set on a fresh database.
// Categories are read-only through the API, so an already-populated table
// is left untouched.
func SeedCategories(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count categories: %v", err)
	}
	if count > 0 {
		return
	}

	for _, name := range defaultCategories {
		if err := db.Create(&models.Category{Type: name}).Error; err != nil {
			log.Fatalf("failed to seed category %q: %v", name, err)
		}
	}
	log.Printf("seeded %d categories", len(defaultCategories))
}
