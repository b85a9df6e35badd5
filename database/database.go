package database

import (
	"fmt"
	"log"

	config "github.com/wsulistia/kelasku/configs"
	"github.com/wsulistia/kelasku/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the relational store. DATABASE_URL selects Postgres; when
// it is unset the server falls back to a local SQLite file so the prototype
// runs without any external services.
func ConnectDB() {
	var (
		dialector gorm.Dialector
		target    string
	)
	if dsn := config.Config("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
		target = "postgres"
	} else {
		path := config.ConfigDefault("DB_PATH", "kelasku.db")
		dialector = sqlite.Open(path)
		target = "sqlite: " + path
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Printf("✅ Database connected successfully (%s)\n", target)
}

// Migrate creates the schema if it does not exist yet. AutoMigrate is the
// whole migrations story here, matching the create-if-missing bootstrap of
// a single-file prototype.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Material{},
		&models.AttendanceRecord{},
		&models.Notification{},
		&models.ForumPost{},
		&models.Test{},
		&models.Question{},
		&models.Attempt{},
		&models.Answer{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}
