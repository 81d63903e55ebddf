package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"field-sales/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the database and ensures the schema exists. Postgres DSNs get
// the postgres driver, anything else is treated as a sqlite file path.
func Init(dsn string) error {
	var err error

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		const maxAttempts = 10
		for i := 1; i <= maxAttempts; i++ {
			log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

			DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				break
			}

			log.Printf("failed to connect to DB: %v", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
		}
	} else {
		// legacy deployments set DATABASE_URL=sqlite:///path/to/file.db
		path := strings.TrimPrefix(dsn, "sqlite://")
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("open sqlite %s: %w", path, err)
		}
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.StoreVisit{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}

// SeedUsers creates the built-in accounts if they are not present yet.
// Safe to call on every startup; the caller decides whether a failure
// is fatal.
func SeedUsers() error {
	users := []models.User{
		{Username: "admin", Password: "admin123", Role: models.RoleAdmin, FullName: "Administrator"},
		{Username: "sr_user", Password: "sr123", Role: models.RoleSR, FullName: "Sales Representative"},
		{Username: "Raju123", Password: "Raju123", Role: models.RoleSR, FullName: "RAJU DAS"},
		{Username: "Shubram123", Password: "Shubram123", Role: models.RoleSR, FullName: "SHUBRAM KAR"},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("username = ?", u.Username).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check seed user %s: %w", u.Username, err)
		}
		if count > 0 {
			// already seeded
			continue
		}

		if err := DB.Create(&u).Error; err != nil {
			return fmt.Errorf("create seed user %s: %w", u.Username, err)
		}

		log.Printf("created seed user: %s (role=%s)", u.Username, u.Role)
	}

	return nil
}
