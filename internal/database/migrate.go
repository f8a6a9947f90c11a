package database

import (
	"farmline/internal/models"

	"gorm.io/gorm"
)

// Migrate creates the users and listings tables when they do not exist yet.
// Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
	)
}
