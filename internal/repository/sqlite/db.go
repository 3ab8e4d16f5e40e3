package sqlite

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
)

// Open connects to the SQLite database at path and runs schema migration.
// The returned *gorm.DB owns a connection pool and is safe for concurrent
// use. Foreign keys are switched on explicitly; SQLite ships with them off.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Workout{},
		&domain.Exercise{},
		&domain.PersonalBest{},
		&domain.ProgressPhoto{},
	)
}
