package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/config"
)

// NewDB initializes the database connection using DSN from config.
//
// TranslateError is on so duplicate-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver; match creation relies on that
// to resolve concurrent reciprocal swipes.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DB.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// Migrate keeps the schema in sync with the models. Shared by the server
// boot path and the test harness (which runs it against in-memory SQLite).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&Interest{},
		&Photo{},
		&Preference{},
		&Swipe{},
		&Match{},
	)
}
