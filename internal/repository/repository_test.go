package repository_test

import (
	"strconv"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

// setupTestDB opens an isolated in-memory SQLite DB with the full schema.
// TranslateError must be on: the repositories depend on duplicate-key
// violations surfacing as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

// mustCreateUser inserts a minimal user row with an explicit ID.
func mustCreateUser(t *testing.T, gdb *gorm.DB, id uint64, gender domain.Gender, birthYear int, active bool) {
	t.Helper()
	user := db.User{
		ID:           id,
		Username:     userName(id),
		Email:        userName(id) + "@test.com",
		PasswordHash: "x",
		Gender:       gender,
		BirthDate:    time.Date(birthYear, time.June, 15, 0, 0, 0, 0, time.UTC),
		Active:       active,
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %d: %v", id, err)
	}
}

func userName(id uint64) string {
	return "user" + strconv.FormatUint(id, 10)
}
