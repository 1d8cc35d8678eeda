package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	svcErr "github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/errors"
)

// UserRepository is the read-only directory of user accounts consumed by
// discovery and the swipe engine.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Get returns the user by ID, or ErrNotFound.
func (r *UserRepository) Get(ctx context.Context, id uint64) (*db.User, error) {
	var user db.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.NotFoundf("user %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user row exists, active or not.
func (r *UserRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
