package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	svcErr "github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/errors"
)

// ProfileRepository loads profile aggregates with their owned collections.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Get returns the profile with interests and photos preloaded, or
// ErrNotFound when the user has no profile row.
func (r *ProfileRepository) Get(ctx context.Context, userID uint64) (*db.Profile, error) {
	var profile db.Profile
	err := r.db.WithContext(ctx).
		Preload("Interests").
		Preload("Photos", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("display_order ASC")
		}).
		First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.NotFoundf("profile for user %d", userID)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrEmpty returns the profile, substituting an empty aggregate when the
// user has none. Scoring treats a missing profile as zero interests, no
// coordinates and an incomplete profile rather than failing discovery.
func (r *ProfileRepository) GetOrEmpty(ctx context.Context, userID uint64) (*db.Profile, error) {
	profile, err := r.Get(ctx, userID)
	if svcErr.IsNotFound(err) {
		return &db.Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Save persists the aggregate including collection changes made through the
// Profile mutators.
func (r *ProfileRepository) Save(ctx context.Context, profile *db.Profile) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(profile).Error
}
