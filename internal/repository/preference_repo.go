package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

// Default preference bounds applied when a user never saved preferences.
const (
	DefaultMinAge = 18
	DefaultMaxAge = 99
)

// PreferenceRepository resolves a user's discovery criteria.
type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: database}
}

// GetOrDefault returns the user's saved preference, or the documented
// default (any gender, ages 18-99) when none exists.
//
// This is the single place the default is defined: both the SQL candidate
// query and the in-memory eligibility re-check receive the value resolved
// here, so the two layers cannot drift apart.
func (r *PreferenceRepository) GetOrDefault(ctx context.Context, userID uint64) (db.Preference, error) {
	var pref db.Preference
	err := r.db.WithContext(ctx).First(&pref, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultPreference(userID), nil
	}
	if err != nil {
		return db.Preference{}, err
	}
	return pref, nil
}

// DefaultPreference is the fallback discovery criteria for userID.
func DefaultPreference(userID uint64) db.Preference {
	return db.Preference{
		UserID:          userID,
		PreferredGender: domain.GenderOther,
		MinAge:          DefaultMinAge,
		MaxAge:          DefaultMaxAge,
	}
}
