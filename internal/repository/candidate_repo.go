package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

// CandidateRepository runs the storage-layer half of candidate filtering.
// The discovery service re-applies the same rules in memory on top of this
// query; both layers share the domain age formula via BirthDateWindow.
type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(database *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: database}
}

// FindEligible returns active users the requester has never swiped on,
// matching the resolved preference's gender and age window, most recently
// registered first (ties by insertion order).
func (r *CandidateRepository) FindEligible(
	ctx context.Context,
	requesterID uint64,
	pref db.Preference,
	now time.Time,
) ([]db.User, error) {
	var candidates []db.User

	bornFrom, bornTo := domain.BirthDateWindow(pref.MinAge, pref.MaxAge, now)

	query := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("id <> ?", requesterID).
		Where("active = ?", true).
		Where("birth_date >= ? AND birth_date < ?", bornFrom, bornTo).
		Where(`NOT EXISTS (
			SELECT 1 FROM swipes s
			WHERE s.swiper_id = ? AND s.swiped_id = users.id
		)`, requesterID).
		Order("created_at DESC, id ASC")

	if pref.PreferredGender != domain.GenderOther {
		query = query.Where("gender = ?", pref.PreferredGender)
	}

	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}
