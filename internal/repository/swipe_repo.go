package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
	svcErr "github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/errors"
)

// SwipeRepository is the interaction history: one immutable row per ordered
// (swiper, swiped) pair.
type SwipeRepository struct {
	db *gorm.DB
}

func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

// Find returns the swipe for the ordered pair, or nil when none exists.
func (r *SwipeRepository) Find(ctx context.Context, swiperID, swipedID uint64) (*db.Swipe, error) {
	var swipe db.Swipe
	err := r.db.WithContext(ctx).
		First(&swipe, "swiper_id = ? AND swiped_id = ?", swiperID, swipedID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &swipe, nil
}

// Has reports whether the swiper already evaluated the swiped user,
// regardless of swipe type.
func (r *SwipeRepository) Has(ctx context.Context, swiperID, swipedID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts the swipe. A concurrent insert on the same ordered pair
// loses against the unique index and comes back as ErrAlreadySwiped, the
// same rejection the validation ladder produces.
func (r *SwipeRepository) Create(ctx context.Context, swipe *db.Swipe) error {
	err := r.db.WithContext(ctx).Create(swipe).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("swipe %d->%d: %w", swipe.SwiperID, swipe.SwipedID, svcErr.ErrAlreadySwiped)
	}
	return err
}

// CountPositiveReceived counts likes and super-likes received by a user.
// Backs the liked-me counter (DB fallback behind the Redis cache).
func (r *SwipeRepository) CountPositiveReceived(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("swiped_id = ? AND type IN ?", userID,
			[]domain.SwipeType{domain.SwipeLike, domain.SwipeSuperLike}).
		Count(&count).Error
	return count, err
}
