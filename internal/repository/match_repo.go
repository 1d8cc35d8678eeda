package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

// MatchRepository stores the undirected match relationship. Every lookup and
// insert canonicalizes the pair (smaller ID first) so a match is found from
// either direction.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// FindBetween returns the match for the unordered pair {a, b} whether active
// or not, or nil when the pair never matched.
func (r *MatchRepository) FindBetween(ctx context.Context, a, b uint64) (*db.Match, error) {
	sideA, sideB := domain.CanonicalPair(a, b)
	var match db.Match
	err := r.db.WithContext(ctx).
		First(&match, "user_a_id = ? AND user_b_id = ?", sideA, sideB).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Create inserts an active match for the unordered pair {a, b}.
//
// Two concurrent reciprocal swipes can both reach this insert; the unique
// index on the canonical pair lets exactly one through. The loser re-fetches
// and returns the winner's row, so the caller always gets the single match
// for the pair and never sees the conflict.
func (r *MatchRepository) Create(ctx context.Context, a, b uint64, now time.Time) (*db.Match, error) {
	sideA, sideB := domain.CanonicalPair(a, b)
	match := db.Match{
		UserAID:   sideA,
		UserBID:   sideB,
		Active:    true,
		MatchedAt: now,
	}

	err := r.db.WithContext(ctx).Create(&match).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, ferr := r.FindBetween(ctx, sideA, sideB)
		if ferr != nil {
			return nil, ferr
		}
		if existing != nil {
			return existing, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// ActiveForUser lists the user's active matches, newest first.
func (r *MatchRepository) ActiveForUser(ctx context.Context, userID uint64) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("active = ? AND (user_a_id = ? OR user_b_id = ?)", true, userID, userID).
		Order("matched_at DESC, id DESC").
		Find(&matches).Error
	return matches, err
}
