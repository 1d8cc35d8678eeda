package swipe

import (
	"context"
	"time"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/app"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
	svcErr "github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/errors"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/repository"
)

// Service is the swipe engine: it records directional interest and runs
// match detection when a swipe completes a reciprocal positive pair.
type Service struct {
	appCtx    *app.AppContext
	userRepo  *repository.UserRepository
	swipeRepo *repository.SwipeRepository
	matchRepo *repository.MatchRepository

	now func() time.Time
}

// Result reports the outcome of a recorded swipe.
type Result struct {
	SwipeID     uint64  `json:"swipe_id"`
	IsMatch     bool    `json:"is_match"`
	MatchID     *uint64 `json:"match_id,omitempty"`
	MatchedWith *uint64 `json:"matched_with,omitempty"`
}

// MatchView is one entry of a user's match list: the match identity plus
// the counterpart's public identity.
type MatchView struct {
	MatchID   uint64    `json:"match_id"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	City      string    `json:"city"`
	MatchedAt time.Time `json:"matched_at"`
}

// NewService creates a swipe service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		userRepo:  repository.NewUserRepository(appCtx.DB),
		swipeRepo: repository.NewSwipeRepository(appCtx.DB),
		matchRepo: repository.NewMatchRepository(appCtx.DB),
		now:       time.Now,
	}
}

// RecordSwipe validates and persists a swipe, then runs match detection for
// positive swipes.
//
// Validation order, each a distinct rejection:
//  1. self-swipe
//  2. swiper or target does not exist
//  3. ordered pair already evaluated
//  4. target no longer active
//
// Once the swipe row is saved it is never rolled back: if anything after
// persistence fails, detection can be re-run later and will converge on the
// same single match, because detection is idempotent against both the
// existing-match lookup and the pair-unique index.
func (s *Service) RecordSwipe(ctx context.Context, swiperID, swipedID uint64, swipeType domain.SwipeType) (*Result, error) {
	log := s.appCtx.Logger

	if swiperID == swipedID {
		return nil, svcErr.ErrSelfSwipe
	}

	exists, err := s.userRepo.Exists(ctx, swiperID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, svcErr.NotFoundf("user %d", swiperID)
	}
	target, err := s.userRepo.Get(ctx, swipedID)
	if err != nil {
		return nil, err
	}

	already, err := s.swipeRepo.Has(ctx, swiperID, swipedID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, svcErr.ErrAlreadySwiped
	}

	if !target.Active {
		return nil, svcErr.ErrTargetInactive
	}

	swipe := db.Swipe{
		SwiperID: swiperID,
		SwipedID: swipedID,
		Type:     swipeType,
	}
	if err := s.swipeRepo.Create(ctx, &swipe); err != nil {
		return nil, err
	}

	result := &Result{SwipeID: swipe.ID}
	if !swipeType.Positive() {
		return result, nil
	}

	// best-effort counter bump; the DB remains the source of truth
	if err := s.appCtx.RedisCache.IncrLikedMeCount(ctx, swipedID); err != nil {
		log.Warn("liked-me counter bump failed", "user", swipedID, "err", err)
	}

	match, err := s.detectMatch(ctx, swiperID, swipedID)
	if err != nil {
		return nil, err
	}
	if match != nil {
		counterpart, _ := match.OtherUser(swiperID)
		result.IsMatch = true
		result.MatchID = &match.ID
		result.MatchedWith = &counterpart
		log.Info("match created", "match_id", match.ID, "user_a", match.UserAID, "user_b", match.UserBID)
	}
	return result, nil
}

// detectMatch checks reciprocity for the unordered pair and returns its
// match, creating one if needed. Safe to invoke any number of times: an
// existing match (active or not) is returned as-is, and a lost insert race
// resolves to the winning row inside the repository.
func (s *Service) detectMatch(ctx context.Context, swiperID, swipedID uint64) (*db.Match, error) {
	reverse, err := s.swipeRepo.Find(ctx, swipedID, swiperID)
	if err != nil {
		return nil, err
	}
	if reverse == nil || !reverse.Type.Positive() {
		return nil, nil
	}

	existing, err := s.matchRepo.FindBetween(ctx, swiperID, swipedID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return s.matchRepo.Create(ctx, swiperID, swipedID, s.now())
}

// Matches returns the user's active matches with counterpart identities,
// newest first.
func (s *Service) Matches(ctx context.Context, userID uint64) ([]MatchView, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, svcErr.NotFoundf("user %d", userID)
	}

	matches, err := s.matchRepo.ActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]MatchView, 0, len(matches))
	for i := range matches {
		counterpartID, ok := matches[i].OtherUser(userID)
		if !ok {
			continue
		}
		counterpart, err := s.userRepo.Get(ctx, counterpartID)
		if err != nil {
			if svcErr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		views = append(views, MatchView{
			MatchID:   matches[i].ID,
			UserID:    counterpart.ID,
			Username:  counterpart.Username,
			City:      counterpart.City,
			MatchedAt: matches[i].MatchedAt,
		})
	}
	return views, nil
}

// CountLikedMe returns how many users liked userID.
// Cache-first: Redis hit wins, otherwise the DB count is returned and
// written back with a TTL.
func (s *Service) CountLikedMe(ctx context.Context, userID uint64) (int64, error) {
	if cached, ok, err := s.appCtx.RedisCache.GetLikedMeCount(ctx, userID); err == nil && ok {
		return cached, nil
	}

	count, err := s.swipeRepo.CountPositiveReceived(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.appCtx.RedisCache.SetLikedMeCount(ctx, userID, count); err != nil {
		s.appCtx.Logger.Warn("liked-me counter write-back failed", "user", userID, "err", err)
	}
	return count, nil
}
