package discovery

import (
	"context"
	"sort"
	"time"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/app"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/repository"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/utils/pagination"
)

// Service implements candidate discovery: eligibility filtering, per-pair
// compatibility scoring and ranked pagination. Read-only; it never touches
// swipe or match state.
type Service struct {
	appCtx        *app.AppContext
	userRepo      *repository.UserRepository
	profileRepo   *repository.ProfileRepository
	prefRepo      *repository.PreferenceRepository
	candidateRepo *repository.CandidateRepository

	now func() time.Time
}

// RankedCandidate pairs a candidate with their score breakdown, in the order
// produced by Rank.
type RankedCandidate struct {
	User db.User
	Breakdown
}

// NewService creates a discovery service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:        appCtx,
		userRepo:      repository.NewUserRepository(appCtx.DB),
		profileRepo:   repository.NewProfileRepository(appCtx.DB),
		prefRepo:      repository.NewPreferenceRepository(appCtx.DB),
		candidateRepo: repository.NewCandidateRepository(appCtx.DB),
		now:           time.Now,
	}
}

// FindEligible returns users the requester may be shown, most recently
// registered first. A candidate qualifies when they are someone else, still
// active, never swiped on by the requester, of the preferred gender (a
// preference of "other" accepts any) and inside the preference's inclusive
// age window.
//
// The storage query applies the same rules; the in-memory pass re-checks
// them on the loaded rows with the identical age formula. A missing
// requester is a not-found error; a missing preference silently resolves to
// the central default.
func (s *Service) FindEligible(ctx context.Context, requesterID uint64) ([]db.User, error) {
	requester, err := s.userRepo.Get(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	pref, err := s.prefRepo.GetOrDefault(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rows, err := s.candidateRepo.FindEligible(ctx, requesterID, pref, now)
	if err != nil {
		return nil, err
	}

	eligible := make([]db.User, 0, len(rows))
	for _, candidate := range rows {
		if candidate.ID == requester.ID || !candidate.Active {
			continue
		}
		if !candidate.Gender.MatchesPreference(pref.PreferredGender) {
			continue
		}
		age := domain.AgeInYear(candidate.BirthDate, now)
		if age < pref.MinAge || age > pref.MaxAge {
			continue
		}
		eligible = append(eligible, candidate)
	}
	return eligible, nil
}

// Rank scores every eligible candidate and sorts descending by score. The
// sort is stable: candidates with equal scores keep their discovery order,
// which is what makes pagination over the result deterministic.
func (s *Service) Rank(ctx context.Context, requesterID uint64) ([]RankedCandidate, error) {
	candidates, err := s.FindEligible(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	requester, err := s.userRepo.Get(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	requesterProfile, err := s.profileRepo.GetOrEmpty(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	ageOf := func(u *db.User) int { return domain.AgeInYear(u.BirthDate, now) }

	ranked := make([]RankedCandidate, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		candidateProfile, err := s.profileRepo.GetOrEmpty(ctx, candidate.ID)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedCandidate{
			User:      *candidate,
			Breakdown: scoreCandidate(requester, requesterProfile, candidate, candidateProfile, ageOf),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

// Best returns the highest-ranked candidate, or nil when the eligible set is
// empty. Having no candidate is a normal outcome, not an error.
func (s *Service) Best(ctx context.Context, requesterID uint64) (*RankedCandidate, error) {
	ranked, err := s.Rank(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}

// Page returns a contiguous window of the ranked list with total-count
// metadata. An offset past the end yields an empty page with the correct
// total.
func (s *Service) Page(ctx context.Context, requesterID uint64, page pagination.Page) (pagination.Envelope[RankedCandidate], error) {
	ranked, err := s.Rank(ctx, requesterID)
	if err != nil {
		return pagination.Envelope[RankedCandidate]{}, err
	}
	items := pagination.Slice(ranked, page)
	return pagination.Wrap(items, int64(len(ranked)), page), nil
}
