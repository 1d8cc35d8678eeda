package discovery

import (
	"math"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

// maxAgePenalty caps the age-difference term of the score.
const maxAgePenalty = 20

// completenessBonus rewards candidates with a filled-out profile.
const completenessBonus = 20

// Breakdown is a candidate's compatibility score with the intermediate
// values that produced it, exposed so result payloads can show them.
type Breakdown struct {
	Score           int     `json:"score"`
	CommonInterests int     `json:"common_interests"`
	DistanceKm      float64 `json:"distance_km"`
	AgeDifference   int     `json:"age_difference"`
	ProfileComplete bool    `json:"profile_complete"`
}

// scoreCandidate computes the compatibility score of candidate for
// requester. Deterministic: term order is fixed and the result is floored
// at zero.
//
//	score = 10*commonInterests
//	      - floor(distanceKm/10)
//	      - min(2*|ageDiff|, 20)
//	      + 20 if profile complete
func scoreCandidate(
	requester *db.User, requesterProfile *db.Profile,
	candidate *db.User, candidateProfile *db.Profile,
	ageOf func(*db.User) int,
) Breakdown {
	common := commonInterestCount(requesterProfile, candidateProfile)
	distance := distanceBetween(requesterProfile, candidateProfile)
	ageDiff := ageOf(requester) - ageOf(candidate)
	if ageDiff < 0 {
		ageDiff = -ageDiff
	}
	complete := candidateProfile.IsComplete()

	score := 10 * common
	score -= int(math.Floor(distance / 10))
	score -= min(2*ageDiff, maxAgePenalty)
	if complete {
		score += completenessBonus
	}
	if score < 0 {
		score = 0
	}

	return Breakdown{
		Score:           score,
		CommonInterests: common,
		DistanceKm:      distance,
		AgeDifference:   ageDiff,
		ProfileComplete: complete,
	}
}

// commonInterestCount sizes the intersection of the two interest sets.
func commonInterestCount(a, b *db.Profile) int {
	if len(a.Interests) == 0 || len(b.Interests) == 0 {
		return 0
	}
	have := make(map[uint64]struct{}, len(a.Interests))
	for _, in := range a.Interests {
		have[in.ID] = struct{}{}
	}
	count := 0
	for _, in := range b.Interests {
		if _, ok := have[in.ID]; ok {
			count++
		}
	}
	return count
}

// distanceBetween returns the great-circle distance between the two
// profiles, or the fixed default when either side has no coordinates.
func distanceBetween(a, b *db.Profile) float64 {
	latA, lngA, okA := a.Coordinates()
	latB, lngB, okB := b.Coordinates()
	if !okA || !okB {
		return domain.DefaultDistanceKm
	}
	return domain.HaversineKm(latA, lngA, latB, lngB)
}
