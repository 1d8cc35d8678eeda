package domain

import "time"

// Gender of a user, stored as a lowercase string column.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// MatchesPreference reports whether a candidate of gender g satisfies the
// requester's preferred gender. The rule is asymmetric: the candidate's
// gender must equal the preference, except that a preference of "other"
// accepts any gender.
func (g Gender) MatchesPreference(preferred Gender) bool {
	switch preferred {
	case GenderOther:
		return true
	case GenderMale, GenderFemale:
		return g == preferred
	}
	return false
}

// SwipeType classifies a swipe. Only likes and super-likes count toward
// match detection; dislikes and passes only remove the target from the
// swiper's future discovery.
type SwipeType string

const (
	SwipeLike      SwipeType = "like"
	SwipeSuperLike SwipeType = "super_like"
	SwipeDislike   SwipeType = "dislike"
	SwipePass      SwipeType = "pass"
)

func (t SwipeType) Valid() bool {
	switch t {
	case SwipeLike, SwipeSuperLike, SwipeDislike, SwipePass:
		return true
	}
	return false
}

// Positive reports whether the swipe expresses interest.
func (t SwipeType) Positive() bool {
	switch t {
	case SwipeLike, SwipeSuperLike:
		return true
	case SwipeDislike, SwipePass:
		return false
	}
	return false
}

// AgeInYear computes age as a plain calendar-year subtraction.
//
// This is intentionally not an elapsed-time calculation: a user born in
// December 1995 is considered 30 for all of 2025. The same formula backs the
// candidate query's birth-date window, the in-memory eligibility re-check and
// the scorer's age-difference term, so the three can never disagree.
func AgeInYear(birthDate time.Time, now time.Time) int {
	return now.Year() - birthDate.Year()
}

// BirthDateWindow returns the [from, to) birth-date interval equivalent to an
// inclusive [minAge, maxAge] window under the AgeInYear formula, for use as a
// portable SQL range filter.
func BirthDateWindow(minAge, maxAge int, now time.Time) (from, to time.Time) {
	from = time.Date(now.Year()-maxAge, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(now.Year()-minAge+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, to
}

// CanonicalPair orders two user IDs ascending. Matches are stored and looked
// up under this ordering so a pair is discoverable from either direction.
func CanonicalPair(a, b uint64) (uint64, uint64) {
	if a < b {
		return a, b
	}
	return b, a
}
