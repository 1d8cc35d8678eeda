package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

func TestAgeInYear_CalendarSubtraction(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	// birthday already passed this year
	assert.Equal(t, 30, domain.AgeInYear(time.Date(1996, time.January, 10, 0, 0, 0, 0, time.UTC), now))

	// birthday not yet reached: still counted by year difference
	assert.Equal(t, 30, domain.AgeInYear(time.Date(1996, time.December, 31, 0, 0, 0, 0, time.UTC), now))
}

func TestBirthDateWindow_MatchesAgeFormula(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	from, to := domain.BirthDateWindow(25, 35, now)

	// born 1991 -> age 35, inside
	inside := time.Date(1991, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, !inside.Before(from) && inside.Before(to))
	assert.Equal(t, 35, domain.AgeInYear(inside, now))

	// born 1990 -> age 36, outside
	outside := time.Date(1990, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.False(t, !outside.Before(from) && outside.Before(to))

	// born 2001 -> age 25, inside
	young := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, !young.Before(from) && young.Before(to))
}

func TestCanonicalPair(t *testing.T) {
	a, b := domain.CanonicalPair(2, 1)
	assert.Equal(t, uint64(1), a)
	assert.Equal(t, uint64(2), b)

	a, b = domain.CanonicalPair(1, 2)
	assert.Equal(t, uint64(1), a)
	assert.Equal(t, uint64(2), b)
}

func TestGenderMatchesPreference(t *testing.T) {
	assert.True(t, domain.GenderFemale.MatchesPreference(domain.GenderFemale))
	assert.False(t, domain.GenderMale.MatchesPreference(domain.GenderFemale))

	// "other" preference accepts anyone
	assert.True(t, domain.GenderMale.MatchesPreference(domain.GenderOther))
	assert.True(t, domain.GenderFemale.MatchesPreference(domain.GenderOther))
	assert.True(t, domain.GenderOther.MatchesPreference(domain.GenderOther))
}

func TestSwipeTypePositive(t *testing.T) {
	assert.True(t, domain.SwipeLike.Positive())
	assert.True(t, domain.SwipeSuperLike.Positive())
	assert.False(t, domain.SwipeDislike.Positive())
	assert.False(t, domain.SwipePass.Positive())
}

func TestHaversineKm(t *testing.T) {
	// identical points
	assert.Equal(t, 0.0, domain.HaversineKm(52.23, 21.01, 52.23, 21.01))

	// Warsaw -> Krakow is roughly 250 km
	d := domain.HaversineKm(52.2297, 21.0122, 50.0647, 19.9450)
	assert.InDelta(t, 250, d, 15)
}
