package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/repository"
)

func femalePreference(userID uint64, minAge, maxAge int) db.Preference {
	return db.Preference{
		UserID:          userID,
		PreferredGender: domain.GenderFemale,
		MinAge:          minAge,
		MaxAge:          maxAge,
	}
}

func TestFindEligible_Filters(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewCandidateRepository(gdb)

	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	year := now.Year()

	mustCreateUser(t, gdb, 10, domain.GenderMale, year-30, true) // requester
	mustCreateUser(t, gdb, 20, domain.GenderFemale, year-28, true)
	mustCreateUser(t, gdb, 21, domain.GenderFemale, year-40, true)   // too old
	mustCreateUser(t, gdb, 22, domain.GenderMale, year-28, true)     // wrong gender
	mustCreateUser(t, gdb, 23, domain.GenderFemale, year-28, false)  // inactive
	mustCreateUser(t, gdb, 24, domain.GenderFemale, year-28, true)   // already swiped below
	require.NoError(t, gdb.Create(&db.Swipe{SwiperID: 10, SwipedID: 24, Type: domain.SwipeDislike}).Error)

	candidates, err := repo.FindEligible(ctx, 10, femalePreference(10, 25, 35), now)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, uint64(20), candidates[0].ID)
}

func TestFindEligible_AgeBoundsInclusive(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewCandidateRepository(gdb)

	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	year := now.Year()

	mustCreateUser(t, gdb, 1, domain.GenderMale, year-30, true) // requester
	mustCreateUser(t, gdb, 2, domain.GenderFemale, year-25, true)
	mustCreateUser(t, gdb, 3, domain.GenderFemale, year-35, true)
	mustCreateUser(t, gdb, 4, domain.GenderFemale, year-24, true)
	mustCreateUser(t, gdb, 5, domain.GenderFemale, year-36, true)

	candidates, err := repo.FindEligible(ctx, 1, femalePreference(1, 25, 35), now)
	require.NoError(t, err)

	ids := make([]uint64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []uint64{2, 3}, ids)
}

func TestFindEligible_AnyGenderPreference(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewCandidateRepository(gdb)

	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	year := now.Year()

	mustCreateUser(t, gdb, 1, domain.GenderOther, year-30, true) // requester
	mustCreateUser(t, gdb, 2, domain.GenderMale, year-30, true)
	mustCreateUser(t, gdb, 3, domain.GenderFemale, year-30, true)
	mustCreateUser(t, gdb, 4, domain.GenderOther, year-30, true)

	pref := db.Preference{UserID: 1, PreferredGender: domain.GenderOther, MinAge: 18, MaxAge: 99}
	candidates, err := repo.FindEligible(ctx, 1, pref, now)
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
}
