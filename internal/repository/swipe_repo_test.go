package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
	svcErr "github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/errors"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/repository"
)

func TestSwipeCreateAndFind(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewSwipeRepository(gdb)

	swipe := db.Swipe{SwiperID: 1, SwipedID: 2, Type: domain.SwipeLike}
	require.NoError(t, repo.Create(ctx, &swipe))
	assert.NotZero(t, swipe.ID)

	found, err := repo.Find(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.SwipeLike, found.Type)

	// direction matters: the reverse edge does not exist
	reverse, err := repo.Find(ctx, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, reverse)
}

func TestSwipeCreate_DuplicatePairRejected(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewSwipeRepository(gdb)

	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: 1, SwipedID: 2, Type: domain.SwipeLike}))

	// second attempt on the same ordered pair, even with a different type
	err := repo.Create(ctx, &db.Swipe{SwiperID: 1, SwipedID: 2, Type: domain.SwipeDislike})
	assert.ErrorIs(t, err, svcErr.ErrAlreadySwiped)

	// the original row is untouched
	found, ferr := repo.Find(ctx, 1, 2)
	require.NoError(t, ferr)
	require.NotNil(t, found)
	assert.Equal(t, domain.SwipeLike, found.Type)
}

func TestSwipeHas(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewSwipeRepository(gdb)

	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: 1, SwipedID: 2, Type: domain.SwipePass}))

	has, err := repo.Has(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.Has(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCountPositiveReceived(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewSwipeRepository(gdb)

	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: 1, SwipedID: 9, Type: domain.SwipeLike}))
	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: 2, SwipedID: 9, Type: domain.SwipeSuperLike}))
	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: 3, SwipedID: 9, Type: domain.SwipeDislike}))
	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: 4, SwipedID: 9, Type: domain.SwipePass}))

	count, err := repo.CountPositiveReceived(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
