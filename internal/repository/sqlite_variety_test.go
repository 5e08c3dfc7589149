package repository

import (
	"context"
	"testing"

	"github.com/RoyalhillsFarm/trayflow-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarietyRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteVarietyRepo(db)
	ctx := context.Background()

	v := testutil.NewTestVariety("Sunflower",
		testutil.WithHarvestDays(12),
		testutil.WithBlackoutDays(4),
		testutil.WithSoakHours(8),
	)
	require.NoError(t, repo.Create(ctx, v))

	fetched, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunflower", fetched.Name)
	assert.Equal(t, 12, fetched.HarvestDays)
	assert.Equal(t, 4, fetched.BlackoutDays)
	assert.Equal(t, 8, fetched.SoakHours)
	assert.True(t, fetched.NeedsSoak())
}

func TestVarietyRepo_ZeroGrowthNumbersRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteVarietyRepo(db)
	ctx := context.Background()

	// Half-filled profiles are legal; the projector copes with zeros.
	v := testutil.NewTestVariety("Mystery Mix",
		testutil.WithHarvestDays(0),
		testutil.WithBlackoutDays(0),
	)
	require.NoError(t, repo.Create(ctx, v))

	fetched, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Zero(t, fetched.HarvestDays)
	assert.Zero(t, fetched.BlackoutDays)
	assert.False(t, fetched.NeedsSoak())
}

func TestVarietyRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteVarietyRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVarietyRepo_List_SortedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteVarietyRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestVariety("Radish")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestVariety("Basil")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Basil", list[0].Name)
	assert.Equal(t, "Radish", list[1].Name)
}
