package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAssignmentRepository_SaveAndFind(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormAssignmentRepository(db)
	ctx := context.Background()

	a := newTestAssignment(t, uuid.New(), uuid.New(), testDay, assignment.AccessoryCharger, assignment.AccessoryMouse)
	require.NoError(t, repo.Save(ctx, a))

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, assignment.StatusActive, found.Status)
	assert.Equal(t, []string{"Charger", "Mouse"}, found.IssuedAccessories.Strings())
	assert.Empty(t, found.ReturnedAccessories)

	err = found.Return(assignment.ReturnInput{
		Condition:           assignment.ConditionGood,
		ReturnedAccessories: assignment.NewAccessorySet(assignment.AccessoryCharger),
	}, testDay.Add(48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, found))

	again, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, assignment.StatusReturned, again.Status)
	require.NotNil(t, again.ReturnedAt)
	assert.Equal(t, []string{"Charger"}, again.ReturnedAccessories.Strings())

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotFound)
}

func TestGormAssignmentRepository_OneActivePerAsset(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormAssignmentRepository(db)
	ctx := context.Background()
	assetID := uuid.New()

	first := newTestAssignment(t, assetID, uuid.New(), testDay)
	require.NoError(t, repo.Save(ctx, first))

	err := repo.Save(ctx, newTestAssignment(t, assetID, uuid.New(), testDay))
	assert.ErrorIs(t, err, assignment.ErrAlreadyAssigned)

	err = first.Return(assignment.ReturnInput{Condition: assignment.ConditionGood}, testDay.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	assert.NoError(t, repo.Save(ctx, newTestAssignment(t, assetID, uuid.New(), testDay.Add(2*time.Hour))))
}

func TestGormAssignmentRepository_Queries(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormAssignmentRepository(db)
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	now := testDay.AddDate(0, 1, 0)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	a1 := newTestAssignment(t, uuid.New(), alice, testDay)
	a1.DueDate = &past
	a2 := newTestAssignment(t, uuid.New(), alice, testDay.Add(time.Hour))
	a2.DueDate = &future
	a3 := newTestAssignment(t, uuid.New(), bob, testDay.Add(2*time.Hour), assignment.AccessoryMonitor)
	a4 := newTestAssignment(t, uuid.New(), bob, testDay.Add(3*time.Hour), assignment.AccessoryHeadphones)
	for _, a := range []*assignment.Assignment{a1, a2, a3, a4} {
		require.NoError(t, repo.Save(ctx, a))
	}
	for i, a := range []*assignment.Assignment{a3, a4} {
		err := a.Return(assignment.ReturnInput{Condition: assignment.ConditionGood}, now.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))
	}

	t.Run("lists newest first", func(t *testing.T) {
		items, err := repo.FindAll(ctx, assignment.Filter{})
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, a4.ID, items[0].ID)
		assert.Equal(t, a1.ID, items[3].ID)
	})

	t.Run("filters", func(t *testing.T) {
		items, err := repo.FindAll(ctx, assignment.Filter{EmployeeID: &alice, Status: assignment.StatusActive})
		require.NoError(t, err)
		assert.Len(t, items, 2)

		items, err = repo.FindAll(ctx, assignment.Filter{AssetID: &a3.AssetID})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, a3.ID, items[0].ID)
	})

	t.Run("counts", func(t *testing.T) {
		n, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = repo.CountActiveByEmployee(ctx, bob)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		grouped, err := repo.CountActiveByEmployees(ctx, []uuid.UUID{alice, bob})
		require.NoError(t, err)
		assert.Equal(t, int64(2), grouped[alice])
		assert.Equal(t, int64(0), grouped[bob])

		n, err = repo.CountOverdue(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		exists, err := repo.ExistsActiveForAsset(ctx, a1.AssetID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsActiveForAsset(ctx, a3.AssetID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("recent active by assigned date", func(t *testing.T) {
		items, err := repo.FindRecentActive(ctx, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, a2.ID, items[0].ID)
	})

	t.Run("returned ordered by return time", func(t *testing.T) {
		items, err := repo.FindReturned(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, a4.ID, items[0].ID)
		assert.Equal(t, a3.ID, items[1].ID)
	})
}
