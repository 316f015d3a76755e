package rotations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/soeforge/rotation-builder/internal/errors"
	"github.com/soeforge/rotation-builder/internal/repositories/rotations"
	"github.com/soeforge/rotation-builder/internal/testutils"
)

// Exercises the full CRUD cycle against a real Redis; skipped when no
// local Redis is available.
func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := rotations.NewRedisRepository(&rotations.RedisRepoConfig{Client: client})
	ctx := context.Background()

	snap := testutils.NewArmsSnapshot("rot-int-1")
	require.NoError(t, repo.Create(ctx, snap))

	err := repo.Create(ctx, snap)
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))

	got, err := repo.Get(ctx, "rot-int-1")
	require.NoError(t, err)
	assert.Equal(t, snap.Metadata.Name, got.Metadata.Name)
	require.Len(t, got.Spells, 2)

	got.Metadata.Description = "updated"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, "rot-int-1")
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Metadata.Description)

	second := testutils.NewArmsSnapshot("rot-int-2")
	require.NoError(t, repo.Create(ctx, second))

	byClass, err := repo.GetByClass(ctx, "Warrior")
	require.NoError(t, err)
	assert.Len(t, byClass, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "rot-int-1"))
	_, err = repo.Get(ctx, "rot-int-1")
	assert.True(t, apperrors.IsNotFound(err))

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "rot-int-2", remaining[0].ID)
}
