package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/testutil"
)

func TestSettingsRepo_PutGetDelete(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "state")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Put(ctx, "state", `{"view":"month"}`))
	got, err := repo.Get(ctx, "state")
	require.NoError(t, err)
	assert.Equal(t, `{"view":"month"}`, got)

	require.NoError(t, repo.Put(ctx, "state", `{"view":"week"}`))
	got, err = repo.Get(ctx, "state")
	require.NoError(t, err)
	assert.Equal(t, `{"view":"week"}`, got)

	require.NoError(t, repo.Delete(ctx, "state"))
	_, err = repo.Get(ctx, "state")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "missing"))
}
