package session_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/smartmarket/storefront/internal/domain"
	"github.com/smartmarket/storefront/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomUser() domain.User {
	return domain.User{
		ID:    gofakeit.UUID(),
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Role:  domain.RoleCustomer,
	}
}

func TestMemoryRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("load before save: no session", func(t *testing.T) {
		repo := session.NewMemoryRepository()

		_, ok, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		repo := session.NewMemoryRepository()
		user := randomUser()

		require.NoError(t, repo.Save(ctx, user))

		got, ok, err := repo.Load(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(user, got))
	})

	t.Run("save overwrites the previous record", func(t *testing.T) {
		repo := session.NewMemoryRepository()

		require.NoError(t, repo.Save(ctx, randomUser()))

		replacement := randomUser()
		require.NoError(t, repo.Save(ctx, replacement))

		got, ok, err := repo.Load(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, replacement.ID, got.ID)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		repo := session.NewMemoryRepository()

		require.NoError(t, repo.Save(ctx, randomUser()))
		require.NoError(t, repo.Delete(ctx))

		_, ok, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		// deleting an absent record is fine
		require.NoError(t, repo.Delete(ctx))
	})
}
