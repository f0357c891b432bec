package catalog_test

import (
	"testing"

	"github.com/smartmarket/storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureProvider(t *testing.T) {
	ctx := t.Context()
	provider := catalog.NewFixtureProvider()

	products, err := provider.Products(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	farmers, err := provider.Farmers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, farmers)

	t.Run("every product references a known farmer", func(t *testing.T) {
		known := make(map[string]bool, len(farmers))
		for _, f := range farmers {
			known[f.ID] = true
		}

		for _, p := range products {
			assert.True(t, known[p.FarmerID], "product %s references unknown farmer %s", p.ID, p.FarmerID)
		}
	})

	t.Run("lookup by ID", func(t *testing.T) {
		got, err := provider.Product(ctx, products[0].ID)
		require.NoError(t, err)
		assert.Equal(t, products[0].ID, got.ID)

		gotFarmer, err := provider.Farmer(ctx, farmers[0].ID)
		require.NoError(t, err)
		assert.Equal(t, farmers[0].ID, gotFarmer.ID)
	})

	t.Run("lookup miss", func(t *testing.T) {
		_, err := provider.Product(ctx, "no-such-product")
		require.ErrorIs(t, err, catalog.ErrNotFound)

		_, err = provider.Farmer(ctx, "no-such-farmer")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("callers cannot mutate the catalog", func(t *testing.T) {
		products[0].Name = "tampered"

		fresh, err := provider.Products(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "tampered", fresh[0].Name)
	})
}
