package port

import (
	"context"

	"github.com/smartmarket/storefront/internal/domain"
)

// CatalogProvider supplies the read-only product and farmer lists. The core
// never mutates what it returns.
type CatalogProvider interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Farmers(ctx context.Context) ([]domain.Farmer, error)
	Product(ctx context.Context, id string) (domain.Product, error)
	Farmer(ctx context.Context, id string) (domain.Farmer, error)
}
