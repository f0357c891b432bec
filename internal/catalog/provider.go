package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartmarket/storefront/internal/domain"
)

var ErrNotFound = errors.New("not found")

// StaticProvider serves a fixed catalog. Every call returns copies, so
// callers can never mutate the underlying dataset.
type StaticProvider struct {
	products []domain.Product
	farmers  []domain.Farmer
}

func NewStaticProvider(products []domain.Product, farmers []domain.Farmer) *StaticProvider {
	return &StaticProvider{
		products: products,
		farmers:  farmers,
	}
}

func (p *StaticProvider) Products(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(p.products))
	copy(out, p.products)

	return out, nil
}

func (p *StaticProvider) Farmers(_ context.Context) ([]domain.Farmer, error) {
	out := make([]domain.Farmer, len(p.farmers))
	copy(out, p.farmers)

	return out, nil
}

func (p *StaticProvider) Product(_ context.Context, id string) (domain.Product, error) {
	for _, product := range p.products {
		if product.ID == id {
			return product, nil
		}
	}

	return domain.Product{}, fmt.Errorf("product[%s]: %w", id, ErrNotFound)
}

func (p *StaticProvider) Farmer(_ context.Context, id string) (domain.Farmer, error) {
	for _, farmer := range p.farmers {
		if farmer.ID == id {
			return farmer, nil
		}
	}

	return domain.Farmer{}, fmt.Errorf("farmer[%s]: %w", id, ErrNotFound)
}
