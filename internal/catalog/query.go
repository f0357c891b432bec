package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smartmarket/storefront/internal/domain"
)

type SortKey string

const (
	// SortFeatured keeps the catalog's natural order.
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
)

// CategoryAll disables the category stage.
const CategoryAll = "all"

// CategoryOrganic is not a real product category: it selects on the IsOrganic
// flag instead of the Category field.
const CategoryOrganic = "organic"

// PriceRange bounds are inclusive on both ends. Min above Max matches nothing.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// FilterSpec is the complete set of narrowing and ordering criteria a listing
// page holds. Pages pass the full FilterSpec on every change; there is no
// incremental filtering.
type FilterSpec struct {
	Category   string
	SearchText string
	PriceRange *PriceRange // nil means unbounded
	Sort       SortKey
}

// Query narrows and orders products: category (with the organic overlay),
// then search, then price range, then a stable sort. The input slice is never
// mutated; the result is always a fresh slice.
func Query(products []domain.Product, spec FilterSpec) []domain.Product {
	out := make([]domain.Product, 0, len(products))

	for _, p := range products {
		if !matchesCategory(p, spec.Category) {
			continue
		}
		if !matchesSearch(p, spec.SearchText) {
			continue
		}
		if !matchesPrice(p, spec.PriceRange) {
			continue
		}

		out = append(out, p)
	}

	sortProducts(out, spec.Sort)

	return out
}

func matchesCategory(p domain.Product, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}

	if strings.EqualFold(string(p.Category), category) {
		return true
	}

	return strings.EqualFold(category, CategoryOrganic) && p.IsOrganic
}

func matchesSearch(p domain.Product, searchText string) bool {
	if searchText == "" {
		return true
	}

	query := strings.ToLower(searchText)

	for _, field := range []string{p.Name, p.Description, p.FarmerName, string(p.Category)} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

func matchesPrice(p domain.Product, r *PriceRange) bool {
	if r == nil {
		return true
	}

	amount := p.Price.Amount

	return amount.Cmp(r.Min) >= 0 && amount.Cmp(r.Max) <= 0
}

func sortProducts(products []domain.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount.LessThan(products[j].Price.Amount)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.Amount.LessThan(products[i].Price.Amount)
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].CreatedAt.Before(products[i].CreatedAt)
		})
	default:
		// featured: catalog order as-is
	}
}

// FarmerFilter narrows the farmers listing. There is no sort stage: the page
// shows farmers in catalog order.
type FarmerFilter struct {
	Specialty  string // specialty name or "all"
	SearchText string
}

// QueryFarmers narrows farmers by specialty membership, then by search across
// name, bio, location and specialties.
func QueryFarmers(farmers []domain.Farmer, filter FarmerFilter) []domain.Farmer {
	out := make([]domain.Farmer, 0, len(farmers))

	for _, f := range farmers {
		if !matchesSpecialty(f, filter.Specialty) {
			continue
		}
		if !matchesFarmerSearch(f, filter.SearchText) {
			continue
		}

		out = append(out, f)
	}

	return out
}

func matchesSpecialty(f domain.Farmer, specialty string) bool {
	if specialty == "" || specialty == CategoryAll {
		return true
	}

	for _, s := range f.Specialties {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}

	return false
}

func matchesFarmerSearch(f domain.Farmer, searchText string) bool {
	if searchText == "" {
		return true
	}

	query := strings.ToLower(searchText)

	for _, field := range []string{f.Name, f.Bio, f.Location} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	for _, s := range f.Specialties {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}

	return false
}
