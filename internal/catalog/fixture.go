package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartmarket/storefront/internal/domain"
	"golang.org/x/text/currency"
)

// NewFixtureProvider returns the demo catalog: a handful of farm products
// across every category, priced in USD, plus the farmers behind them.
func NewFixtureProvider() *StaticProvider {
	return NewStaticProvider(fixtureProducts(), fixtureFarmers())
}

func usd(price string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(price), currency.USD)
}

func fixtureProducts() []domain.Product {
	base := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)

	return []domain.Product{
		{
			ID:          "prod-1",
			Name:        "Heirloom Tomatoes",
			Description: "Vine-ripened heirloom tomatoes in mixed colors.",
			Price:       usd("4.99"),
			Unit:        "per lb",
			Category:    domain.CategoryVegetables,
			IsOrganic:   true,
			Image:       "https://images.smartmarket.example/products/heirloom-tomatoes.jpg",
			FarmerID:    "farmer-1",
			FarmerName:  "Sarah Johnson",
			CreatedAt:   base,
		},
		{
			ID:          "prod-2",
			Name:        "Sweet Corn",
			Description: "Bi-color sweet corn, picked the same morning.",
			Price:       usd("0.75"),
			Unit:        "per ear",
			Category:    domain.CategoryVegetables,
			Image:       "https://images.smartmarket.example/products/sweet-corn.jpg",
			FarmerID:    "farmer-1",
			FarmerName:  "Sarah Johnson",
			CreatedAt:   base.AddDate(0, 0, 3),
		},
		{
			ID:          "prod-3",
			Name:        "Honeycrisp Apples",
			Description: "Crisp, sweet-tart apples from a fourth-generation orchard.",
			Price:       usd("3.49"),
			Unit:        "per lb",
			Category:    domain.CategoryFruits,
			Image:       "https://images.smartmarket.example/products/honeycrisp-apples.jpg",
			FarmerID:    "farmer-2",
			FarmerName:  "Miguel Alvarez",
			CreatedAt:   base.AddDate(0, 0, 6),
		},
		{
			ID:          "prod-4",
			Name:        "Organic Strawberries",
			Description: "Everbearing strawberries grown without synthetic pesticides.",
			Price:       usd("6.50"),
			Unit:        "per pint",
			Category:    domain.CategoryFruits,
			IsOrganic:   true,
			Image:       "https://images.smartmarket.example/products/strawberries.jpg",
			FarmerID:    "farmer-2",
			FarmerName:  "Miguel Alvarez",
			CreatedAt:   base.AddDate(0, 0, 10),
		},
		{
			ID:          "prod-5",
			Name:        "Raw Wildflower Honey",
			Description: "Unfiltered honey from hives at the meadow's edge.",
			Price:       usd("9.25"),
			Unit:        "per 12 oz jar",
			Category:    domain.CategoryGrains,
			Image:       "https://images.smartmarket.example/products/wildflower-honey.jpg",
			FarmerID:    "farmer-3",
			FarmerName:  "June Whitfield",
			CreatedAt:   base.AddDate(0, 0, 12),
		},
		{
			ID:          "prod-6",
			Name:        "Farmstead Cheddar",
			Description: "Cave-aged cheddar made from our own raw milk.",
			Price:       usd("12.00"),
			Unit:        "per 8 oz wedge",
			Category:    domain.CategoryDairy,
			Image:       "https://images.smartmarket.example/products/farmstead-cheddar.jpg",
			FarmerID:    "farmer-4",
			FarmerName:  "Theo Brandt",
			CreatedAt:   base.AddDate(0, 0, 15),
		},
		{
			ID:          "prod-7",
			Name:        "Organic Whole Milk",
			Description: "Non-homogenized whole milk from grass-fed Jerseys.",
			Price:       usd("5.75"),
			Unit:        "per half gallon",
			Category:    domain.CategoryDairy,
			IsOrganic:   true,
			Image:       "https://images.smartmarket.example/products/whole-milk.jpg",
			FarmerID:    "farmer-4",
			FarmerName:  "Theo Brandt",
			CreatedAt:   base.AddDate(0, 0, 18),
		},
		{
			ID:          "prod-8",
			Name:        "Stone-Ground Cornmeal",
			Description: "Heritage dent corn milled weekly in small batches.",
			Price:       usd("7.40"),
			Unit:        "per 2 lb bag",
			Category:    domain.CategoryGrains,
			Image:       "https://images.smartmarket.example/products/cornmeal.jpg",
			FarmerID:    "farmer-3",
			FarmerName:  "June Whitfield",
			CreatedAt:   base.AddDate(0, 0, 21),
		},
		{
			ID:          "prod-9",
			Name:        "Pasture-Raised Chicken",
			Description: "Whole broiler chickens raised on open pasture.",
			Price:       usd("18.90"),
			Unit:        "per bird",
			Category:    domain.CategoryMeat,
			Image:       "https://images.smartmarket.example/products/pasture-chicken.jpg",
			FarmerID:    "farmer-5",
			FarmerName:  "Priya Natarajan",
			CreatedAt:   base.AddDate(0, 0, 24),
		},
		{
			ID:          "prod-10",
			Name:        "Grass-Fed Ground Beef",
			Description: "100% grass-fed and finished Angus beef.",
			Price:       usd("11.50"),
			Unit:        "per lb",
			Category:    domain.CategoryMeat,
			IsOrganic:   true,
			Image:       "https://images.smartmarket.example/products/ground-beef.jpg",
			FarmerID:    "farmer-5",
			FarmerName:  "Priya Natarajan",
			CreatedAt:   base.AddDate(0, 0, 27),
		},
		{
			ID:          "prod-11",
			Name:        "Rainbow Chard",
			Description: "Tender-stemmed chard bunches in red, gold and white.",
			Price:       usd("3.25"),
			Unit:        "per bunch",
			Category:    domain.CategoryVegetables,
			IsOrganic:   true,
			Image:       "https://images.smartmarket.example/products/rainbow-chard.jpg",
			FarmerID:    "farmer-1",
			FarmerName:  "Sarah Johnson",
			CreatedAt:   base.AddDate(0, 0, 30),
		},
		{
			ID:          "prod-12",
			Name:        "Concord Grapes",
			Description: "Deep purple slip-skin grapes, the classic jelly grape.",
			Price:       usd("5.10"),
			Unit:        "per quart",
			Category:    domain.CategoryFruits,
			Image:       "https://images.smartmarket.example/products/concord-grapes.jpg",
			FarmerID:    "farmer-2",
			FarmerName:  "Miguel Alvarez",
			CreatedAt:   base.AddDate(0, 0, 33),
		},
	}
}

func fixtureFarmers() []domain.Farmer {
	return []domain.Farmer{
		{
			ID:          "farmer-1",
			Name:        "Sarah Johnson",
			Bio:         "Runs Green Valley Farm, a five-acre market garden focused on heirloom vegetables.",
			Location:    "Green Valley, CA",
			Specialties: []string{"vegetables", "organic"},
			Rating:      4.8,
			ReviewCount: 127,
			Verified:    true,
		},
		{
			ID:          "farmer-2",
			Name:        "Miguel Alvarez",
			Bio:         "Fourth-generation orchardist growing apples, stone fruit and table grapes.",
			Location:    "Wenatchee, WA",
			Specialties: []string{"fruits"},
			Rating:      4.6,
			ReviewCount: 89,
			Verified:    true,
		},
		{
			ID:          "farmer-3",
			Name:        "June Whitfield",
			Bio:         "Keeps bees and mills heritage grains on a restored prairie homestead.",
			Location:    "Lawrence, KS",
			Specialties: []string{"grains", "organic"},
			Rating:      4.9,
			ReviewCount: 54,
			Verified:    false,
		},
		{
			ID:          "farmer-4",
			Name:        "Theo Brandt",
			Bio:         "Small dairy making raw-milk cheese from a closed herd of Jersey cows.",
			Location:    "Viroqua, WI",
			Specialties: []string{"dairy"},
			Rating:      4.7,
			ReviewCount: 203,
			Verified:    true,
		},
		{
			ID:          "farmer-5",
			Name:        "Priya Natarajan",
			Bio:         "Raises pastured poultry and grass-fed beef on rotating paddocks.",
			Location:    "Floyd, VA",
			Specialties: []string{"meat", "organic"},
			Rating:      4.5,
			ReviewCount: 61,
			Verified:    true,
		},
	}
}
