package domain

import "time"

// Category is the fixed set of product categories the storefront knows about.
// "organic" is deliberately not a Category: it is an overlay on the IsOrganic
// flag, applied at query time.
type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryGrains     Category = "grains"
	CategoryMeat       Category = "meat"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Unit        string // display string, e.g. "per lb"
	Category    Category
	IsOrganic   bool
	Image       string
	FarmerID    string
	FarmerName  string

	CreatedAt time.Time
}

type Farmer struct {
	ID          string
	Name        string
	Bio         string
	Location    string
	Specialties []string
	Rating      float64
	ReviewCount int
	Verified    bool
}
