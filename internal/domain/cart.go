package domain

import "time"

type Cart struct {
	Items []CartItem
}

// CartItem is one cart line. Name, Price, Image, Unit and FarmerName are
// copied from the product when the line is created, so later catalog changes
// do not retroactively alter a cart.
type CartItem struct {
	ProductID  string
	Name       string
	Price      Money
	Image      string
	Unit       string
	FarmerName string
	Quantity   int

	AddedAt time.Time
}

// LineTotal is price times quantity for this line.
func (i CartItem) LineTotal() Money {
	return i.Price.MulInt(i.Quantity)
}

// NewCartItem snapshots the product into a cart line.
func NewCartItem(p Product, quantity int, now time.Time) CartItem {
	return CartItem{
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Image:      p.Image,
		Unit:       p.Unit,
		FarmerName: p.FarmerName,
		Quantity:   quantity,
		AddedAt:    now,
	}
}

// ItemCount is the sum of quantities across all lines, used for the cart badge.
func (c Cart) ItemCount() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}
