package cart

import (
	"github.com/shopspring/decimal"
	"github.com/smartmarket/storefront/internal/domain"
)

// Checkout policy: flat shipping fee, waived above a subtotal threshold,
// plus a flat tax rate on the subtotal.
var (
	freeShippingThreshold = decimal.NewFromInt(50)
	shippingFee           = decimal.RequireFromString("5.99")
	taxRate               = decimal.RequireFromString("0.07")
)

type OrderSummary struct {
	Subtotal domain.Money
	Shipping domain.Money
	Tax      domain.Money
	Total    domain.Money
}

// Summarize derives shipping, tax and order total from a subtotal:
// shipping is waived strictly above the threshold, tax is a flat 7%.
func Summarize(subtotal domain.Money) OrderSummary {
	unit := subtotal.Currency

	shipping := domain.NewMoney(shippingFee, unit)
	if subtotal.Amount.GreaterThan(freeShippingThreshold) {
		shipping = domain.ZeroMoney(unit)
	}

	tax := domain.NewMoney(subtotal.Amount.Mul(taxRate), unit)

	total := domain.NewMoney(
		subtotal.Amount.Add(shipping.Amount).Add(tax.Amount),
		unit,
	)

	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}
}
