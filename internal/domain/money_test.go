package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smartmarket/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMoneyAdd(t *testing.T) {
	a := domain.NewMoney(decimal.RequireFromString("1.25"), currency.USD)
	b := domain.NewMoney(decimal.RequireFromString("2.50"), currency.USD)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.RequireFromString("3.75")))
	assert.Equal(t, "USD", sum.Currency.String())

	eur := domain.NewMoney(decimal.NewFromInt(1), currency.EUR)
	_, err = a.Add(eur)
	require.ErrorContains(t, err, "currency mismatch")
}

func TestMoneyMulInt(t *testing.T) {
	price := domain.NewMoney(decimal.RequireFromString("4.99"), currency.USD)

	total := price.MulInt(3)
	assert.True(t, total.Amount.Equal(decimal.RequireFromString("14.97")))
}

func TestCartItemLineTotal(t *testing.T) {
	item := domain.CartItem{
		ProductID: "p1",
		Price:     domain.NewMoney(decimal.RequireFromString("2.50"), currency.USD),
		Quantity:  4,
	}

	assert.True(t, item.LineTotal().Amount.Equal(decimal.NewFromInt(10)))
}

func TestCartItemCount(t *testing.T) {
	cart := domain.Cart{
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 3},
		},
	}

	assert.Equal(t, 5, cart.ItemCount())
	assert.Zero(t, domain.Cart{}.ItemCount())
}
