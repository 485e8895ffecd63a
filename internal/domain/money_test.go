package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"storefront/internal/domain"
)

func TestMoneyAdd(t *testing.T) {
	a := domain.USD(decimal.RequireFromString("10.50"))
	b := domain.USD(decimal.RequireFromString("4.25"))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "14.75", sum.Amount.StringFixed(2))
	assert.Equal(t, currency.USD, sum.Currency)
}

func TestMoneyAddCurrencyMismatch(t *testing.T) {
	a := domain.USD(decimal.NewFromInt(10))
	b := domain.Money{Amount: decimal.NewFromInt(10), Currency: currency.EUR}

	_, err := a.Add(b)
	require.ErrorContains(t, err, "currency mismatch")
}

func TestMoneyMul(t *testing.T) {
	price := domain.USD(decimal.RequireFromString("25.00"))

	line := price.Mul(decimal.NewFromInt(3))
	assert.Equal(t, "75.00", line.Amount.StringFixed(2))
	assert.Equal(t, currency.USD, line.Currency)

	taxed := price.Mul(decimal.RequireFromString("0.0725"))
	assert.Equal(t, "1.8125", taxed.Amount.String())
}
