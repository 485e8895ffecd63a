package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		prodName  string
		price     string
		quantity  int
		wantError error
	}{
		{
			name:     "valid product: ok",
			id:       "P001",
			prodName: "Laptop",
			price:    "1200.00",
			quantity: 10,
		},
		{
			name:     "zero price and quantity: ok",
			id:       "P002",
			prodName: "Freebie",
			price:    "0",
			quantity: 0,
		},
		{
			name:      "empty ID: invalid",
			id:        "",
			prodName:  "Laptop",
			price:     "10.00",
			quantity:  1,
			wantError: domain.ErrInvalidInput,
		},
		{
			name:      "whitespace ID: invalid",
			id:        "   ",
			prodName:  "Laptop",
			price:     "10.00",
			quantity:  1,
			wantError: domain.ErrInvalidInput,
		},
		{
			name:      "empty name: invalid",
			id:        "P003",
			prodName:  "",
			price:     "10.00",
			quantity:  1,
			wantError: domain.ErrInvalidInput,
		},
		{
			name:      "negative price: invalid",
			id:        "P004",
			prodName:  "Laptop",
			price:     "-0.01",
			quantity:  1,
			wantError: domain.ErrInvalidInput,
		},
		{
			name:      "negative quantity: invalid",
			id:        "P005",
			prodName:  "Laptop",
			price:     "10.00",
			quantity:  -1,
			wantError: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := domain.USD(decimal.RequireFromString(tt.price))

			p, err := domain.NewProduct(tt.id, tt.prodName, "Electronics", price, tt.quantity)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Zero(t, p)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.id, p.ID)
			assert.Equal(t, tt.prodName, p.Name)
			assert.Equal(t, tt.quantity, p.Quantity)
			assert.True(t, p.Price.Amount.Equal(price.Amount))
		})
	}
}

func TestProductClone(t *testing.T) {
	p, err := domain.NewProduct("P001", "Laptop", "Electronics", domain.USD(decimal.NewFromInt(100)), 5)
	require.NoError(t, err)
	p.Reviews = []domain.Review{{Author: "alice", Text: "great"}}

	clone := p.Clone()
	clone.Reviews[0].Text = "mutated"
	clone.Quantity = 0

	assert.Equal(t, "great", p.Reviews[0].Text)
	assert.Equal(t, 5, p.Quantity)
}
