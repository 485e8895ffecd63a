package domain

import "strings"

// Product is the authoritative inventory record for one catalog entry.
// Quantity is the live stock count and never goes negative.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    Money
	Quantity int
	Reviews  []Review
}

// Review is an append-only (author, text) pair attached to a product.
type Review struct {
	Author string
	Text   string
}

func NewProduct(id, name, category string, price Money, quantity int) (Product, error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, InvalidInputf("product ID cannot be empty")
	}
	if err := ValidateProductFields(name, price, quantity); err != nil {
		return Product{}, err
	}

	return Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}, nil
}

// ValidateProductFields checks the mutable fields shared by construction and
// update, so the two paths cannot diverge.
func ValidateProductFields(name string, price Money, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return InvalidInputf("product name cannot be empty")
	}
	if price.IsNegative() {
		return InvalidInputf("price cannot be negative")
	}
	if quantity < 0 {
		return InvalidInputf("quantity cannot be negative")
	}
	return nil
}

// Clone returns a value snapshot whose review slice is independent of the
// catalog-owned record.
func (p Product) Clone() Product {
	out := p
	if p.Reviews != nil {
		out.Reviews = make([]Review, len(p.Reviews))
		copy(out.Reviews, p.Reviews)
	}
	return out
}
