// Package ledger implements order pricing, placement, and aggregate
// reporting behind port.OrderLedger.
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"storefront/internal/domain"
	"storefront/internal/port"
	"storefront/internal/tax"
)

type manager struct {
	mu      sync.RWMutex
	catalog port.Catalog
	orders  []domain.Order
}

func New(catalog port.Catalog) port.OrderLedger {
	return &manager{catalog: catalog}
}

// CalculateTotals prices a subtotal for a jurisdiction. An empty state code
// means "no jurisdiction specified" and yields zero tax; a non-empty code
// must be a valid jurisdiction.
func (m *manager) CalculateTotals(subtotal domain.Money, stateCode string) (domain.Money, domain.Money, error) {
	if stateCode == "" {
		zero := domain.Money{Amount: decimal.Zero, Currency: subtotal.Currency}
		return zero, subtotal, nil
	}
	if !tax.IsValid(stateCode) {
		return domain.Money{}, domain.Money{}, domain.InvalidInputf("invalid state code %q", stateCode)
	}

	taxAmount, total := tax.ComputeTax(subtotal, stateCode)
	return taxAmount, total, nil
}

// PlaceOrder commits a cart: it validates the shipping details, reserves
// stock for every line all-or-nothing, and appends an immutable order.
//
// The ledger records the caller-supplied tax and final total rather than
// recomputing them from the subtotal: pricing (CalculateTotals) and
// commitment are deliberately separate steps.
func (m *manager) PlaceOrder(cart *domain.Cart, subtotal, taxAmount, total domain.Money, address, stateCode string) (domain.Order, error) {
	_ = subtotal // carried by callers between pricing and commitment, not recorded

	if strings.TrimSpace(address) == "" {
		return domain.Order{}, domain.InvalidInputf("shipping address cannot be empty")
	}
	if strings.TrimSpace(stateCode) == "" {
		return domain.Order{}, domain.InvalidInputf("state must be selected")
	}
	if !tax.IsValid(stateCode) {
		return domain.Order{}, domain.InvalidInputf("invalid state code %q", stateCode)
	}

	items, err := m.catalog.Reserve(cart.Items())
	if err != nil {
		return domain.Order{}, fmt.Errorf("reserve stock: %w", err)
	}

	order := domain.Order{
		ID:         uuid.NewString(),
		CustomerID: cart.CustomerID,
		LineItems:  items,
		Total:      total,
		Tax:        taxAmount,
		Address:    address,
		StateCode:  stateCode,
		PlacedAt:   time.Now(),
		Status:     domain.StatusPlaced,
	}

	m.mu.Lock()
	m.orders = append(m.orders, order)
	m.mu.Unlock()

	return order.Clone(), nil
}

func (m *manager) OrdersByCustomer(customerID string) []domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Order
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (m *manager) AllOrders() []domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o.Clone())
	}
	return out
}

// UpdateStatus enforces the Placed -> Shipped -> Delivered transition table;
// any other move is rejected.
func (m *manager) UpdateStatus(orderID string, next domain.OrderStatus) error {
	if !next.Valid() {
		return domain.InvalidInputf("unknown order status %q", next)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].ID != orderID {
			continue
		}
		current := m.orders[i].Status
		if !current.CanTransitionTo(next) {
			return domain.InvalidInputf("illegal status transition %s -> %s", current, next)
		}
		m.orders[i].Status = next
		return nil
	}
	return domain.NotFoundf("order with ID %q", orderID)
}

func (m *manager) TotalRevenue() domain.Money {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sum := decimal.Zero
	unit := currency.USD
	for i, o := range m.orders {
		if i == 0 {
			unit = o.Total.Currency
		}
		sum = sum.Add(o.Total.Amount)
	}
	return domain.Money{Amount: sum, Currency: unit}
}

func (m *manager) TotalOrdersPlaced() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orders)
}

// MostOrderedProduct aggregates quantity by product name across all line
// items. Ties go to the first name reaching the maximum when scanning orders
// oldest to newest. ok is false when the ledger is empty.
func (m *manager) MostOrderedProduct() (name string, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	totals := make(map[string]int)
	best, bestQty := "", 0
	for _, o := range m.orders {
		for _, li := range o.LineItems {
			totals[li.ProductName] += li.Quantity
			if totals[li.ProductName] > bestQty {
				best, bestQty = li.ProductName, totals[li.ProductName]
			}
		}
	}
	return best, bestQty > 0
}
