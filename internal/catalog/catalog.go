// Package catalog implements the in-memory product inventory behind
// port.Catalog.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/port"
)

type manager struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string // product IDs in insertion order
}

func New() port.Catalog {
	return &manager{
		products: make(map[string]*domain.Product),
	}
}

func (m *manager) Add(p domain.Product) error {
	// Re-validate so a zero-value Product cannot bypass NewProduct.
	validated, err := domain.NewProduct(p.ID, p.Name, p.Category, p.Price, p.Quantity)
	if err != nil {
		return err
	}
	validated.Reviews = append([]domain.Review(nil), p.Reviews...)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[validated.ID]; exists {
		return domain.InvalidInputf("product ID %q already exists", validated.ID)
	}

	m.products[validated.ID] = &validated
	m.order = append(m.order, validated.ID)
	return nil
}

func (m *manager) Get(productID string) (domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[productID]
	if !ok {
		return domain.Product{}, domain.NotFoundf("product with ID %q", productID)
	}
	return p.Clone(), nil
}

func (m *manager) Update(productID, name, category string, price domain.Money, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[productID]
	if !ok {
		return domain.NotFoundf("product with ID %q", productID)
	}
	if err := domain.ValidateProductFields(name, price, quantity); err != nil {
		return err
	}

	p.Name = name
	p.Category = category
	p.Price = price
	p.Quantity = quantity
	return nil
}

func (m *manager) Delete(productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[productID]; !ok {
		return domain.NotFoundf("product with ID %q", productID)
	}

	delete(m.products, productID)
	for i, id := range m.order {
		if id == productID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns snapshots of every product in insertion order.
func (m *manager) All() []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked(func(*domain.Product) bool { return true })
}

// SearchByName matches case-insensitively on a name substring; the empty
// query matches everything.
func (m *manager) SearchByName(query string) []domain.Product {
	needle := strings.ToLower(query)

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked(func(p *domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// SortedByPrice returns all products ascending by price. The sort is stable,
// so equal prices keep catalog insertion order.
func (m *manager) SortedByPrice() []domain.Product {
	m.mu.RLock()
	out := m.snapshotLocked(func(*domain.Product) bool { return true })
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price.Amount.LessThan(out[j].Price.Amount)
	})
	return out
}

func (m *manager) OutOfStock() []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked(func(p *domain.Product) bool {
		return p.Quantity == 0
	})
}

func (m *manager) AddReview(productID, author, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[productID]
	if !ok {
		return domain.NotFoundf("product with ID %q", productID)
	}
	if strings.TrimSpace(text) == "" {
		return domain.InvalidInputf("review text cannot be empty")
	}

	p.Reviews = append(p.Reviews, domain.Review{Author: author, Text: text})
	return nil
}

func (m *manager) Reviews(productID string) ([]domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[productID]
	if !ok {
		return nil, domain.NotFoundf("product with ID %q", productID)
	}

	out := make([]domain.Review, len(p.Reviews))
	copy(out, p.Reviews)
	return out, nil
}

// Reserve holds the write lock across validation and decrement, so
// concurrent reservations cannot interleave between the stock check and the
// commit.
func (m *manager) Reserve(lines []domain.CartItem) ([]domain.LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Validate against the cumulative requested quantity per product, so
	// duplicate lines cannot slip past a per-line stock check and drive
	// quantity negative.
	requested := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, domain.InvalidInputf("requested quantity for %q must be at least 1", line.ProductID)
		}
		p, ok := m.products[line.ProductID]
		if !ok {
			return nil, domain.NotFoundf("product with ID %q", line.ProductID)
		}
		requested[line.ProductID] += line.Quantity
		if p.Quantity < requested[line.ProductID] {
			return nil, &domain.OutOfStockError{
				ProductName: p.Name,
				Available:   p.Quantity,
				Requested:   requested[line.ProductID],
			}
		}
	}

	items := make([]domain.LineItem, 0, len(lines))
	for _, line := range lines {
		p := m.products[line.ProductID]
		items = append(items, domain.LineItem{
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    line.Quantity,
		})
		p.Quantity -= line.Quantity
	}
	return items, nil
}

// snapshotLocked clones every product passing the filter, preserving
// insertion order. Callers hold at least the read lock.
func (m *manager) snapshotLocked(keep func(*domain.Product) bool) []domain.Product {
	var out []domain.Product
	for _, id := range m.order {
		if p := m.products[id]; keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
