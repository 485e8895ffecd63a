package port

import (
	"storefront/internal/domain"
)

// Catalog owns the product inventory. Reads return value snapshots; all
// mutation goes through the catalog so the quantity invariant holds.
type Catalog interface {
	Add(p domain.Product) error
	Get(productID string) (domain.Product, error)
	Update(productID, name, category string, price domain.Money, quantity int) error
	Delete(productID string) error

	All() []domain.Product
	SearchByName(query string) []domain.Product
	SortedByPrice() []domain.Product
	OutOfStock() []domain.Product

	AddReview(productID, author, text string) error
	Reviews(productID string) ([]domain.Review, error)

	// Reserve validates every cart line and, only if all pass, snapshots
	// line items and decrements stock. All-or-nothing: a single failing
	// line aborts with no partial decrement.
	Reserve(lines []domain.CartItem) ([]domain.LineItem, error)
}

// OrderLedger prices carts, commits orders against the catalog, and answers
// aggregate queries over the order history.
type OrderLedger interface {
	CalculateTotals(subtotal domain.Money, stateCode string) (tax, total domain.Money, err error)
	PlaceOrder(cart *domain.Cart, subtotal, tax, total domain.Money, address, stateCode string) (domain.Order, error)

	OrdersByCustomer(customerID string) []domain.Order
	AllOrders() []domain.Order
	UpdateStatus(orderID string, next domain.OrderStatus) error

	TotalRevenue() domain.Money
	TotalOrdersPlaced() int
	MostOrderedProduct() (string, bool)
}

// UserStore is the auth collaborator. The credential check is a single
// equality comparison.
type UserStore interface {
	Register(u domain.User) error
	Login(username, password string) (domain.User, error)
}
