package domain

import "time"

// OrderStatus is a closed enumeration. Transitions are restricted to
// Placed -> Shipped -> Delivered; anything else is rejected by the ledger.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "Placed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
)

var statusTransitions = map[OrderStatus]OrderStatus{
	StatusPlaced:  StatusShipped,
	StatusShipped: StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return statusTransitions[s] == next
}

// LineItem is a frozen (name, unit price, quantity) snapshot taken at
// order-commit time, independent of later catalog changes.
type LineItem struct {
	ProductName string
	UnitPrice   Money
	Quantity    int
}

// Order is an immutable transaction record; only Status changes after
// creation, and only through the ledger.
type Order struct {
	ID         string
	CustomerID string
	LineItems  []LineItem
	Total      Money // final charged amount, tax included
	Tax        Money
	Address    string
	StateCode  string
	PlacedAt   time.Time
	Status     OrderStatus
}

// Clone returns a copy whose line-item slice is independent of the
// ledger-owned record.
func (o Order) Clone() Order {
	out := o
	if o.LineItems != nil {
		out.LineItems = make([]LineItem, len(o.LineItems))
		copy(out.LineItems, o.LineItems)
	}
	return out
}
