package domain

// Cart accumulates requested quantities for one customer before checkout.
// It is pure bookkeeping: no stock or price data is cached here, and no
// validation happens until order placement.
type Cart struct {
	CustomerID string

	items []CartItem
}

// CartItem references a catalog product by identity only.
type CartItem struct {
	ProductID string
	Quantity  int
}

func NewCart(customerID string) *Cart {
	return &Cart{CustomerID: customerID}
}

// AddItem accumulates: adding an already-present product increments its
// requested quantity rather than overwriting it.
func (c *Cart) AddItem(productID string, quantity int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, CartItem{ProductID: productID, Quantity: quantity})
}

// RemoveItem is a no-op if the product is not in the cart.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}
