package domain

import "errors"

var ErrCartLocked = errors.New("cart is locked by a checkout in progress")

// LineItem is one product's aggregated quantity within a cart.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is the aggregate root for a customer's shopping cart. It holds at
// most one line item per product id; first-add order is preserved. Totals
// are always recomputed from the items, never stored.
type Cart struct {
	items  []LineItem
	locked bool
}

// NewCart returns an empty, unlocked cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of an existing line item by one, or
// appends a new line item with quantity 1.
func (c *Cart) AddItem(productID, name string, unitPrice float64, image string) error {
	if c.locked {
		return ErrCartLocked
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity++
			return nil
		}
	}
	c.items = append(c.items, LineItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Image:     image,
		Quantity:  1,
	})
	return nil
}

// UpdateQuantity sets an item's quantity to an absolute value. A quantity
// of zero or below removes the item. Unknown product ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	if c.locked {
		return ErrCartLocked
	}
	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		return nil
	}
	return nil
}

// RemoveItem removes the line item for productID if present.
func (c *Cart) RemoveItem(productID string) error {
	return c.UpdateQuantity(productID, 0)
}

// Clear empties the cart unconditionally, even while locked; it is the
// settlement step of a checkout and the only mutation allowed then.
func (c *Cart) Clear() {
	c.items = nil
}

// Restore replaces the cart contents from a snapshot, dropping entries
// that violate the aggregate's invariants (duplicate product ids merge,
// non-positive quantities are skipped).
func (c *Cart) Restore(items []LineItem) {
	c.items = nil
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		merged := false
		for i := range c.items {
			if c.items[i].ProductID == it.ProductID {
				c.items[i].Quantity += it.Quantity
				merged = true
				break
			}
		}
		if !merged {
			c.items = append(c.items, it)
		}
	}
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total returns the subtotal over all line items.
func (c *Cart) Total() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

// Count returns the total number of units across all line items.
func (c *Cart) Count() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Lock marks the cart as owned by a checkout in progress. Mutations other
// than Clear fail with ErrCartLocked until Unlock.
func (c *Cart) Lock() { c.locked = true }

// Unlock releases the checkout lock.
func (c *Cart) Unlock() { c.locked = false }

// Locked reports whether a checkout currently owns the cart.
func (c *Cart) Locked() bool { return c.locked }
