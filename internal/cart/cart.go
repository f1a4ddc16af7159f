package cart

import "sync"

// Item is one cart line. Quantity is carried for forward compatibility but
// Add always pins it to 1: each pet is a unique animal, not stocked goods.
type Item struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Cart is pure session state. It is never synced to the backend; the only
// moment its contents leave the process is order placement.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart { return &Cart{} }

// Items returns a snapshot of the current lines.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Add puts a product into the cart with quantity 1. It reports false when
// the product is already present; a repeated add never duplicates the line.
func (c *Cart) Add(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ProductID == productID {
			return false
		}
	}
	c.items = append(c.items, Item{ProductID: productID, Quantity: 1})
	return true
}

// Remove drops the line for productID, if any.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(productID)
}

// UpdateQuantity sets the quantity on an existing line. A quantity of zero
// or less is a removal request, not an error.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// RemoveOrdered strips exactly the lines that were just purchased, leaving
// anything the customer chose not to buy in this pass untouched.
func (c *Cart) RemoveOrdered(ordered []Item) {
	bought := make(map[int]struct{}, len(ordered))
	for _, it := range ordered {
		bought[it.ProductID] = struct{}{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, it := range c.items {
		if _, ok := bought[it.ProductID]; !ok {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

func (c *Cart) remove(productID int) {
	for i, it := range c.items {
		if it.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
