package restaurant

import (
	"fmt"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/kitchen"
)

// Cart holds the meals picked by the logged-in user before checkout.
// Meals are references into the restaurant's menu.
type Cart struct {
	items []*kitchen.Meal
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a meal. The same meal may be added repeatedly.
func (c *Cart) Add(m *kitchen.Meal) error {
	if m == nil {
		return fmt.Errorf("%w: meal cannot be nil", domain.ErrNilReference)
	}
	c.items = append(c.items, m)
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() { c.items = nil }

// Items returns the cart contents in the order they were added.
func (c *Cart) Items() []*kitchen.Meal {
	out := make([]*kitchen.Meal, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Total sums the current price of every meal in the cart.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, m := range c.items {
		total += m.TotalPrice()
	}
	return total
}

// Show renders the cart, or an empty-cart notice.
func (c *Cart) Show() []string {
	if len(c.items) == 0 {
		return []string{"Cart empty."}
	}
	lines := []string{"===== CART ====="}
	for i, m := range c.items {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, m.Name(), domain.FormatPrice(m.TotalPrice())))
	}
	return append(lines, "Total: "+domain.FormatPrice(c.Total()))
}
