// Package cart accumulates menu selections for an order draft. A cart
// is transient: it lives in memory until the draft is submitted or
// abandoned, and never touches storage.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/davematchica/Lugawan-Ordering-System/internal/menu"
	"github.com/davematchica/Lugawan-Ordering-System/internal/order"
)

var ErrLineNotFound = errors.New("cart line not found")

// Line is one selected menu item with a quantity. The spicy flag only
// applies to lugaw items; it is ignored for drinks.
type Line struct {
	ID       int64         `json:"id"`
	Item     menu.MenuItem `json:"item"`
	Quantity int           `json:"quantity"`
	IsSpicy  bool          `json:"is_spicy"`
}

type Cart struct {
	lines  []Line
	nextID int64
}

func New() *Cart { return &Cart{} }

// AddLine appends a line for item. Quantities below 1 are clamped to 1.
// Returns the cart-local line id used by UpdateQuantity and RemoveLine.
func (c *Cart) AddLine(item menu.MenuItem, quantity int, spicy bool) int64 {
	if quantity < 1 {
		quantity = 1
	}
	c.nextID++
	c.lines = append(c.lines, Line{
		ID:       c.nextID,
		Item:     item,
		Quantity: quantity,
		IsSpicy:  spicy && item.Category == menu.CategoryLugaw,
	})
	return c.nextID
}

// UpdateQuantity adjusts a line's quantity by delta, flooring at 1.
// Dropping to zero is not possible here; removal is its own action.
func (c *Cart) UpdateQuantity(lineID int64, delta int) error {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) RemoveLine(lineID int64) error {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total folds unit price times quantity over every line. Computed fresh
// on each call so edits can never leave a stale figure behind.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) LugawCount() int {
	return c.countByCategory(menu.CategoryLugaw)
}

func (c *Cart) DrinksCount() int {
	return c.countByCategory(menu.CategoryDrinks)
}

func (c *Cart) countByCategory(cat menu.Category) int {
	n := 0
	for _, l := range c.lines {
		if l.Item.Category == cat {
			n += l.Quantity
		}
	}
	return n
}

// Snapshot expands every line into per-unit snapshot entries ready for
// order creation: a quantity-3 lugaw line becomes three item entries.
// Drinks stay in their own sequence, empty but never nil when the cart
// holds no drink lines.
func (c *Cart) Snapshot() (items []order.ItemSnapshot, drinks []order.DrinkSnapshot, total decimal.Decimal) {
	items = []order.ItemSnapshot{}
	drinks = []order.DrinkSnapshot{}
	for _, l := range c.lines {
		for i := 0; i < l.Quantity; i++ {
			switch l.Item.Category {
			case menu.CategoryDrinks:
				drinks = append(drinks, order.DrinkSnapshot{
					ItemID:   l.Item.ID,
					ItemName: l.Item.Name,
					Price:    l.Item.Price,
				})
			default:
				items = append(items, order.ItemSnapshot{
					ItemID:   l.Item.ID,
					ItemName: l.Item.Name,
					Price:    l.Item.Price,
					IsSpicy:  l.IsSpicy,
				})
			}
		}
	}
	return items, drinks, c.Total()
}
