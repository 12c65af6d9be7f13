package menu

import (
	"github.com/shopspring/decimal"

	"github.com/davematchica/Lugawan-Ordering-System/internal/apperr"
)

// Category of a sellable item. The stall sells lugaw bowls and drinks.
type Category string

const (
	CategoryLugaw  Category = "lugaw"
	CategoryDrinks Category = "drinks"
)

func (c Category) Valid() bool {
	return c == CategoryLugaw || c == CategoryDrinks
}

// MenuItem is a sellable item. Orders snapshot name and price at
// submission time, so editing an item never rewrites history.
type MenuItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
}

// Validate checks the boundary rules before anything is persisted.
func Validate(m *MenuItem) error {
	if m.Name == "" {
		return apperr.Validation("name", "name is required")
	}
	if !m.Category.Valid() {
		return apperr.Validation("category", "unknown category")
	}
	if m.Price.IsNegative() {
		return apperr.Validation("price", "price must not be negative")
	}
	return nil
}
