package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category of a stall expense.
type Category string

const (
	CategoryIngredients    Category = "ingredients"
	CategoryUtilities      Category = "utilities"
	CategorySupplies       Category = "supplies"
	CategoryTransportation Category = "transportation"
	CategoryMiscellaneous  Category = "miscellaneous"
)

// Categories in display order.
var Categories = []Category{
	CategoryIngredients,
	CategoryUtilities,
	CategorySupplies,
	CategoryTransportation,
	CategoryMiscellaneous,
}

func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

type Expense struct {
	ID          int64           `json:"id"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}
