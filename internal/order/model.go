package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemSnapshot is one unit of a lugaw item copied onto an order at
// submission time. Menu edits never rewrite these.
type ItemSnapshot struct {
	ItemID   int64           `json:"item_id"`
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
	IsSpicy  bool            `json:"is_spicy"`
}

// DrinkSnapshot is one unit of a drink copied onto an order.
type DrinkSnapshot struct {
	ItemID   int64           `json:"item_id"`
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
}

type Order struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Items        []ItemSnapshot  `json:"items"`
	Drinks       []DrinkSnapshot `json:"drinks"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at"`
}

// SnapshotTotal sums every item and drink snapshot price. The stored
// total must always equal this figure.
func (o *Order) SnapshotTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price)
	}
	for _, d := range o.Drinks {
		total = total.Add(d.Price)
	}
	return total
}
