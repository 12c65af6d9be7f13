// Package report derives sales, expense, and profit figures from
// already-fetched orders and expenses. Pure computation: callers pull
// the records for the window, Aggregate does the math.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davematchica/Lugawan-Ordering-System/internal/expense"
	"github.com/davematchica/Lugawan-Ordering-System/internal/order"
)

// TopItem is one row of a popularity ranking. Count is snapshot
// occurrences (one per unit sold), Revenue the summed snapshot prices.
type TopItem struct {
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CategoryBreakdown is one expense category's share of the window.
type CategoryBreakdown struct {
	Category expense.Category `json:"category"`
	Total    decimal.Decimal  `json:"total"`
	Percent  decimal.Decimal  `json:"percent"`
}

type Report struct {
	Sales            decimal.Decimal     `json:"sales"`
	Expenses         decimal.Decimal     `json:"expenses"`
	Profit           decimal.Decimal     `json:"profit"`
	OrderCount       int                 `json:"order_count"`
	CompletedCount   int                 `json:"completed_count"`
	AvgOrderValue    decimal.Decimal     `json:"avg_order_value"`
	TopItems         []TopItem           `json:"top_items"`
	TopItemsCombined []TopItem           `json:"top_items_combined"`
	ExpenseBreakdown []CategoryBreakdown `json:"expense_breakdown"`
}

func emptyReport() Report {
	return Report{
		Sales:            decimal.Zero,
		Expenses:         decimal.Zero,
		Profit:           decimal.Zero,
		AvgOrderValue:    decimal.Zero,
		TopItems:         []TopItem{},
		TopItemsCombined: []TopItem{},
		ExpenseBreakdown: []CategoryBreakdown{},
	}
}

// Aggregate computes the report over the inclusive [start, end] window.
// Only completed orders count toward sales and rankings; every expense
// in the window counts. An inverted window yields a zero report.
func Aggregate(start, end time.Time, orders []order.Order, expenses []expense.Expense) Report {
	r := emptyReport()
	if start.After(end) {
		return r
	}

	var completed []order.Order
	for _, o := range orders {
		if !within(o.CreatedAt, start, end) {
			continue
		}
		r.OrderCount++
		if o.Status == order.StatusCompleted {
			completed = append(completed, o)
			r.CompletedCount++
			r.Sales = r.Sales.Add(o.TotalPrice)
		}
	}

	for _, e := range expenses {
		if within(e.Date, start, end) {
			r.Expenses = r.Expenses.Add(e.Amount)
		}
	}

	r.Profit = r.Sales.Sub(r.Expenses)
	if r.CompletedCount > 0 {
		r.AvgOrderValue = r.Sales.Div(decimal.NewFromInt(int64(r.CompletedCount)))
	}

	r.TopItems = rankItems(completed, false)
	r.TopItemsCombined = rankItems(completed, true)
	r.ExpenseBreakdown = breakdown(expenses, start, end, r.Expenses)
	return r
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// rankItems tallies snapshot occurrences per distinct item name over
// completed orders, descending by count. Ties keep first-seen order:
// the sort is stable and entries are created in encounter order.
func rankItems(completed []order.Order, includeDrinks bool) []TopItem {
	index := map[string]int{}
	items := []TopItem{}

	tally := func(name string, price decimal.Decimal) {
		i, ok := index[name]
		if !ok {
			i = len(items)
			index[name] = i
			items = append(items, TopItem{Name: name, Revenue: decimal.Zero})
		}
		items[i].Count++
		items[i].Revenue = items[i].Revenue.Add(price)
	}

	for _, o := range completed {
		for _, it := range o.Items {
			tally(it.ItemName, it.Price)
		}
		if includeDrinks {
			for _, d := range o.Drinks {
				tally(d.ItemName, d.Price)
			}
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Count > items[b].Count
	})
	return items
}

func breakdown(expenses []expense.Expense, start, end time.Time, total decimal.Decimal) []CategoryBreakdown {
	sums := map[expense.Category]decimal.Decimal{}
	for _, e := range expenses {
		if within(e.Date, start, end) {
			sums[e.Category] = sums[e.Category].Add(e.Amount)
		}
	}

	hundred := decimal.NewFromInt(100)
	out := []CategoryBreakdown{}
	for _, cat := range expense.Categories {
		sum, ok := sums[cat]
		if !ok {
			continue
		}
		b := CategoryBreakdown{Category: cat, Total: sum, Percent: decimal.Zero}
		if !total.IsZero() {
			b.Percent = sum.Div(total).Mul(hundred)
		}
		out = append(out, b)
	}
	return out
}
