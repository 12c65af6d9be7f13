package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davematchica/Lugawan-Ordering-System/internal/expense"
	"github.com/davematchica/Lugawan-Ordering-System/internal/order"
)

var (
	dayStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	dayEnd   = time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local)
	noon     = time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
)

func completedOrder(total int64, items ...order.ItemSnapshot) order.Order {
	return order.Order{
		Status:      order.StatusCompleted,
		TotalPrice:  decimal.NewFromInt(total),
		CreatedAt:   noon,
		CompletedAt: &noon,
		Items:       items,
		Drinks:      []order.DrinkSnapshot{},
	}
}

func pendingOrder(total int64) order.Order {
	return order.Order{
		Status:     order.StatusPending,
		TotalPrice: decimal.NewFromInt(total),
		CreatedAt:  noon,
		Items:      []order.ItemSnapshot{},
		Drinks:     []order.DrinkSnapshot{},
	}
}

func item(name string, price int64) order.ItemSnapshot {
	return order.ItemSnapshot{ItemName: name, Price: decimal.NewFromInt(price)}
}

func exp(cat expense.Category, amount int64) expense.Expense {
	return expense.Expense{Category: cat, Amount: decimal.NewFromInt(amount), Date: noon, Description: "x"}
}

func TestAggregateBasicFigures(t *testing.T) {
	orders := []order.Order{
		completedOrder(150, item("Plain Lugaw", 150)),
		completedOrder(200, item("Lugaw w/ Egg", 200)),
		pendingOrder(500),
	}
	expenses := []expense.Expense{exp(expense.CategoryIngredients, 80)}

	r := Aggregate(dayStart, dayEnd, orders, expenses)

	if !r.Sales.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("sales=%s, want 350", r.Sales)
	}
	if !r.Expenses.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expenses=%s, want 80", r.Expenses)
	}
	if !r.Profit.Equal(decimal.NewFromInt(270)) {
		t.Fatalf("profit=%s, want 270", r.Profit)
	}
	if r.OrderCount != 3 {
		t.Fatalf("order count=%d, want 3", r.OrderCount)
	}
	if r.CompletedCount != 2 {
		t.Fatalf("completed=%d, want 2", r.CompletedCount)
	}
	if !r.AvgOrderValue.Equal(decimal.NewFromInt(175)) {
		t.Fatalf("avg=%s, want 175", r.AvgOrderValue)
	}
}

func TestAggregateInvertedWindow(t *testing.T) {
	orders := []order.Order{completedOrder(150, item("Plain Lugaw", 150))}
	expenses := []expense.Expense{exp(expense.CategoryIngredients, 80)}

	r := Aggregate(dayEnd, dayStart, orders, expenses)

	if !r.Sales.IsZero() || !r.Expenses.IsZero() || !r.Profit.IsZero() {
		t.Fatalf("inverted window produced figures: %+v", r)
	}
	if r.OrderCount != 0 || r.CompletedCount != 0 {
		t.Fatalf("inverted window counted orders: %+v", r)
	}
	if len(r.TopItems) != 0 || len(r.ExpenseBreakdown) != 0 {
		t.Fatalf("inverted window produced rankings")
	}
}

func TestAggregateEmptyWindow(t *testing.T) {
	r := Aggregate(dayStart, dayEnd, nil, nil)
	if !r.AvgOrderValue.IsZero() {
		t.Fatalf("avg=%s, want 0 with no completed orders", r.AvgOrderValue)
	}
	if r.TopItems == nil || r.ExpenseBreakdown == nil {
		t.Fatalf("empty report has nil slices")
	}
}

func TestAggregateWindowIsInclusive(t *testing.T) {
	atStart := completedOrder(100, item("Plain Lugaw", 100))
	atStart.CreatedAt = dayStart
	atEnd := completedOrder(50, item("Plain Lugaw", 50))
	atEnd.CreatedAt = dayEnd
	before := completedOrder(999, item("Plain Lugaw", 999))
	before.CreatedAt = dayStart.Add(-time.Second)

	r := Aggregate(dayStart, dayEnd, []order.Order{atStart, atEnd, before}, nil)
	if !r.Sales.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("sales=%s, want 150", r.Sales)
	}
}

func TestPendingOrdersNeverCountAsSales(t *testing.T) {
	orders := []order.Order{pendingOrder(500)}
	r := Aggregate(dayStart, dayEnd, orders, nil)
	if !r.Sales.IsZero() {
		t.Fatalf("pending order counted in sales: %s", r.Sales)
	}
	if r.OrderCount != 1 {
		t.Fatalf("pending order missing from count")
	}
}

func TestTopItemsCountAndRevenue(t *testing.T) {
	orders := []order.Order{
		completedOrder(105, item("Lugaw w/ Egg", 35), item("Lugaw w/ Egg", 35), item("Plain Lugaw", 35)),
		completedOrder(35, item("Lugaw w/ Egg", 35)),
	}
	r := Aggregate(dayStart, dayEnd, orders, nil)

	if len(r.TopItems) != 2 {
		t.Fatalf("top items=%d, want 2", len(r.TopItems))
	}
	first := r.TopItems[0]
	if first.Name != "Lugaw w/ Egg" || first.Count != 3 {
		t.Fatalf("first=%+v, want Lugaw w/ Egg x3", first)
	}
	if !first.Revenue.Equal(decimal.NewFromInt(105)) {
		t.Fatalf("revenue=%s, want 105", first.Revenue)
	}
}

func TestTopItemsTieKeepsFirstSeenOrder(t *testing.T) {
	orders := []order.Order{
		completedOrder(70, item("Plain Lugaw", 25), item("Lugaw w/ Egg", 45)),
	}
	r := Aggregate(dayStart, dayEnd, orders, nil)

	if len(r.TopItems) != 2 {
		t.Fatalf("top items=%d, want 2", len(r.TopItems))
	}
	if r.TopItems[0].Name != "Plain Lugaw" || r.TopItems[1].Name != "Lugaw w/ Egg" {
		t.Fatalf("tie order broken: %v, %v", r.TopItems[0].Name, r.TopItems[1].Name)
	}
}

func TestTopItemsExcludeDrinksCombinedIncludesThem(t *testing.T) {
	o := completedOrder(37, item("Plain Lugaw", 25))
	o.Drinks = []order.DrinkSnapshot{{ItemName: "Coke Mismo", Price: decimal.NewFromInt(12)}}
	r := Aggregate(dayStart, dayEnd, []order.Order{o}, nil)

	for _, ti := range r.TopItems {
		if ti.Name == "Coke Mismo" {
			t.Fatalf("drink in lugaw-only ranking")
		}
	}
	found := false
	for _, ti := range r.TopItemsCombined {
		if ti.Name == "Coke Mismo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("drink missing from combined ranking")
	}
}

func TestNonCompletedItemsNotRanked(t *testing.T) {
	o := pendingOrder(25)
	o.Items = []order.ItemSnapshot{item("Plain Lugaw", 25)}
	r := Aggregate(dayStart, dayEnd, []order.Order{o}, nil)
	if len(r.TopItems) != 0 {
		t.Fatalf("pending order's items were ranked")
	}
}

func TestExpenseBreakdownPercentages(t *testing.T) {
	expenses := []expense.Expense{
		exp(expense.CategoryIngredients, 75),
		exp(expense.CategoryUtilities, 25),
	}
	r := Aggregate(dayStart, dayEnd, nil, expenses)

	if len(r.ExpenseBreakdown) != 2 {
		t.Fatalf("breakdown=%d, want 2", len(r.ExpenseBreakdown))
	}
	for _, b := range r.ExpenseBreakdown {
		switch b.Category {
		case expense.CategoryIngredients:
			if !b.Percent.Equal(decimal.NewFromInt(75)) {
				t.Fatalf("ingredients percent=%s, want 75", b.Percent)
			}
		case expense.CategoryUtilities:
			if !b.Percent.Equal(decimal.NewFromInt(25)) {
				t.Fatalf("utilities percent=%s, want 25", b.Percent)
			}
		default:
			t.Fatalf("unexpected category %s", b.Category)
		}
	}
}

func TestProfitCanBeNegative(t *testing.T) {
	expenses := []expense.Expense{exp(expense.CategoryUtilities, 300)}
	r := Aggregate(dayStart, dayEnd, nil, expenses)
	if !r.Profit.Equal(decimal.NewFromInt(-300)) {
		t.Fatalf("profit=%s, want -300", r.Profit)
	}
}

func TestDecimalPricesSumExactly(t *testing.T) {
	a := decimal.RequireFromString("10.10")
	b := decimal.RequireFromString("20.20")
	o := order.Order{
		Status:    order.StatusCompleted,
		CreatedAt: noon,
		Items: []order.ItemSnapshot{
			{ItemName: "Plain Lugaw", Price: a},
			{ItemName: "Plain Lugaw", Price: b},
		},
		TotalPrice: a.Add(b),
	}
	r := Aggregate(dayStart, dayEnd, []order.Order{o}, nil)
	if !r.Sales.Equal(decimal.RequireFromString("30.30")) {
		t.Fatalf("sales=%s, want 30.30", r.Sales)
	}
}
