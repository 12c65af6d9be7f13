package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/davematchica/Lugawan-Ordering-System/internal/menu"
)

func lugawItem(id int64, name string, price int64) menu.MenuItem {
	return menu.MenuItem{ID: id, Name: name, Category: menu.CategoryLugaw, Price: decimal.NewFromInt(price), IsAvailable: true}
}

func drinkItem(id int64, name string, price int64) menu.MenuItem {
	return menu.MenuItem{ID: id, Name: name, Category: menu.CategoryDrinks, Price: decimal.NewFromInt(price), IsAvailable: true}
}

func TestAddLineClampsQuantity(t *testing.T) {
	for _, q := range []int{-3, 0, 1} {
		c := New()
		c.AddLine(lugawItem(1, "Plain Lugaw", 25), q, false)
		if got := c.ItemCount(); got != 1 {
			t.Fatalf("quantity %d: ItemCount()=%d, want 1", q, got)
		}
	}
}

func TestTotalMatchesUnitPriceTimesQuantity(t *testing.T) {
	for q := 1; q <= 7; q++ {
		c := New()
		c.AddLine(lugawItem(1, "Lugaw w/ Egg", 35), q, false)
		want := decimal.NewFromInt(35 * int64(q))
		if got := c.Total(); !got.Equal(want) {
			t.Fatalf("qty %d: Total()=%s, want %s", q, got, want)
		}
	}
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	c := New()
	const q = 4
	id := c.AddLine(lugawItem(1, "Plain Lugaw", 25), q, false)

	// q decrements reach the floor; one more must not go below it.
	for i := 0; i < q+1; i++ {
		if err := c.UpdateQuantity(id, -1); err != nil {
			t.Fatalf("UpdateQuantity: %v", err)
		}
	}
	if got := c.ItemCount(); got != 1 {
		t.Fatalf("ItemCount()=%d, want 1", got)
	}

	if err := c.UpdateQuantity(id, 3); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if got := c.ItemCount(); got != 4 {
		t.Fatalf("ItemCount()=%d, want 4", got)
	}
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	c := New()
	if err := c.UpdateQuantity(99, 1); err != ErrLineNotFound {
		t.Fatalf("err=%v, want ErrLineNotFound", err)
	}
}

func TestRemoveLine(t *testing.T) {
	c := New()
	id := c.AddLine(lugawItem(1, "Plain Lugaw", 25), 2, false)
	c.AddLine(drinkItem(8, "Coke Mismo", 12), 1, false)

	if err := c.RemoveLine(id); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if got := len(c.Lines()); got != 1 {
		t.Fatalf("lines=%d, want 1", got)
	}
	if err := c.RemoveLine(id); err != ErrLineNotFound {
		t.Fatalf("second remove err=%v, want ErrLineNotFound", err)
	}
}

func TestTotalRecomputedAfterEdits(t *testing.T) {
	c := New()
	id := c.AddLine(lugawItem(1, "Lugaw w/ Egg", 35), 1, false)
	if got := c.Total(); !got.Equal(decimal.NewFromInt(35)) {
		t.Fatalf("Total()=%s, want 35", got)
	}
	_ = c.UpdateQuantity(id, 2)
	if got := c.Total(); !got.Equal(decimal.NewFromInt(105)) {
		t.Fatalf("Total()=%s, want 105", got)
	}
}

func TestSnapshotExpandsPerUnit(t *testing.T) {
	c := New()
	c.AddLine(lugawItem(2, "Lugaw w/ Egg", 35), 3, true)
	c.AddLine(drinkItem(8, "Coke Mismo", 12), 2, false)

	items, drinks, total := c.Snapshot()

	if len(items) != 3 {
		t.Fatalf("items=%d, want 3", len(items))
	}
	for _, it := range items {
		if !it.Price.Equal(decimal.NewFromInt(35)) {
			t.Fatalf("item price=%s, want 35", it.Price)
		}
		if !it.IsSpicy {
			t.Fatalf("item IsSpicy=false, want true")
		}
		if it.ItemName != "Lugaw w/ Egg" {
			t.Fatalf("item name=%q", it.ItemName)
		}
	}
	if len(drinks) != 2 {
		t.Fatalf("drinks=%d, want 2", len(drinks))
	}
	for _, d := range drinks {
		if !d.Price.Equal(decimal.NewFromInt(12)) {
			t.Fatalf("drink price=%s, want 12", d.Price)
		}
	}
	if want := decimal.NewFromInt(129); !total.Equal(want) {
		t.Fatalf("total=%s, want %s", total, want)
	}
}

func TestSnapshotNoDrinksIsEmptyNotNil(t *testing.T) {
	c := New()
	c.AddLine(lugawItem(1, "Plain Lugaw", 25), 1, false)

	items, drinks, _ := c.Snapshot()
	if drinks == nil {
		t.Fatalf("drinks is nil, want empty slice")
	}
	if len(drinks) != 0 {
		t.Fatalf("drinks=%d, want 0", len(drinks))
	}
	if len(items) != 1 {
		t.Fatalf("items=%d, want 1", len(items))
	}
}

func TestSpicyIgnoredForDrinks(t *testing.T) {
	c := New()
	c.AddLine(drinkItem(8, "Coke Mismo", 12), 1, true)
	if c.Lines()[0].IsSpicy {
		t.Fatalf("drink line marked spicy")
	}
}

func TestCategoryCounts(t *testing.T) {
	c := New()
	c.AddLine(lugawItem(1, "Plain Lugaw", 25), 2, false)
	c.AddLine(lugawItem(2, "Lugaw w/ Egg", 35), 1, false)
	c.AddLine(drinkItem(8, "Coke Mismo", 12), 3, false)

	if got := c.LugawCount(); got != 3 {
		t.Fatalf("LugawCount()=%d, want 3", got)
	}
	if got := c.DrinksCount(); got != 3 {
		t.Fatalf("DrinksCount()=%d, want 3", got)
	}
	if got := c.ItemCount(); got != 6 {
		t.Fatalf("ItemCount()=%d, want 6", got)
	}
}
