package menu

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
)

// DefaultItems is the stall's starting menu. Seeded only into an empty
// catalog; after that the owner manages items through the API.
func DefaultItems() []MenuItem {
	price := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	return []MenuItem{
		{Name: "Plain Lugaw", Category: CategoryLugaw, Price: price(25), IsAvailable: true},
		{Name: "Lugaw w/ Egg", Category: CategoryLugaw, Price: price(35), IsAvailable: true},
		{Name: "Lugaw w/ Egg + Egg", Category: CategoryLugaw, Price: price(45), IsAvailable: true},
		{Name: "Lugaw w/ Mandunggo", Category: CategoryLugaw, Price: price(45), IsAvailable: true},
		{Name: "Lugaw w/ Mandunggo + Egg", Category: CategoryLugaw, Price: price(55), IsAvailable: true},
		{Name: "Lugaw w/ Apason", Category: CategoryLugaw, Price: price(50), IsAvailable: true},
		{Name: "Lugaw w/ Apason + Egg", Category: CategoryLugaw, Price: price(60), IsAvailable: true},
		{Name: "Coke Mismo", Category: CategoryDrinks, Price: price(12), IsAvailable: true},
		{Name: "Swakto", Category: CategoryDrinks, Price: price(20), IsAvailable: true},
		{Name: "Litro", Category: CategoryDrinks, Price: price(55), IsAvailable: true},
	}
}

// EnsureDefaults seeds the default menu when the catalog is empty.
func EnsureDefaults(ctx context.Context, repo Repository) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	items := DefaultItems()
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	log.Printf("[menu] seeded default menu")
	return nil
}
