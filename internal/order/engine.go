package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davematchica/Lugawan-Ordering-System/internal/apperr"
	"github.com/davematchica/Lugawan-Ordering-System/internal/dates"
)

// Engine owns the order lifecycle: it validates at the boundary,
// persists every transition immediately, and re-reads the record after
// each mutation so callers always see exactly what is stored.
type Engine struct {
	repo Repository
	now  func() time.Time
}

func NewEngine(repo Repository) *Engine {
	return &Engine{repo: repo, now: time.Now}
}

// Create validates and persists a new pending order. The passed total
// must match the snapshot sum; the engine refuses drift rather than
// silently recomputing.
func (e *Engine) Create(ctx context.Context, customerName string, items []ItemSnapshot, drinks []DrinkSnapshot, totalPrice decimal.Decimal) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, apperr.Validation("customer_name", "customer name is required")
	}
	if len(items) == 0 && len(drinks) == 0 {
		return nil, apperr.Validation("items", "order needs at least one item")
	}
	if items == nil {
		items = []ItemSnapshot{}
	}
	if drinks == nil {
		drinks = []DrinkSnapshot{}
	}

	o := &Order{
		CustomerName: customerName,
		Items:        items,
		Drinks:       drinks,
		TotalPrice:   totalPrice,
		Status:       StatusPending,
		CreatedAt:    e.now(),
		CompletedAt:  nil,
	}
	if !o.TotalPrice.Equal(o.SnapshotTotal()) {
		return nil, apperr.Validation("total_price", "total does not match line items")
	}
	if err := e.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return e.repo.GetByID(ctx, o.ID)
}

// Advance moves the order one step along the fixed sequence.
func (e *Engine) Advance(ctx context.Context, id int64) (*Order, error) {
	o, err := e.get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, ok := o.Status.Next()
	if !ok {
		return nil, apperr.Validation("status", "order is already completed")
	}
	return e.transition(ctx, o, next)
}

// SetStatus applies any forward transition, including the direct jump
// to completed. Completed orders never change again.
func (e *Engine) SetStatus(ctx context.Context, id int64, target Status) (*Order, error) {
	if !target.Valid() {
		return nil, apperr.Validation("status", "unknown status")
	}
	o, err := e.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransition(target) {
		return nil, apperr.Validation("status", "cannot move from "+string(o.Status)+" to "+string(target))
	}
	return e.transition(ctx, o, target)
}

func (e *Engine) transition(ctx context.Context, o *Order, target Status) (*Order, error) {
	completedAt := o.CompletedAt
	if target == StatusCompleted {
		t := e.now()
		completedAt = &t
	}
	if err := e.repo.UpdateStatus(ctx, o.ID, target, completedAt); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return e.repo.GetByID(ctx, o.ID)
}

// Delete removes the order unconditionally, from any state.
func (e *Engine) Delete(ctx context.Context, id int64) error {
	ok, err := e.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("order not found")
	}
	return nil
}

func (e *Engine) Get(ctx context.Context, id int64) (*Order, error) {
	return e.get(ctx, id)
}

func (e *Engine) List(ctx context.Context) ([]Order, error) {
	return e.repo.List(ctx)
}

func (e *Engine) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	if !status.Valid() {
		return nil, apperr.Validation("status", "unknown status")
	}
	return e.repo.ListByStatus(ctx, status)
}

func (e *Engine) ListByRange(ctx context.Context, start, end time.Time) ([]Order, error) {
	return e.repo.ListByRange(ctx, start, end)
}

// TodayOrders lists orders created since local midnight.
func (e *Engine) TodayOrders(ctx context.Context) ([]Order, error) {
	start, end := dates.DayBounds(e.now())
	return e.repo.ListByRange(ctx, start, end)
}

func (e *Engine) get(ctx context.Context, id int64) (*Order, error) {
	o, err := e.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}
