package expense

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davematchica/Lugawan-Ordering-System/internal/apperr"
	"github.com/davematchica/Lugawan-Ordering-System/internal/dates"
)

// Ledger validates at the create/update boundary and answers the
// derived range queries. Reads trust what is stored.
type Ledger struct {
	repo Repository
	now  func() time.Time
}

func NewLedger(repo Repository) *Ledger {
	return &Ledger{repo: repo, now: time.Now}
}

func validate(e *Expense) error {
	if !e.Category.Valid() {
		return apperr.Validation("category", "unknown category")
	}
	if strings.TrimSpace(e.Description) == "" {
		return apperr.Validation("description", "description is required")
	}
	if !e.Amount.IsPositive() {
		return apperr.Validation("amount", "amount must be greater than zero")
	}
	return nil
}

// Create persists a new expense. Date defaults to now when unset.
func (l *Ledger) Create(ctx context.Context, e *Expense) (*Expense, error) {
	if err := validate(e); err != nil {
		return nil, err
	}
	if e.Date.IsZero() {
		e.Date = l.now()
	}
	if err := l.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return l.repo.GetByID(ctx, e.ID)
}

func (l *Ledger) Update(ctx context.Context, e *Expense) (*Expense, error) {
	if err := validate(e); err != nil {
		return nil, err
	}
	if e.Date.IsZero() {
		e.Date = l.now()
	}
	if err := l.repo.Update(ctx, e); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("expense not found")
		}
		return nil, err
	}
	return l.repo.GetByID(ctx, e.ID)
}

func (l *Ledger) Delete(ctx context.Context, id int64) error {
	ok, err := l.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("expense not found")
	}
	return nil
}

func (l *Ledger) Get(ctx context.Context, id int64) (*Expense, error) {
	e, err := l.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("expense not found")
		}
		return nil, err
	}
	return e, nil
}

func (l *Ledger) List(ctx context.Context) ([]Expense, error) {
	return l.repo.List(ctx)
}

func (l *Ledger) ListByRange(ctx context.Context, start, end time.Time) ([]Expense, error) {
	return l.repo.ListByRange(ctx, start, end)
}

func (l *Ledger) ListByCategory(ctx context.Context, category Category) ([]Expense, error) {
	if !category.Valid() {
		return nil, apperr.Validation("category", "unknown category")
	}
	return l.repo.ListByCategory(ctx, category)
}

// CategorySummary is one category's share of a summary window.
type CategorySummary struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type Summary struct {
	Total      decimal.Decimal              `json:"total"`
	Count      int                          `json:"count"`
	ByCategory map[Category]CategorySummary `json:"by_category"`
}

// Summarize totals the inclusive [start, end] window per category.
func (l *Ledger) Summarize(ctx context.Context, start, end time.Time) (*Summary, error) {
	expenses, err := l.repo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	s := &Summary{
		Total:      decimal.Zero,
		ByCategory: map[Category]CategorySummary{},
	}
	for _, e := range expenses {
		s.Total = s.Total.Add(e.Amount)
		s.Count++
		cs := s.ByCategory[e.Category]
		cs.Total = cs.Total.Add(e.Amount)
		cs.Count++
		s.ByCategory[e.Category] = cs
	}
	return s, nil
}

// TodayTotal sums today's expenses, local midnight to local midnight.
func (l *Ledger) TodayTotal(ctx context.Context) (decimal.Decimal, error) {
	start, end := dates.DayBounds(l.now())
	expenses, err := l.repo.ListByRange(ctx, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total, nil
}

// MonthSummary summarizes the current calendar month.
func (l *Ledger) MonthSummary(ctx context.Context) (*Summary, error) {
	start, end := dates.MonthBounds(l.now())
	return l.Summarize(ctx, start, end)
}
