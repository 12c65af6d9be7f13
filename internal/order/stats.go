package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davematchica/Lugawan-Ordering-System/internal/dates"
)

// Stats is the dashboard summary for a window of orders. Sales counts
// completed orders only; everything else still shows up in the counts.
type Stats struct {
	TotalOrders     int             `json:"total_orders"`
	CompletedOrders int             `json:"completed_orders"`
	PendingOrders   int             `json:"pending_orders"`
	PreparingOrders int             `json:"preparing_orders"`
	ReadyOrders     int             `json:"ready_orders"`
	TotalSales      decimal.Decimal `json:"total_sales"`
}

func (e *Engine) Stats(ctx context.Context, start, end time.Time) (*Stats, error) {
	orders, err := e.repo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	s := &Stats{TotalSales: decimal.Zero}
	for _, o := range orders {
		s.TotalOrders++
		switch o.Status {
		case StatusCompleted:
			s.CompletedOrders++
			s.TotalSales = s.TotalSales.Add(o.TotalPrice)
		case StatusPending:
			s.PendingOrders++
		case StatusPreparing:
			s.PreparingOrders++
		case StatusReady:
			s.ReadyOrders++
		}
	}
	return s, nil
}

func (e *Engine) TodayStats(ctx context.Context) (*Stats, error) {
	start, end := dates.DayBounds(e.now())
	return e.Stats(ctx, start, end)
}
