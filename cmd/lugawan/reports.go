package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davematchica/Lugawan-Ordering-System/internal/dates"
	"github.com/davematchica/Lugawan-Ordering-System/internal/expense"
	"github.com/davematchica/Lugawan-Ordering-System/internal/order"
	"github.com/davematchica/Lugawan-Ordering-System/internal/report"
)

// The report view shows the top five items, like the dashboard charts.
const topItemsLimit = 5

// @Summary Sales, expense, and profit report for a window
// @Produce json
// @Param period query string false "today, week, or month (overrides start/end)"
// @Param start query string false "range start"
// @Param end query string false "range end"
// @Success 200 {object} report.Report
// @Failure 400 {object} HTTPError
// @Router /reports [get]
func reportHandler(engine *order.Engine, ledger *expense.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var start, end time.Time
		switch c.Query("period") {
		case "", "today":
			start, end = dates.DayBounds(time.Now())
		case "week":
			start, end = dates.WeekBounds(time.Now())
		case "month":
			start, end = dates.MonthBounds(time.Now())
		case "custom":
			var ok bool
			if start, end, ok = parseRange(c); !ok {
				return
			}
		default:
			c.JSON(http.StatusBadRequest, HTTPError{Error: "unknown period", Field: "period"})
			return
		}
		if c.Query("period") == "" && (c.Query("start") != "" || c.Query("end") != "") {
			var ok bool
			if start, end, ok = parseRange(c); !ok {
				return
			}
		}

		ctx := c.Request.Context()
		orders, err := engine.ListByRange(ctx, start, end)
		if err != nil {
			renderError(c, err)
			return
		}
		expenses, err := ledger.ListByRange(ctx, start, end)
		if err != nil {
			renderError(c, err)
			return
		}

		rep := report.Aggregate(start, end, orders, expenses)
		if len(rep.TopItems) > topItemsLimit {
			rep.TopItems = rep.TopItems[:topItemsLimit]
		}
		if len(rep.TopItemsCombined) > topItemsLimit {
			rep.TopItemsCombined = rep.TopItemsCombined[:topItemsLimit]
		}
		c.JSON(http.StatusOK, rep)
	}
}
