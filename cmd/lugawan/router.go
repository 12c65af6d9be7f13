package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/davematchica/Lugawan-Ordering-System/internal/apperr"
	"github.com/davematchica/Lugawan-Ordering-System/internal/dates"
	"github.com/davematchica/Lugawan-Ordering-System/internal/expense"
	"github.com/davematchica/Lugawan-Ordering-System/internal/httpx"
	"github.com/davematchica/Lugawan-Ordering-System/internal/menu"
	"github.com/davematchica/Lugawan-Ordering-System/internal/order"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: order not found
	Error string `json:"error"`
	// Offending field for validation failures
	// example: customer_name
	Field string `json:"field,omitempty"`
}

func newRouter(menuRepo menu.Repository, engine *order.Engine, ledger *expense.Ledger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	orders := r.Group("/orders")
	{
		orders.POST("", createOrderHandler(menuRepo, engine))
		orders.GET("", listOrdersHandler(engine))
		orders.GET("/today", todayOrdersHandler(engine))
		orders.GET("/stats", orderStatsHandler(engine))
		orders.GET("/:id", getOrderHandler(engine))
		orders.POST("/:id/advance", advanceOrderHandler(engine))
		orders.PUT("/:id/status", updateOrderStatusHandler(engine))
		orders.DELETE("/:id", deleteOrderHandler(engine))
	}

	expenses := r.Group("/expenses")
	{
		expenses.POST("", createExpenseHandler(ledger))
		expenses.GET("", listExpensesHandler(ledger))
		expenses.GET("/summary", expenseSummaryHandler(ledger))
		expenses.GET("/:id", getExpenseHandler(ledger))
		expenses.PUT("/:id", updateExpenseHandler(ledger))
		expenses.DELETE("/:id", deleteExpenseHandler(ledger))
	}

	menuGroup := r.Group("/menu")
	{
		menuGroup.POST("", createMenuItemHandler(menuRepo))
		menuGroup.GET("", listMenuHandler(menuRepo))
		menuGroup.GET("/:id", getMenuItemHandler(menuRepo))
		menuGroup.PUT("/:id", updateMenuItemHandler(menuRepo))
		menuGroup.POST("/:id/availability", toggleAvailabilityHandler(menuRepo))
		menuGroup.DELETE("/:id", deleteMenuItemHandler(menuRepo))
	}

	r.GET("/reports", reportHandler(engine, ledger))

	return r
}

func renderError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			c.JSON(http.StatusBadRequest, HTTPError{Error: ae.Msg, Field: ae.Field})
		case apperr.KindNotFound:
			c.JSON(http.StatusNotFound, HTTPError{Error: ae.Msg})
		default:
			log.Printf("[http] rid=%s internal error: %v", httpx.RequestIDFrom(c), err)
			c.JSON(http.StatusInternalServerError, HTTPError{Error: ae.Msg})
		}
		return
	}
	log.Printf("[http] rid=%s internal error: %v", httpx.RequestIDFrom(c), err)
	c.JSON(http.StatusInternalServerError, HTTPError{Error: err.Error()})
}

// parseDate accepts RFC 3339 or a bare YYYY-MM-DD day. Bare days expand
// to the start or end of that local day so ranges stay inclusive.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	start, end := dates.DayBounds(t)
	if endOfDay {
		return end, nil
	}
	return start, nil
}

// parseRange reads start/end query params, defaulting to today. A false
// return means the response is already written.
func parseRange(c *gin.Context) (start, end time.Time, ok bool) {
	start, end = dates.DayBounds(time.Now())
	var err error
	if s := c.Query("start"); s != "" {
		if start, err = parseDate(s, false); err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid start date", Field: "start"})
			return start, end, false
		}
	}
	if s := c.Query("end"); s != "" {
		if end, err = parseDate(s, true); err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid end date", Field: "end"})
			return start, end, false
		}
	}
	return start, end, true
}
