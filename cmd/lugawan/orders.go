package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davematchica/Lugawan-Ordering-System/internal/apperr"
	"github.com/davematchica/Lugawan-Ordering-System/internal/cart"
	"github.com/davematchica/Lugawan-Ordering-System/internal/httpx"
	"github.com/davematchica/Lugawan-Ordering-System/internal/menu"
	"github.com/davematchica/Lugawan-Ordering-System/internal/order"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// createOrderHandler builds a cart from the requested menu selections
// and submits it as a pending order.
// @Summary Create an order
// @Accept json
// @Produce json
// @Param order body order.CreateOrderRequest true "order"
// @Success 201 {object} order.Order
// @Failure 400 {object} HTTPError
// @Router /orders [post]
func createOrderHandler(menuRepo menu.Repository, engine *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { httpx.RecordOrderOperation("create", success) }()

		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid json"})
			return
		}

		b := cart.New()
		for _, line := range req.Lines {
			item, err := menuRepo.GetByID(c.Request.Context(), line.ItemID)
			if err != nil {
				if errors.Is(err, menu.ErrNotFound) {
					renderError(c, apperr.Validation("lines", "unknown menu item"))
					return
				}
				renderError(c, err)
				return
			}
			if !item.IsAvailable {
				renderError(c, apperr.Validation("lines", item.Name+" is not available"))
				return
			}
			b.AddLine(*item, line.Quantity, line.IsSpicy)
		}

		items, drinks, total := b.Snapshot()
		o, err := engine.Create(c.Request.Context(), req.CustomerName, items, drinks, total)
		if err != nil {
			renderError(c, err)
			return
		}
		success = true
		c.JSON(http.StatusCreated, o)
	}
}

// @Summary List orders, optionally filtered by status or date range
// @Produce json
// @Param status query string false "lifecycle status"
// @Param start query string false "range start (RFC 3339 or YYYY-MM-DD)"
// @Param end query string false "range end"
// @Success 200 {array} order.Order
// @Router /orders [get]
func listOrdersHandler(engine *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var (
			out []order.Order
			err error
		)
		switch {
		case c.Query("status") != "":
			var st order.Status
			if st, err = order.ParseStatus(c.Query("status")); err != nil {
				c.JSON(http.StatusBadRequest, HTTPError{Error: err.Error(), Field: "status"})
				return
			}
			out, err = engine.ListByStatus(ctx, st)
		case c.Query("start") != "" || c.Query("end") != "":
			start, end, ok := parseRange(c)
			if !ok {
				return
			}
			out, err = engine.ListByRange(ctx, start, end)
		default:
			out, err = engine.List(ctx)
		}
		if err != nil {
			renderError(c, err)
			return
		}
		if out == nil {
			out = []order.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func todayOrdersHandler(engine *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := engine.TodayOrders(c.Request.Context())
		if err != nil {
			renderError(c, err)
			return
		}
		if out == nil {
			out = []order.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Per-status order counts and sales for a window
// @Produce json
// @Success 200 {object} order.Stats
// @Router /orders/stats [get]
func orderStatsHandler(engine *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end, ok := parseRange(c)
		if !ok {
			return
		}
		stats, err := engine.Stats(c.Request.Context(), start, end)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// @Summary Get one order
// @Produce json
// @Success 200 {object} order.Order
// @Failure 404 {object} HTTPError
// @Router /orders/{id} [get]
func getOrderHandler(engine *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		o, err := engine.Get(c.Request.Context(), id)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// @Summary Advance an order one lifecycle step
// @Produce json
// @Success 200 {object} order.Order
// @Failure 400 {object} HTTPError
// @Failure 404 {object} HTTPError
// @Router /orders/{id}/advance [post]
func advanceOrderHandler(engine *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { httpx.RecordOrderOperation("advance", success) }()

		id, ok := parseID(c)
		if !ok {
			return
		}
		o, err := engine.Advance(c.Request.Context(), id)
		if err != nil {
			renderError(c, err)
			return
		}
		success = true
		c.JSON(http.StatusOK, o)
	}
}

// @Summary Set an order's status (forward-only)
// @Accept json
// @Produce json
// @Param status body order.UpdateStatusRequest true "target status"
// @Success 200 {object} order.Order
// @Failure 400 {object} HTTPError
// @Failure 404 {object} HTTPError
// @Router /orders/{id}/status [put]
func updateOrderStatusHandler(engine *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { httpx.RecordOrderOperation("set_status", success) }()

		id, ok := parseID(c)
		if !ok {
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid json"})
			return
		}
		st, err := order.ParseStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: err.Error(), Field: "status"})
			return
		}
		o, err := engine.SetStatus(c.Request.Context(), id, st)
		if err != nil {
			renderError(c, err)
			return
		}
		success = true
		c.JSON(http.StatusOK, o)
	}
}

// @Summary Delete an order
// @Success 204
// @Failure 404 {object} HTTPError
// @Router /orders/{id} [delete]
func deleteOrderHandler(engine *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { httpx.RecordOrderOperation("delete", success) }()

		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := engine.Delete(c.Request.Context(), id); err != nil {
			renderError(c, err)
			return
		}
		success = true
		c.Status(http.StatusNoContent)
	}
}
