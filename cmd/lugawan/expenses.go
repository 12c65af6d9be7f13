package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davematchica/Lugawan-Ordering-System/internal/expense"
	"github.com/davematchica/Lugawan-Ordering-System/internal/httpx"
)

// @Summary Record an expense
// @Accept json
// @Produce json
// @Param expense body expense.Expense true "expense"
// @Success 201 {object} expense.Expense
// @Failure 400 {object} HTTPError
// @Router /expenses [post]
func createExpenseHandler(ledger *expense.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { httpx.RecordExpenseOperation("create", success) }()

		var e expense.Expense
		if err := c.ShouldBindJSON(&e); err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid json"})
			return
		}
		e.ID = 0
		out, err := ledger.Create(c.Request.Context(), &e)
		if err != nil {
			renderError(c, err)
			return
		}
		success = true
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary List expenses, optionally by category or date range
// @Produce json
// @Param category query string false "expense category"
// @Param start query string false "range start"
// @Param end query string false "range end"
// @Success 200 {array} expense.Expense
// @Router /expenses [get]
func listExpensesHandler(ledger *expense.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var (
			out []expense.Expense
			err error
		)
		switch {
		case c.Query("category") != "":
			out, err = ledger.ListByCategory(ctx, expense.Category(c.Query("category")))
		case c.Query("start") != "" || c.Query("end") != "":
			start, end, ok := parseRange(c)
			if !ok {
				return
			}
			out, err = ledger.ListByRange(ctx, start, end)
		default:
			out, err = ledger.List(ctx)
		}
		if err != nil {
			renderError(c, err)
			return
		}
		if out == nil {
			out = []expense.Expense{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Expense totals by category for a window
// @Produce json
// @Param period query string false "today or month (overrides start/end)"
// @Success 200 {object} expense.Summary
// @Router /expenses/summary [get]
func expenseSummaryHandler(ledger *expense.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if c.Query("period") == "month" {
			s, err := ledger.MonthSummary(ctx)
			if err != nil {
				renderError(c, err)
				return
			}
			c.JSON(http.StatusOK, s)
			return
		}
		start, end, ok := parseRange(c)
		if !ok {
			return
		}
		s, err := ledger.Summarize(ctx, start, end)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func getExpenseHandler(ledger *expense.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		out, err := ledger.Get(c.Request.Context(), id)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Update an expense
// @Accept json
// @Produce json
// @Success 200 {object} expense.Expense
// @Failure 400 {object} HTTPError
// @Failure 404 {object} HTTPError
// @Router /expenses/{id} [put]
func updateExpenseHandler(ledger *expense.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { httpx.RecordExpenseOperation("update", success) }()

		id, ok := parseID(c)
		if !ok {
			return
		}
		var e expense.Expense
		if err := c.ShouldBindJSON(&e); err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid json"})
			return
		}
		e.ID = id
		out, err := ledger.Update(c.Request.Context(), &e)
		if err != nil {
			renderError(c, err)
			return
		}
		success = true
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Delete an expense
// @Success 204
// @Failure 404 {object} HTTPError
// @Router /expenses/{id} [delete]
func deleteExpenseHandler(ledger *expense.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { httpx.RecordExpenseOperation("delete", success) }()

		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := ledger.Delete(c.Request.Context(), id); err != nil {
			renderError(c, err)
			return
		}
		success = true
		c.Status(http.StatusNoContent)
	}
}
