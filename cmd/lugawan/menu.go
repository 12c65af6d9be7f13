package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davematchica/Lugawan-Ordering-System/internal/apperr"
	"github.com/davematchica/Lugawan-Ordering-System/internal/menu"
)

// @Summary Add a menu item
// @Accept json
// @Produce json
// @Param item body menu.MenuItem true "menu item"
// @Success 201 {object} menu.MenuItem
// @Failure 400 {object} HTTPError
// @Router /menu [post]
func createMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m menu.MenuItem
		if err := c.ShouldBindJSON(&m); err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid json"})
			return
		}
		m.ID = 0
		if err := menu.Validate(&m); err != nil {
			renderError(c, err)
			return
		}
		if err := repo.Create(c.Request.Context(), &m); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

// @Summary List menu items
// @Produce json
// @Param category query string false "lugaw or drinks"
// @Param available query string false "set to 1 for available items only"
// @Success 200 {array} menu.MenuItem
// @Router /menu [get]
func listMenuHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var (
			out []menu.MenuItem
			err error
		)
		switch {
		case c.Query("category") != "":
			cat := menu.Category(c.Query("category"))
			if !cat.Valid() {
				c.JSON(http.StatusBadRequest, HTTPError{Error: "unknown category", Field: "category"})
				return
			}
			out, err = repo.ListByCategory(ctx, cat)
		case c.Query("available") == "1":
			out, err = repo.ListAvailable(ctx)
		default:
			out, err = repo.List(ctx)
		}
		if err != nil {
			renderError(c, err)
			return
		}
		if out == nil {
			out = []menu.MenuItem{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func getMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		m, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				renderError(c, apperr.NotFound("menu item not found"))
				return
			}
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// @Summary Update a menu item
// @Accept json
// @Produce json
// @Success 200 {object} menu.MenuItem
// @Failure 400 {object} HTTPError
// @Failure 404 {object} HTTPError
// @Router /menu/{id} [put]
func updateMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var m menu.MenuItem
		if err := c.ShouldBindJSON(&m); err != nil {
			c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid json"})
			return
		}
		m.ID = id
		if err := menu.Validate(&m); err != nil {
			renderError(c, err)
			return
		}
		if err := repo.Update(c.Request.Context(), &m); err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				renderError(c, apperr.NotFound("menu item not found"))
				return
			}
			renderError(c, err)
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Flip a menu item's availability
// @Produce json
// @Success 200 {object} menu.MenuItem
// @Failure 404 {object} HTTPError
// @Router /menu/{id}/availability [post]
func toggleAvailabilityHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := repo.ToggleAvailability(c.Request.Context(), id); err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				renderError(c, apperr.NotFound("menu item not found"))
				return
			}
			renderError(c, err)
			return
		}
		m, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// @Summary Delete a menu item
// @Success 204
// @Failure 404 {object} HTTPError
// @Router /menu/{id} [delete]
func deleteMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			renderError(c, err)
			return
		}
		if !deleted {
			renderError(c, apperr.NotFound("menu item not found"))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
