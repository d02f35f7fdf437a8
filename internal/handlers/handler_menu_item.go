package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
	"github.com/mattmach1/restaurant-inventory/internal/middleware"
)

// menuItemHandler handles HTTP requests for menu items.
type menuItemHandler struct {
	menuItemService portssvc.MenuItemSvcFacade
}

func newMenuItemHandler(ms portssvc.MenuItemSvcFacade) *menuItemHandler {
	return &menuItemHandler{menuItemService: ms}
}

func registerMenuItemRoutes(rg *gin.RouterGroup, ms portssvc.MenuItemSvcFacade) {
	h := newMenuItemHandler(ms)

	menuItems := rg.Group("/menu-items")
	{
		menuItems.GET("", h.listMenuItems)
		menuItems.POST("", h.createMenuItem)
		menuItems.PATCH("/:id", h.updateMenuItem)
		menuItems.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.deleteMenuItem)
	}
}

func (h *menuItemHandler) listMenuItems(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	items, err := h.menuItemService.ListMenuItems(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch menu items")
		return
	}

	c.JSON(http.StatusOK, dto.ToMenuItemResponseList(items))
}

func (h *menuItemHandler) createMenuItem(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.menuItemService.CreateMenuItem(c.Request.Context(), identity, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create menu item")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMenuItemResponse(item))
}

func (h *menuItemHandler) updateMenuItem(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.menuItemService.UpdateMenuItem(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update menu item")
		return
	}

	c.JSON(http.StatusOK, dto.ToMenuItemResponse(item))
}

func (h *menuItemHandler) deleteMenuItem(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	if err := h.menuItemService.DeleteMenuItem(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
