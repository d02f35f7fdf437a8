package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// mixMappingHandler handles HTTP requests for recipe mappings.
type mixMappingHandler struct {
	mappingService portssvc.MixMappingSvcFacade
}

func newMixMappingHandler(ms portssvc.MixMappingSvcFacade) *mixMappingHandler {
	return &mixMappingHandler{mappingService: ms}
}

func registerMixMappingRoutes(rg *gin.RouterGroup, ms portssvc.MixMappingSvcFacade) {
	h := newMixMappingHandler(ms)

	mappings := rg.Group("/mix-mappings")
	{
		mappings.GET("", h.listMappings)
		mappings.GET("/cost", h.recipeCost)
		mappings.POST("", h.createMapping)
		mappings.POST("/copy", h.copyMappings)
		mappings.PATCH("/:id", h.updateMapping)
		mappings.DELETE("/:id", h.deleteMapping)
	}
}

// listMappings godoc
// @Summary List mappings for a menu item at a location
// @Description Returns all mappings matching both filters with each ingredient embedded.
// @Tags mix-mappings
// @Produce json
// @Param menuItemId query string true "Menu item ID"
// @Param locationId query string true "Location ID"
// @Success 200 {array} dto.MixMappingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /mix-mappings [get]
func (h *mixMappingHandler) listMappings(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	menuItemID := c.Query("menuItemId")
	locationID := c.Query("locationId")
	if menuItemID == "" || locationID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "menuItemId and locationId query parameters are required"})
		return
	}

	details, err := h.mappingService.ListMappings(c.Request.Context(), identity, menuItemID, locationID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch mix mappings")
		return
	}

	c.JSON(http.StatusOK, dto.ToMixMappingDetailResponseList(details))
}

// recipeCost godoc
// @Summary Total recipe cost for a menu item at a location
// @Description Sum over the pair's mappings of ingredient price x quantity, as exact decimal.
// @Tags mix-mappings
// @Produce json
// @Param menuItemId query string true "Menu item ID"
// @Param locationId query string true "Location ID"
// @Success 200 {object} dto.RecipeCostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /mix-mappings/cost [get]
func (h *mixMappingHandler) recipeCost(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	menuItemID := c.Query("menuItemId")
	locationID := c.Query("locationId")
	if menuItemID == "" || locationID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "menuItemId and locationId query parameters are required"})
		return
	}

	total, err := h.mappingService.RecipeCost(c.Request.Context(), identity, menuItemID, locationID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute recipe cost")
		return
	}

	c.JSON(http.StatusOK, dto.RecipeCostResponse{
		MenuItemID: menuItemID,
		LocationID: locationID,
		TotalCost:  total,
	})
}

// createMapping godoc
// @Summary Create a mix mapping
// @Description Links an ingredient to a (menu item, location) pair. All three must belong to the caller's organization.
// @Tags mix-mappings
// @Accept json
// @Produce json
// @Param mapping body dto.CreateMixMappingRequest true "Mapping details"
// @Success 201 {object} dto.MixMappingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Mapping already exists for the triple"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /mix-mappings [post]
func (h *mixMappingHandler) createMapping(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateMixMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	mapping, err := h.mappingService.CreateMapping(c.Request.Context(), identity, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create mix mapping")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMixMappingResponse(mapping))
}

// copyMappings godoc
// @Summary Copy all mappings between locations
// @Description Replaces every mapping at the destination with copies from the source, atomically.
// @Tags mix-mappings
// @Accept json
// @Produce json
// @Param copy body dto.CopyMixMappingsRequest true "Source and destination locations"
// @Success 200 {object} dto.CopyMixMappingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /mix-mappings/copy [post]
func (h *mixMappingHandler) copyMappings(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.CopyMixMappingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	copied, err := h.mappingService.CopyMappings(c.Request.Context(), identity, req)
	if err != nil {
		respondServiceError(c, err, "Failed to copy mix mappings")
		return
	}

	c.JSON(http.StatusOK, dto.CopyMixMappingsResponse{
		Message:     "Menu copied successfully",
		CopiedCount: copied,
	})
}

func (h *mixMappingHandler) updateMapping(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateMixMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	mapping, err := h.mappingService.UpdateMapping(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update mix mapping")
		return
	}

	c.JSON(http.StatusOK, dto.ToMixMappingResponse(mapping))
}

func (h *mixMappingHandler) deleteMapping(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	if err := h.mappingService.DeleteMapping(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete mix mapping")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mix mapping deleted successfully"})
}
