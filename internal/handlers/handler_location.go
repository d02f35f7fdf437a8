package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
	"github.com/mattmach1/restaurant-inventory/internal/middleware"
)

// locationHandler handles HTTP requests for locations.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

func newLocationHandler(ls portssvc.LocationSvcFacade) *locationHandler {
	return &locationHandler{locationService: ls}
}

// registerLocationRoutes registers routes for locations. Deletion of
// structural data is gated ADMIN.
func registerLocationRoutes(rg *gin.RouterGroup, ls portssvc.LocationSvcFacade) {
	h := newLocationHandler(ls)

	locations := rg.Group("/locations")
	{
		locations.GET("", h.listLocations)
		locations.POST("", h.createLocation)
		locations.PATCH("/:id", h.updateLocation)
		locations.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.deleteLocation)
	}
}

// listLocations godoc
// @Summary List locations of the caller's organization
// @Tags locations
// @Produce json
// @Success 200 {array} dto.LocationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [get]
func (h *locationHandler) listLocations(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	locations, err := h.locationService.ListLocations(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch locations")
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponseList(locations))
}

// createLocation godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [post]
func (h *locationHandler) createLocation(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), identity, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create location")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// updateLocation godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [patch]
func (h *locationHandler) updateLocation(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update location")
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// deleteLocation godoc
// @Summary Delete a location (admin only)
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [delete]
func (h *locationHandler) deleteLocation(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete location")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
}
