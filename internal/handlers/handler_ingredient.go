package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
	"github.com/mattmach1/restaurant-inventory/internal/middleware"
)

// ingredientHandler handles HTTP requests for ingredients.
type ingredientHandler struct {
	ingredientService portssvc.IngredientSvcFacade
}

func newIngredientHandler(is portssvc.IngredientSvcFacade) *ingredientHandler {
	return &ingredientHandler{ingredientService: is}
}

func registerIngredientRoutes(rg *gin.RouterGroup, is portssvc.IngredientSvcFacade) {
	h := newIngredientHandler(is)

	ingredients := rg.Group("/ingredients")
	{
		ingredients.GET("", h.listIngredients)
		ingredients.POST("", h.createIngredient)
		ingredients.PATCH("/:id", h.updateIngredient)
		ingredients.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.deleteIngredient)
	}
}

func (h *ingredientHandler) listIngredients(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	ingredients, err := h.ingredientService.ListIngredients(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch ingredients")
		return
	}

	c.JSON(http.StatusOK, dto.ToIngredientResponseList(ingredients))
}

func (h *ingredientHandler) createIngredient(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	ingredient, err := h.ingredientService.CreateIngredient(c.Request.Context(), identity, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create ingredient")
		return
	}

	c.JSON(http.StatusCreated, dto.ToIngredientResponse(ingredient))
}

func (h *ingredientHandler) updateIngredient(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	ingredient, err := h.ingredientService.UpdateIngredient(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update ingredient")
		return
	}

	c.JSON(http.StatusOK, dto.ToIngredientResponse(ingredient))
}

func (h *ingredientHandler) deleteIngredient(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	if err := h.ingredientService.DeleteIngredient(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully"})
}
