package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/middleware"
	"github.com/mattmach1/restaurant-inventory/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	authMW := middleware.AuthMiddleware(cfg.JWTSecret, services.User)

	api := r.Group("/api")

	// Public authentication routes; admin user management shares the group
	// but carries the auth middleware per route.
	registerAuthRoutes(api, newAuthHandler(services.Auth, services.User), authMW)

	// Resource routes all sit behind the auth middleware.
	setupResourceRoutes(api, authMW, services)
}

// setupResourceRoutes configures the protected resource groups and delegates
// to the per-entity route registrations.
func setupResourceRoutes(
	api *gin.RouterGroup,
	authMW gin.HandlerFunc,
	services *portssvc.ServiceContainer,
) {
	protected := api.Group("", authMW)

	registerLocationRoutes(protected, services.Location)
	registerIngredientRoutes(protected, services.Ingredient)
	registerMenuItemRoutes(protected, services.MenuItem)
	registerMixMappingRoutes(protected, services.MixMapping)
}
