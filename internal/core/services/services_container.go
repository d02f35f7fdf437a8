package services

import (
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:       NewAuthService(repos.UserRepo, cfg),
		User:       NewUserService(repos.UserRepo),
		Location:   NewLocationService(repos.LocationRepo),
		Ingredient: NewIngredientService(repos.IngredientRepo),
		MenuItem:   NewMenuItemService(repos.MenuItemRepo),
		MixMapping: NewMixMappingService(repos.MixMappingRepo, repos.LocationRepo, repos.MenuItemRepo, repos.IngredientRepo),
	}
}
