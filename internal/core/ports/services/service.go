package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	User       UserSvcFacade
	Location   LocationSvcFacade
	Ingredient IngredientSvcFacade
	MenuItem   MenuItemSvcFacade
	MixMapping MixMappingSvcFacade
}
