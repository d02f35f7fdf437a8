package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx repositories onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		LocationRepo:   newPgxLocationRepository(dbPool),
		IngredientRepo: newPgxIngredientRepository(dbPool),
		MenuItemRepo:   newPgxMenuItemRepository(dbPool),
		MixMappingRepo: newPgxMixMappingRepository(dbPool),
	}
}
