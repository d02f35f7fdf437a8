package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
)

type PgxLocationRepository struct {
	BaseRepository
}

func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepository {
	return &PgxLocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LocationRepository = (*PgxLocationRepository)(nil)

const fullLocationSelectQuery = `
SELECT
	l.location_id, l.name, l.organization_id, l.created_at
FROM locations l
`

func (r *PgxLocationRepository) getLocations(ctx context.Context, filterQuery string, args ...any) ([]domain.Location, error) {
	rows, err := r.Pool.Query(ctx, fullLocationSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query locations", err)
	}
	defer rows.Close()
	locations, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Location])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect location rows", err)
	}
	return locations, nil
}

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	query := `
		INSERT INTO locations (location_id, name, organization_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		location.LocationID, location.Name, location.OrganizationID, location.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save location "+location.LocationID, err)
	}
	return nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	locations, err := r.getLocations(ctx, `WHERE l.location_id = $1`, locationID)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &locations[0], nil
}

func (r *PgxLocationRepository) ListLocationsByOrganization(ctx context.Context, organizationID string) ([]domain.Location, error) {
	return r.getLocations(ctx, `WHERE l.organization_id = $1 ORDER BY l.name`, organizationID)
}

func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	query := `
		UPDATE locations
		SET name = $1
		WHERE location_id = $2;
	`
	result, err := r.Pool.Exec(ctx, query, location.Name, location.LocationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update location "+location.LocationID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("location " + location.LocationID + " not found")
	}
	return nil
}

func (r *PgxLocationRepository) DeleteLocation(ctx context.Context, locationID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM locations WHERE location_id = $1;`, locationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete location "+locationID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("location " + locationID + " not found")
	}
	return nil
}
