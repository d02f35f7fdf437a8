package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// locationService implements the LocationSvcFacade interface.
type locationService struct {
	BaseService
	locationRepo portsrepo.LocationRepository
}

// NewLocationService creates a new location service.
func NewLocationService(locationRepo portsrepo.LocationRepository) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

// ListLocations returns all locations of the caller's organization.
func (s *locationService) ListLocations(ctx context.Context, identity domain.Identity) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListLocationsByOrganization(ctx, identity.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list locations",
			slog.String("organization_id", identity.OrganizationID))
		return nil, err
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}

// CreateLocation creates a location owned by the caller's organization.
func (s *locationService) CreateLocation(ctx context.Context, identity domain.Identity, req dto.CreateLocationRequest) (*domain.Location, error) {
	location := domain.Location{
		LocationID:     uuid.NewString(),
		Name:           req.Name,
		OrganizationID: identity.OrganizationID,
		CreatedAt:      time.Now(),
	}

	if err := s.locationRepo.SaveLocation(ctx, location); err != nil {
		s.LogError(ctx, err, "Failed to save location", slog.String("location_id", location.LocationID))
		return nil, err
	}

	s.LogInfo(ctx, "Location created", slog.String("location_id", location.LocationID))
	return &location, nil
}

// UpdateLocation applies a partial update after the ownership check. An
// absent row yields 404; a row owned by another organization yields 403.
func (s *locationService) UpdateLocation(ctx context.Context, identity domain.Identity, locationID string, req dto.UpdateLocationRequest) (*domain.Location, error) {
	location, err := s.findOwnedLocation(ctx, identity, locationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}

	if err := s.locationRepo.UpdateLocation(ctx, *location); err != nil {
		s.LogError(ctx, err, "Failed to update location", slog.String("location_id", locationID))
		return nil, err
	}

	s.LogInfo(ctx, "Location updated", slog.String("location_id", locationID))
	return location, nil
}

// DeleteLocation removes a location after the ownership check. The ADMIN gate
// is enforced by the route middleware before this is reached.
func (s *locationService) DeleteLocation(ctx context.Context, identity domain.Identity, locationID string) error {
	if _, err := s.findOwnedLocation(ctx, identity, locationID); err != nil {
		return err
	}

	if err := s.locationRepo.DeleteLocation(ctx, locationID); err != nil {
		s.LogError(ctx, err, "Failed to delete location", slog.String("location_id", locationID))
		return err
	}

	s.LogInfo(ctx, "Location deleted", slog.String("location_id", locationID))
	return nil
}

func (s *locationService) findOwnedLocation(ctx context.Context, identity domain.Identity, locationID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("location not found")
		}
		s.LogError(ctx, err, "Failed to find location", slog.String("location_id", locationID))
		return nil, err
	}
	if err := s.AuthorizeOrganization(identity, location.OrganizationID, "location"); err != nil {
		return nil, err
	}
	return location, nil
}
