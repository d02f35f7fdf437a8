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
	"github.com/mattmach1/restaurant-inventory/internal/utils"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by its ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// CreateUser adds a user to the caller's organization. The organization is
// inherited from the acting admin, never taken from the request. Role
// defaults to MANAGER; only the closed role set is accepted.
func (s *userService) CreateUser(ctx context.Context, identity domain.Identity, req dto.CreateUserRequest) (*domain.User, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleManager
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationFailedError("unsupported role: " + string(role))
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing email")
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidationFailedError("Email already in use")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Email:          req.Email,
		PasswordHash:   passwordHash,
		Name:           req.Name,
		OrganizationID: identity.OrganizationID,
		Role:           role,
		CreatedAt:      time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationFailedError("Email already in use")
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("organization_id", user.OrganizationID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

// ListUsers returns all users of the caller's organization.
func (s *userService) ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error) {
	users, err := s.userRepo.ListUsersByOrganization(ctx, identity.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users",
			slog.String("organization_id", identity.OrganizationID))
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}
