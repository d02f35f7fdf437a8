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
	"github.com/mattmach1/restaurant-inventory/internal/platform/config"
	"github.com/mattmach1/restaurant-inventory/internal/utils"
)

// authService implements the AuthSvcFacade interface.
type authService struct {
	BaseService
	userRepo    portsrepo.UserRepository
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo portsrepo.UserRepository, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new organization and its first user. The first user of
// an organization is always ADMIN. Both rows are written in one transaction.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (string, *domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing email")
		return "", nil, err
	}
	if existing != nil {
		return "", nil, apperrors.NewValidationFailedError("Email already in use")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return "", nil, err
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.OrganizationName,
		CreatedAt:      now,
	}
	user := domain.User{
		UserID:         uuid.NewString(),
		Email:          req.Email,
		PasswordHash:   passwordHash,
		Name:           req.Name,
		OrganizationID: org.OrganizationID,
		Role:           domain.RoleAdmin,
		CreatedAt:      now,
	}

	if err := s.userRepo.SaveUserWithOrganization(ctx, org, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against a concurrent registration with the same email.
			return "", nil, apperrors.NewValidationFailedError("Email already in use")
		}
		s.LogError(ctx, err, "Failed to persist organization and first user",
			slog.String("organization_id", org.OrganizationID))
		return "", nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email, s.jwtSecret, s.jwtDuration, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token at registration")
		return "", nil, err
	}

	s.LogInfo(ctx, "Organization registered",
		slog.String("organization_id", org.OrganizationID),
		slog.String("user_id", user.UserID))
	return token, &user, nil
}

// Login verifies the credentials and returns a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		s.LogError(ctx, err, "Failed to look up user at login")
		return "", nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email, s.jwtSecret, s.jwtDuration, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token at login")
		return "", nil, err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return token, user, nil
}
