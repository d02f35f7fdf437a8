package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/mattmach1/restaurant-inventory/internal/core/services"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
	"github.com/mattmach1/restaurant-inventory/internal/platform/config"
	"github.com/mattmach1/restaurant-inventory/internal/utils"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUserWithOrganization(ctx context.Context, org domain.Organization, user domain.User) error {
	args := m.Called(ctx, org, user)
	return args.Error(0)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByOrganization(ctx context.Context, organizationID string) ([]domain.User, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	cfg      *config.Config
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
	suite.service = services.NewAuthService(suite.mockRepo, suite.cfg)
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:            "owner@pizzeria.test",
		Password:         "supersecret",
		Name:             "Pat Owner",
		OrganizationName: "Pat's Pizzeria",
	}

	// No existing user with this email
	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()

	suite.mockRepo.On("SaveUserWithOrganization", ctx,
		mock.AnythingOfType("domain.Organization"),
		mock.MatchedBy(func(u domain.User) bool {
			return u.Email == req.Email &&
				u.Name == req.Name &&
				u.Role == domain.RoleAdmin &&
				u.OrganizationID != "" &&
				u.PasswordHash != "" &&
				u.PasswordHash != req.Password
		})).Return(nil).Once()

	token, user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(token)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.NotEmpty(user.UserID)
	suite.NotEmpty(user.OrganizationID)

	// Issued token must resolve back to the new user.
	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(user.Email, claims.Email)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_EmailAlreadyInUse() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:            "taken@pizzeria.test",
		Password:         "supersecret",
		Name:             "Pat Owner",
		OrganizationName: "Pat's Pizzeria",
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	token, user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "Email already in use")

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUserWithOrganization", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateRace() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:            "race@pizzeria.test",
		Password:         "supersecret",
		Name:             "Pat Owner",
		OrganizationName: "Pat's Pizzeria",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	// A concurrent registration won the unique constraint race.
	suite.mockRepo.On("SaveUserWithOrganization", ctx, mock.AnythingOfType("domain.Organization"), mock.AnythingOfType("domain.User")).
		Return(apperrors.NewConflictError("duplicate email")).Once()

	token, user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "Email already in use")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_SaveError() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:            "fails@pizzeria.test",
		Password:         "supersecret",
		Name:             "Pat Owner",
		OrganizationName: "Pat's Pizzeria",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUserWithOrganization", ctx, mock.AnythingOfType("domain.Organization"), mock.AnythingOfType("domain.User")).
		Return(expectedErr).Once()

	token, user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "manager@pizzeria.test",
		PasswordHash:   hash,
		Name:           "Sam Manager",
		OrganizationID: uuid.NewString(),
		Role:           domain.RoleManager,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: password})

	suite.Require().NoError(err)
	suite.Require().NotNil(loggedIn)
	suite.NotEmpty(token)
	suite.Equal(user.UserID, loggedIn.UserID)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "manager@pizzeria.test",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "wrong-password"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(loggedIn)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.ErrorContains(err, "Invalid email or password")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()
	email := "nobody@pizzeria.test"

	suite.mockRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Email: email, Password: "whatever"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(loggedIn)
	// Unknown email produces the same error as a wrong password.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.ErrorContains(err, "Invalid email or password")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_RepoError() {
	ctx := context.Background()
	email := "broken@pizzeria.test"
	expectedErr := assert.AnError

	suite.mockRepo.On("FindUserByEmail", ctx, email).Return(nil, expectedErr).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Email: email, Password: "whatever"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(loggedIn)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
