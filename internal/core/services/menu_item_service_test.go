package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/core/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// MockMenuItemRepository is a mock type for the MenuItemRepository interface
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) SaveMenuItem(ctx context.Context, item domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) FindMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) ListMenuItemsByOrganization(ctx context.Context, organizationID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) DeleteMenuItem(ctx context.Context, menuItemID string) error {
	args := m.Called(ctx, menuItemID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type MenuItemServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMenuItemRepository
	service  portssvc.MenuItemSvcFacade
	identity domain.Identity
}

func (suite *MenuItemServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMenuItemRepository)
	suite.service = services.NewMenuItemService(suite.mockRepo)
	suite.identity = domain.Identity{
		UserID:         uuid.NewString(),
		OrganizationID: uuid.NewString(),
		Role:           domain.RoleManager,
	}
}

// --- Test Cases ---

func (suite *MenuItemServiceTestSuite) TestCreateMenuItem_Success() {
	ctx := context.Background()
	desc := "Tomato, mozzarella, basil"
	req := dto.CreateMenuItemRequest{Name: "Margherita", Description: &desc}

	suite.mockRepo.On("SaveMenuItem", ctx, mock.MatchedBy(func(i domain.MenuItem) bool {
		return i.Name == req.Name &&
			i.Description != nil && *i.Description == desc &&
			i.OrganizationID == suite.identity.OrganizationID
	})).Return(nil).Once()

	item, err := suite.service.CreateMenuItem(ctx, suite.identity, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.Equal(suite.identity.OrganizationID, item.OrganizationID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MenuItemServiceTestSuite) TestCreateMenuItem_NoDescription() {
	ctx := context.Background()
	req := dto.CreateMenuItemRequest{Name: "Calzone"}

	suite.mockRepo.On("SaveMenuItem", ctx, mock.MatchedBy(func(i domain.MenuItem) bool {
		return i.Description == nil
	})).Return(nil).Once()

	item, err := suite.service.CreateMenuItem(ctx, suite.identity, req)

	suite.Require().NoError(err)
	suite.Nil(item.Description)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MenuItemServiceTestSuite) TestListMenuItems_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListMenuItemsByOrganization", ctx, suite.identity.OrganizationID).Return(nil, nil).Once()

	items, err := suite.service.ListMenuItems(ctx, suite.identity)

	suite.Require().NoError(err)
	suite.Empty(items)
	suite.NotNil(items)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MenuItemServiceTestSuite) TestUpdateMenuItem_OtherOrganization() {
	ctx := context.Background()
	menuItemID := uuid.NewString()
	foreign := &domain.MenuItem{
		MenuItemID:     menuItemID,
		Name:           "Not Yours",
		OrganizationID: uuid.NewString(),
	}
	newName := "Hijack"
	req := dto.UpdateMenuItemRequest{Name: &newName}

	suite.mockRepo.On("FindMenuItemByID", ctx, menuItemID).Return(foreign, nil).Once()

	updated, err := suite.service.UpdateMenuItem(ctx, suite.identity, menuItemID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateMenuItem", mock.Anything, mock.Anything)
}

func (suite *MenuItemServiceTestSuite) TestDeleteMenuItem_Success() {
	ctx := context.Background()
	menuItemID := uuid.NewString()
	existing := &domain.MenuItem{
		MenuItemID:     menuItemID,
		Name:           "Retired Dish",
		OrganizationID: suite.identity.OrganizationID,
	}

	suite.mockRepo.On("FindMenuItemByID", ctx, menuItemID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteMenuItem", ctx, menuItemID).Return(nil).Once()

	err := suite.service.DeleteMenuItem(ctx, suite.identity, menuItemID)

	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestMenuItemService(t *testing.T) {
	suite.Run(t, new(MenuItemServiceTestSuite))
}
