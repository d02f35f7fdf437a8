package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
	"github.com/mattmach1/restaurant-inventory/internal/handlers"
	"github.com/mattmach1/restaurant-inventory/internal/platform/config"
	"github.com/mattmach1/restaurant-inventory/internal/utils"
)

// --- Mock MixMappingService ---
type MockMixMappingService struct {
	mock.Mock
}

func (m *MockMixMappingService) ListMappings(ctx context.Context, identity domain.Identity, menuItemID, locationID string) ([]domain.MixMappingDetail, error) {
	args := m.Called(ctx, identity, menuItemID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MixMappingDetail), args.Error(1)
}

func (m *MockMixMappingService) CreateMapping(ctx context.Context, identity domain.Identity, req dto.CreateMixMappingRequest) (*domain.MixMapping, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixMapping), args.Error(1)
}

func (m *MockMixMappingService) UpdateMapping(ctx context.Context, identity domain.Identity, mappingID string, req dto.UpdateMixMappingRequest) (*domain.MixMapping, error) {
	args := m.Called(ctx, identity, mappingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixMapping), args.Error(1)
}

func (m *MockMixMappingService) DeleteMapping(ctx context.Context, identity domain.Identity, mappingID string) error {
	args := m.Called(ctx, identity, mappingID)
	return args.Error(0)
}

func (m *MockMixMappingService) CopyMappings(ctx context.Context, identity domain.Identity, req dto.CopyMixMappingsRequest) (int64, error) {
	args := m.Called(ctx, identity, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMixMappingService) RecipeCost(ctx context.Context, identity domain.Identity, menuItemID, locationID string) (decimal.Decimal, error) {
	args := m.Called(ctx, identity, menuItemID, locationID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.MixMappingSvcFacade = (*MockMixMappingService)(nil)

// --- Test Suite ---
type MixMappingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockUserService    *MockUserService
	mockMappingService *MockMixMappingService
	jwtSecret          string
	user               *domain.User
}

func (suite *MixMappingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockUserService = new(MockUserService)
	suite.mockMappingService = new(MockMixMappingService)
	suite.user = &domain.User{
		UserID:         uuid.NewString(),
		Email:          "manager@pizzeria.test",
		OrganizationID: uuid.NewString(),
		Role:           domain.RoleManager,
	}

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	services := &portssvc.ServiceContainer{
		User:       suite.mockUserService,
		MixMapping: suite.mockMappingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *MixMappingHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	token, err := utils.GenerateJWT(suite.user.UserID, suite.user.Email, suite.jwtSecret, time.Hour, "test-issuer")
	suite.Require().NoError(err)
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.user.UserID).Return(suite.user, nil).Once()

	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func (suite *MixMappingHandlerTestSuite) identityMatcher() interface{} {
	return mock.MatchedBy(func(id domain.Identity) bool {
		return id.UserID == suite.user.UserID && id.OrganizationID == suite.user.OrganizationID
	})
}

// --- Test Cases ---

func (suite *MixMappingHandlerTestSuite) TestListMappings_Success() {
	menuItemID := uuid.NewString()
	locationID := uuid.NewString()
	details := []domain.MixMappingDetail{
		{
			MixMapping: domain.MixMapping{
				MappingID:    uuid.NewString(),
				MenuItemID:   menuItemID,
				LocationID:   locationID,
				IngredientID: uuid.NewString(),
				Quantity:     decimal.RequireFromString("0.4"),
			},
			Ingredient: domain.Ingredient{
				IngredientID:   uuid.NewString(),
				Name:           "Mozzarella",
				Price:          decimal.RequireFromString("2.50"),
				Unit:           "kg",
				OrganizationID: suite.user.OrganizationID,
			},
		},
	}

	suite.mockMappingService.On("ListMappings", mock.Anything, suite.identityMatcher(), menuItemID, locationID).
		Return(details, nil).Once()

	url := fmt.Sprintf("/api/mix-mappings?menuItemId=%s&locationId=%s", menuItemID, locationID)
	req := suite.authedRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.MixMappingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(details[0].MappingID, resp[0].MappingID)
	suite.Require().NotNil(resp[0].Ingredient)
	suite.Equal("Mozzarella", resp[0].Ingredient.Name)

	suite.mockMappingService.AssertExpectations(suite.T())
}

func (suite *MixMappingHandlerTestSuite) TestListMappings_MissingQueryParams() {
	req := suite.authedRequest(http.MethodGet, "/api/mix-mappings?menuItemId="+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMappingService.AssertNotCalled(suite.T(), "ListMappings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MixMappingHandlerTestSuite) TestCreateMapping_Conflict() {
	reqBody := dto.CreateMixMappingRequest{
		MenuItemID:   uuid.NewString(),
		LocationID:   uuid.NewString(),
		IngredientID: uuid.NewString(),
		Quantity:     decimal.RequireFromString("0.4"),
	}

	suite.mockMappingService.On("CreateMapping", mock.Anything, suite.identityMatcher(), reqBody).
		Return(nil, apperrors.NewConflictError("mapping already exists for this menu item, location and ingredient")).Once()

	body, _ := json.Marshal(reqBody)
	req := suite.authedRequest(http.MethodPost, "/api/mix-mappings", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already exists")

	suite.mockMappingService.AssertExpectations(suite.T())
}

func (suite *MixMappingHandlerTestSuite) TestCreateMapping_Success() {
	reqBody := dto.CreateMixMappingRequest{
		MenuItemID:   uuid.NewString(),
		LocationID:   uuid.NewString(),
		IngredientID: uuid.NewString(),
		Quantity:     decimal.RequireFromString("0.4"),
	}
	created := &domain.MixMapping{
		MappingID:    uuid.NewString(),
		MenuItemID:   reqBody.MenuItemID,
		LocationID:   reqBody.LocationID,
		IngredientID: reqBody.IngredientID,
		Quantity:     reqBody.Quantity,
	}

	suite.mockMappingService.On("CreateMapping", mock.Anything, suite.identityMatcher(), reqBody).
		Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req := suite.authedRequest(http.MethodPost, "/api/mix-mappings", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.MixMappingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.MappingID, resp.MappingID)
	suite.Nil(resp.Ingredient)

	suite.mockMappingService.AssertExpectations(suite.T())
}

func (suite *MixMappingHandlerTestSuite) TestCopyMappings_Success() {
	reqBody := dto.CopyMixMappingsRequest{
		FromLocationID: uuid.NewString(),
		ToLocationID:   uuid.NewString(),
	}

	suite.mockMappingService.On("CopyMappings", mock.Anything, suite.identityMatcher(), reqBody).
		Return(int64(12), nil).Once()

	body, _ := json.Marshal(reqBody)
	req := suite.authedRequest(http.MethodPost, "/api/mix-mappings/copy", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CopyMixMappingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Menu copied successfully", resp.Message)
	suite.Equal(int64(12), resp.CopiedCount)

	suite.mockMappingService.AssertExpectations(suite.T())
}

func (suite *MixMappingHandlerTestSuite) TestCopyMappings_ForeignLocation() {
	reqBody := dto.CopyMixMappingsRequest{
		FromLocationID: uuid.NewString(),
		ToLocationID:   uuid.NewString(),
	}

	suite.mockMappingService.On("CopyMappings", mock.Anything, suite.identityMatcher(), reqBody).
		Return(int64(0), apperrors.NewForbiddenError("location access denied")).Once()

	body, _ := json.Marshal(reqBody)
	req := suite.authedRequest(http.MethodPost, "/api/mix-mappings/copy", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "location access denied")

	suite.mockMappingService.AssertExpectations(suite.T())
}

func (suite *MixMappingHandlerTestSuite) TestRecipeCost_Success() {
	menuItemID := uuid.NewString()
	locationID := uuid.NewString()

	suite.mockMappingService.On("RecipeCost", mock.Anything, suite.identityMatcher(), menuItemID, locationID).
		Return(decimal.RequireFromString("10.00"), nil).Once()

	url := fmt.Sprintf("/api/mix-mappings/cost?menuItemId=%s&locationId=%s", menuItemID, locationID)
	req := suite.authedRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RecipeCostResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(menuItemID, resp.MenuItemID)
	suite.True(resp.TotalCost.Equal(decimal.RequireFromString("10.00")))

	suite.mockMappingService.AssertExpectations(suite.T())
}

func (suite *MixMappingHandlerTestSuite) TestDeleteMapping_NotFound() {
	mappingID := uuid.NewString()

	suite.mockMappingService.On("DeleteMapping", mock.Anything, suite.identityMatcher(), mappingID).
		Return(apperrors.NewNotFoundError("mix mapping not found")).Once()

	req := suite.authedRequest(http.MethodDelete, "/api/mix-mappings/"+mappingID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	suite.mockMappingService.AssertExpectations(suite.T())
}

func (suite *MixMappingHandlerTestSuite) TestListMappings_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/mix-mappings?menuItemId=a&locationId=b", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestMixMappingHandler(t *testing.T) {
	suite.Run(t, new(MixMappingHandlerTestSuite))
}
