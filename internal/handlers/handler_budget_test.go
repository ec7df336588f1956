package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/Harsha9951/travel_management_app/internal/handlers"
	"github.com/Harsha9951/travel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetBudget(ctx context.Context, ownerID string) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) SetTotal(ctx context.Context, ownerID string, total decimal.Decimal) (*domain.Budget, bool, error) {
	args := m.Called(ctx, ownerID, total)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Budget), args.Bool(1), args.Error(2)
}

func (m *MockBudgetService) AddExpense(ctx context.Context, ownerID string, amount decimal.Decimal) (*domain.Budget, bool, error) {
	args := m.Called(ctx, ownerID, amount)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Budget), args.Bool(1), args.Error(2)
}

func (m *MockBudgetService) ResetBudget(ctx context.Context, ownerID string) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Test Suite ---
type BudgetHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockBudgetService *MockBudgetService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *BudgetHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockBudgetService = new(MockBudgetService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBudgetRoutes(v1, suite.mockBudgetService)
}

func (suite *BudgetHandlerTestSuite) doRequest(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req, _ := http.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BudgetHandlerTestSuite) TestGetBudget_Success() {
	userID := uuid.NewString()
	budget := &domain.Budget{
		BudgetID: uuid.NewString(),
		OwnerID:  userID,
		Total:    decimal.NewFromInt(120000),
		Spent:    decimal.NewFromInt(68000),
	}

	suite.mockBudgetService.On("GetBudget", mock.Anything, userID).Return(budget, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/budget", suite.generateTestToken(userID), "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BudgetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Total.Equal(decimal.NewFromInt(120000)))
	suite.True(resp.Remaining.Equal(decimal.NewFromInt(52000)))
	suite.Equal(57, resp.Percentage)
	suite.Equal(domain.BudgetUnder, resp.Status)
	suite.False(resp.Celebrate)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetBudget_Unauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/budget", "", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "GetBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetHandlerTestSuite) TestSetTotal_CelebrationFlagPassedThrough() {
	userID := uuid.NewString()
	budget := &domain.Budget{
		BudgetID: uuid.NewString(),
		OwnerID:  userID,
		Total:    decimal.NewFromInt(200000),
		Spent:    decimal.NewFromInt(80000),
	}

	suite.mockBudgetService.On("SetTotal", mock.Anything, userID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(200000))
	})).Return(budget, true, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/budget/total", suite.generateTestToken(userID), `{"total":200000}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BudgetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Celebrate)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestAddExpense_InvalidBody() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/budget/expenses", suite.generateTestToken(userID), `{"amount":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "AddExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetHandlerTestSuite) TestResetBudget_Success() {
	userID := uuid.NewString()
	budget := &domain.Budget{
		BudgetID: uuid.NewString(),
		OwnerID:  userID,
		Total:    decimal.NewFromInt(120000),
		Spent:    decimal.NewFromInt(68000),
	}

	suite.mockBudgetService.On("ResetBudget", mock.Anything, userID).Return(budget, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/budget/reset", suite.generateTestToken(userID), "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func TestBudgetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
