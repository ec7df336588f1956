package services_test

import (
	"context"
	"testing"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByOwner(ctx context.Context, ownerID string) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudgetByOwner(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBudgetRepository
	service  portssvc.BudgetSvcFacade
	ownerID  string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.service = services.NewBudgetService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) existingBudget(total, spent int64) *domain.Budget {
	return &domain.Budget{
		BudgetID: uuid.NewString(),
		OwnerID:  suite.ownerID,
		Total:    decimal.NewFromInt(total),
		Spent:    decimal.NewFromInt(spent),
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestGetBudget_SeedsOnFirstAccess() {
	ctx := context.Background()

	suite.mockRepo.On("FindBudgetByOwner", ctx, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.OwnerID == suite.ownerID &&
			b.Total.Equal(decimal.NewFromInt(120000)) &&
			b.Spent.Equal(decimal.NewFromInt(68000))
	})).Return(nil).Once()

	budget, err := suite.service.GetBudget(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.Equal(57, budget.Percentage())
	suite.Equal(domain.BudgetUnder, budget.Status())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSetTotal_NonPositiveIsSilentNoOp() {
	ctx := context.Background()
	budget := suite.existingBudget(100000, 40000)

	suite.mockRepo.On("FindBudgetByOwner", ctx, suite.ownerID).Return(budget, nil).Twice()

	for _, total := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-500)} {
		got, celebrated, err := suite.service.SetTotal(ctx, suite.ownerID, total)

		suite.Require().NoError(err)
		suite.False(celebrated)
		suite.True(got.Total.Equal(decimal.NewFromInt(100000)), "total must stay unchanged")
	}

	// No SaveBudget expectation: a no-op must not persist anything.
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestSetTotal_RaisingTotalCelebratesOnCrossing() {
	ctx := context.Background()
	// 80000/100000 = 80% (warning); raising total to 200000 drops it to 40%.
	budget := suite.existingBudget(100000, 80000)

	suite.mockRepo.On("FindBudgetByOwner", ctx, suite.ownerID).Return(budget, nil).Once()
	suite.mockRepo.On("SaveBudget", ctx, mock.Anything).Return(nil).Once()

	got, celebrated, err := suite.service.SetTotal(ctx, suite.ownerID, decimal.NewFromInt(200000))

	suite.Require().NoError(err)
	suite.True(celebrated)
	suite.Equal(domain.BudgetUnder, got.Status())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSetTotal_NoCelebrationFromOverToUnder() {
	ctx := context.Background()
	// 118000/120000 = 98% (over); raising total to 1000000 drops it to 12%.
	budget := suite.existingBudget(120000, 118000)

	suite.mockRepo.On("FindBudgetByOwner", ctx, suite.ownerID).Return(budget, nil).Once()
	suite.mockRepo.On("SaveBudget", ctx, mock.Anything).Return(nil).Once()

	got, celebrated, err := suite.service.SetTotal(ctx, suite.ownerID, decimal.NewFromInt(1000000))

	suite.Require().NoError(err)
	suite.False(celebrated, "only a warning-to-under crossing celebrates")
	suite.Equal(domain.BudgetUnder, got.Status())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestAddExpense_AllowsOverspend() {
	ctx := context.Background()
	budget := suite.existingBudget(100000, 90000)

	suite.mockRepo.On("FindBudgetByOwner", ctx, suite.ownerID).Return(budget, nil).Once()
	suite.mockRepo.On("SaveBudget", ctx, mock.Anything).Return(nil).Once()

	got, celebrated, err := suite.service.AddExpense(ctx, suite.ownerID, decimal.NewFromInt(50000))

	suite.Require().NoError(err)
	suite.False(celebrated)
	suite.True(got.Spent.Equal(decimal.NewFromInt(140000)))
	suite.Equal(domain.BudgetOver, got.Status())
	suite.True(got.Remaining().IsZero(), "remaining clamps to zero when overspent")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestAddExpense_NoCelebrationWhileStayingUnder() {
	ctx := context.Background()
	budget := suite.existingBudget(100000, 10000)

	suite.mockRepo.On("FindBudgetByOwner", ctx, suite.ownerID).Return(budget, nil).Once()
	suite.mockRepo.On("SaveBudget", ctx, mock.Anything).Return(nil).Once()

	_, celebrated, err := suite.service.AddExpense(ctx, suite.ownerID, decimal.NewFromInt(5000))

	suite.Require().NoError(err)
	suite.False(celebrated, "staying inside the under band must not celebrate")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestResetBudget_RestoresSeeds() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteBudgetByOwner", ctx, suite.ownerID).Return(nil).Once()
	suite.mockRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Total.Equal(decimal.NewFromInt(120000)) && b.Spent.Equal(decimal.NewFromInt(68000))
	})).Return(nil).Once()

	budget, err := suite.service.ResetBudget(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.True(budget.Total.Equal(decimal.NewFromInt(120000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
