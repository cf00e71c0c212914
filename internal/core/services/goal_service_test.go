package services_test

import (
	"context"
	"testing"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/core/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo     *MockGoalRepository
	mockSaleRepo     *MockSaleRepository
	mockExpenseRepo  *MockExpenseRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewGoalService(suite.mockGoalRepo, suite.mockSaleRepo, suite.mockExpenseRepo, suite.mockCustomerRepo)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Title:    "Achieve Q3 Revenue Target",
		Type:     domain.GoalRevenue,
		Target:   decimal.NewFromInt(10000),
		Deadline: "2024-09-30",
	}

	suite.mockGoalRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.GoalID != "" && g.Type == domain.GoalRevenue && g.Target.Equal(req.Target)
	})).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.Equal(req.Title, goal.Title)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_NonPositiveTargetRejected() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Title:    "Broken goal",
		Type:     domain.GoalRevenue,
		Target:   decimal.Zero,
		Deadline: "2024-09-30",
	}

	goal, err := suite.service.CreateGoal(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(goal)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestListGoals_DerivesProgress() {
	ctx := context.Background()

	goals := []domain.Goal{
		{GoalID: "g1", Title: "Revenue", Type: domain.GoalRevenue, Target: decimal.NewFromInt(200)},
		{GoalID: "g2", Title: "Customers", Type: domain.GoalCustomers, Target: decimal.NewFromInt(10)},
	}
	sales := []domain.Sale{{SaleID: "s1", TotalPrice: decimal.NewFromInt(300)}}

	suite.mockGoalRepo.On("ListGoals", ctx).Return(goals, nil).Once()
	suite.mockSaleRepo.On("ListSales", ctx).Return(sales, nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{}, nil).Once()
	suite.mockCustomerRepo.On("ListCustomers", ctx).Return(make([]domain.Customer, 4), nil).Once()

	progress, err := suite.service.ListGoals(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 2)

	// Revenue goal overshoots its target: current is raw, percent clamps.
	suite.True(progress[0].Current.Equal(decimal.NewFromInt(300)))
	suite.True(progress[0].Percent.Equal(decimal.NewFromInt(100)))

	suite.True(progress[1].Current.Equal(decimal.NewFromInt(4)))
	suite.True(progress[1].Percent.Equal(decimal.NewFromInt(40)))
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
