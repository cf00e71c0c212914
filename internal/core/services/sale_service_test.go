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

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo     *MockSaleRepository
	mockCustomerRepo *MockCustomerRepository
	mockNotifier     *MockNotifier
	service          portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockCustomerRepo, suite.mockNotifier)
}

func (suite *SaleServiceTestSuite) validRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		Date:         "2024-07-15",
		ProductID:    "p1",
		ProductName:  "SaaS Platform - Pro Monthly",
		CustomerID:   "c1",
		CustomerName: "Innovate Corp",
		Quantity:     1,
		TotalPrice:   decimal.RequireFromString("49.99"),
	}
}

func (suite *SaleServiceTestSuite) TestCreateSale_Success() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.SaleID != "" && s.CustomerID == req.CustomerID && s.TotalPrice.Equal(req.TotalPrice)
	})).Return(nil).Once()
	suite.mockCustomerRepo.On("AddToTotalSpent", ctx, "c1", mock.MatchedBy(func(amt decimal.Decimal) bool {
		return amt.Equal(req.TotalPrice)
	})).Return(nil).Once()
	suite.mockNotifier.On("NotifyDataChanged").Return().Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.Equal("2024-07-15", dto.FormatDate(sale.Date))
	suite.Equal(req.ProductName, sale.ProductName)

	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_UnknownCustomerTolerated() {
	ctx := context.Background()
	req := suite.validRequest()
	req.CustomerID = "ghost"

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockCustomerRepo.On("AddToTotalSpent", ctx, "ghost", mock.Anything).Return(apperrors.ErrNotFound).Once()
	suite.mockNotifier.On("NotifyDataChanged").Return().Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err, "an unknown customer id must not fail the sale")
	suite.NotNil(sale)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_NegativeTotalRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.TotalPrice = decimal.RequireFromString("-1")

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sale)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "NotifyDataChanged")
}

func (suite *SaleServiceTestSuite) TestCreateSale_BadDateRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Date = "15/07/2024"

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestDeleteSales_Notifies() {
	ctx := context.Background()
	ids := []string{"s1", "s2"}

	suite.mockSaleRepo.On("DeleteSales", ctx, ids).Return(nil).Once()
	suite.mockNotifier.On("NotifyDataChanged").Return().Once()

	err := suite.service.DeleteSales(ctx, ids)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestListSales_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockSaleRepo.On("ListSales", ctx).Return([]domain.Sale{}, nil).Once()

	sales, err := suite.service.ListSales(ctx)

	suite.Require().NoError(err)
	suite.NotNil(sales)
	suite.Empty(sales)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
