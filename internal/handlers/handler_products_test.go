package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/handlers"
	"github.com/bizpulse/bizpulse_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) DeleteProducts(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockProductService
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockProductService)

	services := &portssvc.ServiceContainer{Product: suite.mockService}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, services, nil)
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_Success() {
	reqBody := dto.CreateProductRequest{
		Name:     "Cloud Storage - 1TB",
		SKU:      "CS-1TB-01",
		Quantity: 250,
		Price:    decimal.RequireFromString("9.99"),
	}
	created := &domain.Product{
		ProductID: "p1",
		Name:      reqBody.Name,
		SKU:       reqBody.SKU,
		Quantity:  reqBody.Quantity,
		Price:     reqBody.Price,
		CreatedAt: time.Now().UTC(),
	}
	suite.mockService.On("CreateProduct", mock.Anything, reqBody).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("p1", resp.ProductID)
	suite.Equal("CS-1TB-01", resp.SKU)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_MissingSKU() {
	body := []byte(`{"name": "No SKU", "quantity": 1, "price": "5"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateProduct", mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_ValidationError() {
	reqBody := dto.CreateProductRequest{Name: "Bad", SKU: "BAD-1", Price: decimal.RequireFromString("-5")}
	suite.mockService.On("CreateProduct", mock.Anything, reqBody).Return(nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestListProducts() {
	products := []domain.Product{{ProductID: "p1", Name: "A", SKU: "A-1"}}
	suite.mockService.On("ListProducts", mock.Anything).Return(products, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("p1", resp[0].ProductID)
}

func (suite *ProductHandlerTestSuite) TestListProducts_ServiceError() {
	suite.mockService.On("ListProducts", mock.Anything).Return(nil, errors.New("boom")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *ProductHandlerTestSuite) TestDeleteProducts() {
	suite.mockService.On("DeleteProducts", mock.Anything, []string{"p1", "p2"}).Return(nil).Once()

	body := []byte(`{"ids": ["p1", "p2"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestDeleteProducts_EmptyIDsRejected() {
	body := []byte(`{"ids": []}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "DeleteProducts", mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestExportProducts() {
	products := []domain.Product{
		{ProductID: "p1", Name: "Cloud Storage - 1TB", SKU: "CS-1TB-01", Quantity: 250, Price: decimal.RequireFromString("9.99")},
		{ProductID: "p2", Name: "Hourly Consulting", SKU: "CONSULT-HR", Quantity: 800, Price: decimal.RequireFromString("150")},
	}
	suite.mockService.On("ListProducts", mock.Anything).Return(products, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/export?ids=p2", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "products.csv")
	suite.Contains(w.Body.String(), "Hourly Consulting")
	suite.NotContains(w.Body.String(), "Cloud Storage", "selection export only includes the requested ids")
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
