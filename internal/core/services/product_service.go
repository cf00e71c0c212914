package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/google/uuid"
)

type productService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService creates the product catalog service.
func NewProductService(repo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{productRepo: repo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: product price must not be negative", apperrors.ErrValidation)
	}

	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        req.Name,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
		Price:       req.Price,
		IsRecurring: req.IsRecurring,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()), slog.String("product_id", product.ProductID))
		return nil, err
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	return &product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *productService) DeleteProducts(ctx context.Context, ids []string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.productRepo.DeleteProducts(ctx, ids); err != nil {
		logger.Error("Failed to delete products", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Products deleted", slog.Int("count", len(ids)))
	return nil
}
