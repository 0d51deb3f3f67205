package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/models"
)

type ProductStore interface {
	GetAll(ctx context.Context) ([]models.ProductWithStock, error)
	GetByID(ctx context.Context, id string) (*models.ProductWithStock, error)
	Create(ctx context.Context, p *models.Product, s *models.Stock) error
	Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductService struct {
	store  ProductStore
	logger *zap.Logger
}

func NewProductService(store ProductStore, logger *zap.Logger) *ProductService {
	return &ProductService{store: store, logger: logger}
}

// Create adds a product together with its stock row
func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.ProductWithStock, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Price.IsZero() || req.Cost.IsZero() {
		return nil, apperrors.Validation("Name, price, and cost are required")
	}
	if err := validatePricing(req.Price, req.Cost); err != nil {
		return nil, err
	}

	stock := &models.Stock{
		MinQuantity: models.DefaultMinQuantity,
		MaxQuantity: models.DefaultMaxQuantity,
	}
	if req.InitialStock != nil {
		if *req.InitialStock < 0 {
			return nil, apperrors.Validation("Initial stock cannot be negative")
		}
		stock.Quantity = *req.InitialStock
	}
	if req.MinQuantity != nil {
		if *req.MinQuantity < 0 {
			return nil, apperrors.Validation("Minimum quantity cannot be negative")
		}
		stock.MinQuantity = *req.MinQuantity
	}
	location := models.DefaultLocation
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		location = *req.Location
	}
	stock.Location = &location

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Category:    req.Category,
	}

	if err := s.store.Create(ctx, product, stock); err != nil {
		s.logger.Error("❌ Failed to create product", zap.String("name", req.Name), zap.Error(err))
		return nil, wrap(err)
	}

	s.logger.Info("✅ Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("initial_stock", stock.Quantity),
	)

	return &models.ProductWithStock{
		Product:       *product,
		StockQuantity: &stock.Quantity,
		MinQuantity:   &stock.MinQuantity,
		MaxQuantity:   &stock.MaxQuantity,
		Location:      stock.Location,
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.ProductWithStock, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err)
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.ProductWithStock, error) {
	products, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("❌ Failed to list products", zap.Error(err))
		return nil, wrap(err)
	}
	return products, nil
}

// Update replaces the product's descriptive fields and prices
func (s *ProductService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.Validation("Name is required")
	}
	if err := validatePricing(req.Price, req.Cost); err != nil {
		return nil, err
	}

	p, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, wrap(err)
	}

	s.logger.Info("✏️ Product updated", zap.String("product_id", id))
	return p, nil
}

// Delete removes a product and its stock
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return wrap(err)
	}

	s.logger.Info("🗑️ Product deleted", zap.String("product_id", id))
	return nil
}
