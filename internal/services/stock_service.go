package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/models"
)

type StockStore interface {
	GetAll(ctx context.Context) ([]models.StockItem, error)
	GetLow(ctx context.Context) ([]models.StockItem, error)
	Update(ctx context.Context, productID string, req models.UpdateStockRequest) (*models.StockItem, error)
}

type StockService struct {
	store     StockStore
	cache     ProductCache
	publisher EventPublisher
	logger    *zap.Logger
}

// NewStockService wires the stock service. cache may be nil.
func NewStockService(store StockStore, cache ProductCache, publisher EventPublisher, logger *zap.Logger) *StockService {
	return &StockService{
		store:     store,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *StockService) List(ctx context.Context) ([]models.StockItem, error) {
	items, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return items, nil
}

// ListLow returns the rows at or below their reorder threshold
func (s *StockService) ListLow(ctx context.Context) ([]models.StockItem, error) {
	items, err := s.store.GetLow(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return items, nil
}

// Update edits quantity, thresholds or location of a product's stock
func (s *StockService) Update(ctx context.Context, productID string, req models.UpdateStockRequest) (*models.StockItem, error) {
	for _, f := range []struct {
		name  string
		value *int
	}{
		{"Quantity", req.Quantity},
		{"Minimum quantity", req.MinQuantity},
		{"Maximum quantity", req.MaxQuantity},
	} {
		if f.value != nil && *f.value < 0 {
			return nil, apperrors.Validation("%s cannot be negative", f.name)
		}
	}

	item, err := s.store.Update(ctx, productID, req)
	if err != nil {
		return nil, wrap(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, productID)
	}

	s.logger.Info("📦 Stock updated",
		zap.String("product_id", productID),
		zap.Int("quantity", item.Quantity),
		zap.Int("min_quantity", item.MinQuantity),
	)

	if item.IsLow() {
		notifyLow(ctx, s.publisher, s.logger, item.Level())
	}

	return item, nil
}

func notifyLow(ctx context.Context, publisher EventPublisher, logger *zap.Logger, level models.StockLevel) {
	logger.Warn("⚠️ Stock low",
		zap.String("product_id", level.ProductID),
		zap.Int("quantity", level.Quantity),
		zap.Int("min_quantity", level.MinQuantity),
	)
	if err := publisher.PublishStockLow(ctx, level); err != nil {
		logger.Warn("⚠️ Failed to publish stock.low", zap.String("product_id", level.ProductID), zap.Error(err))
	}
}
