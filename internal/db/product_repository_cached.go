package db

import (
	"context"

	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/cache"
	"github.com/prudhivi99/shop-manager/internal/models"
)

// Cache is the key/value store behind CachedProductRepository.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// CachedProductRepository serves product reads from cache and drops the
// affected keys on every write. Cache failures never fail a call.
type CachedProductRepository struct {
	repo   *ProductRepository
	cache  Cache
	logger *zap.Logger
}

func NewCachedProductRepository(repo *ProductRepository, c Cache, logger *zap.Logger) *CachedProductRepository {
	return &CachedProductRepository{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

func productKey(id string) string {
	return "product:" + id
}

func allProductsKey() string {
	return "products:all"
}

func (r *CachedProductRepository) read(ctx context.Context, key string, dest any) bool {
	err := r.cache.Get(ctx, key, dest)
	if err == nil {
		r.logger.Debug("📦 Cache HIT", zap.String("key", key))
		return true
	}
	if !cache.IsMiss(err) {
		r.logger.Warn("⚠️ Cache error", zap.String("key", key), zap.Error(err))
	}
	r.logger.Debug("💾 Cache MISS", zap.String("key", key))
	return false
}

func (r *CachedProductRepository) write(ctx context.Context, key string, value any) {
	if err := r.cache.Set(ctx, key, value); err != nil {
		r.logger.Warn("⚠️ Failed to cache value", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedProductRepository) GetAll(ctx context.Context) ([]models.ProductWithStock, error) {
	var products []models.ProductWithStock
	if r.read(ctx, allProductsKey(), &products) {
		return products, nil
	}

	products, err := r.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	r.write(ctx, allProductsKey(), products)
	return products, nil
}

func (r *CachedProductRepository) GetByID(ctx context.Context, id string) (*models.ProductWithStock, error) {
	var product models.ProductWithStock
	if r.read(ctx, productKey(id), &product) {
		return &product, nil
	}

	p, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.write(ctx, productKey(id), p)
	return p, nil
}

func (r *CachedProductRepository) Create(ctx context.Context, p *models.Product, s *models.Stock) error {
	if err := r.repo.Create(ctx, p, s); err != nil {
		return err
	}

	r.Invalidate(ctx)
	return nil
}

func (r *CachedProductRepository) Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	p, err := r.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	r.Invalidate(ctx, id)
	return p, nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	r.Invalidate(ctx, id)
	return nil
}

// Invalidate drops the product list and the given products from cache.
func (r *CachedProductRepository) Invalidate(ctx context.Context, productIDs ...string) {
	keys := make([]string, 0, len(productIDs)+1)
	keys = append(keys, allProductsKey())
	for _, id := range productIDs {
		keys = append(keys, productKey(id))
	}

	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.logger.Warn("⚠️ Failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
		return
	}
	r.logger.Debug("🗑️ Cache invalidated", zap.Strings("keys", keys))
}
