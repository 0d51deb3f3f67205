package db_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/db"
	"github.com/prudhivi99/shop-manager/internal/models"
)

// memoryCache mimics RedisCache: JSON values, redis.Nil on miss.
type memoryCache struct {
	values  map[string][]byte
	deleted []string
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest any) error {
	if c.failGet {
		return errors.New("redis: connection pool timeout")
	}
	v, ok := c.values[key]
	if !ok {
		return redis.Nil
	}
	return json.Unmarshal(v, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	c.deleted = append(c.deleted, keys...)
	return nil
}

var productWithStockCols = append(append([]string{}, productCols...), "quantity", "min_quantity", "max_quantity", "location")

func expectProductRow(mock sqlmock.Sqlmock, id string) {
	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(productWithStockCols).
			AddRow(id, "Widget", nil, "100.00", "50.00", nil, now, now, 5, 10, 1000, "Main Warehouse"))
}

func TestCachedProductGetByID_ServesSecondReadFromCache(t *testing.T) {
	database, mock := setupMockDB(t)
	c := newMemoryCache()
	repo := db.NewCachedProductRepository(db.NewProductRepository(database), c, zap.NewNop())

	expectProductRow(mock, "p1")

	first, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	second, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.True(t, second.Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 5, *second.StockQuantity)
	assert.Contains(t, c.values, "product:p1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedProductGetByID_CacheErrorFallsBackToStore(t *testing.T) {
	database, mock := setupMockDB(t)
	c := newMemoryCache()
	c.failGet = true
	repo := db.NewCachedProductRepository(db.NewProductRepository(database), c, zap.NewNop())

	expectProductRow(mock, "p1")

	p, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedProductUpdate_InvalidatesListAndProduct(t *testing.T) {
	database, mock := setupMockDB(t)
	c := newMemoryCache()
	repo := db.NewCachedProductRepository(db.NewProductRepository(database), c, zap.NewNop())

	expectProductRow(mock, "p1")
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products p")).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow("p1", "Widget Pro", nil, "120.00", "50.00", nil, now, now))
	expectProductRow(mock, "p1")

	_, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), "p1", models.UpdateProductRequest{
		Name:  "Widget Pro",
		Price: decimal.NewFromInt(120),
		Cost:  decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"products:all", "product:p1"}, c.deleted)

	_, err = repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedProductInvalidate_DropsGivenProducts(t *testing.T) {
	database, _ := setupMockDB(t)
	c := newMemoryCache()
	repo := db.NewCachedProductRepository(db.NewProductRepository(database), c, zap.NewNop())

	c.values["products:all"] = []byte("[]")
	c.values["product:p1"] = []byte("{}")
	c.values["product:p2"] = []byte("{}")

	repo.Invalidate(context.Background(), "p1")

	assert.NotContains(t, c.values, "products:all")
	assert.NotContains(t, c.values, "product:p1")
	assert.Contains(t, c.values, "product:p2")
}
