package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/models"
)

const stockItemColumns = `s.id, s.product_id, s.quantity, s.min_quantity, s.max_quantity, s.location, s.updated_at,
	p.name, p.price, p.category`

type StockRepository struct {
	db *sql.DB
}

func NewStockRepository(database *PostgresDB) *StockRepository {
	return &StockRepository{db: database.Conn}
}

func scanStockItem(row scanner, s *models.StockItem) error {
	return row.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.MinQuantity, &s.MaxQuantity, &s.Location, &s.UpdatedAt,
		&s.ProductName, &s.Price, &s.Category)
}

func (r *StockRepository) list(ctx context.Context, query string) ([]models.StockItem, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}
	defer rows.Close()

	items := []models.StockItem{}
	for rows.Next() {
		var s models.StockItem
		if err := scanStockItem(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock: %w", err)
	}

	return items, nil
}

// GetAll returns every stock row joined to its product, most recently updated first
func (r *StockRepository) GetAll(ctx context.Context) ([]models.StockItem, error) {
	return r.list(ctx, `
		SELECT `+stockItemColumns+`
		FROM stock s
		JOIN products p ON s.product_id = p.id
		ORDER BY s.updated_at DESC
	`)
}

// GetLow returns stock rows at or below their reorder threshold, most depleted first
func (r *StockRepository) GetLow(ctx context.Context) ([]models.StockItem, error) {
	return r.list(ctx, `
		SELECT `+stockItemColumns+`
		FROM stock s
		JOIN products p ON s.product_id = p.id
		WHERE s.quantity <= s.min_quantity
		ORDER BY s.quantity ASC
	`)
}

// Update edits the stock row of a product. Nil fields keep their value.
func (r *StockRepository) Update(ctx context.Context, productID string, req models.UpdateStockRequest) (*models.StockItem, error) {
	query := `
		UPDATE stock s
		SET quantity = COALESCE($1, s.quantity),
			min_quantity = COALESCE($2, s.min_quantity),
			max_quantity = COALESCE($3, s.max_quantity),
			location = COALESCE($4, s.location),
			updated_at = NOW()
		FROM products p
		WHERE s.product_id = $5 AND p.id = s.product_id
		RETURNING ` + stockItemColumns

	var s models.StockItem
	err := scanStockItem(r.db.QueryRowContext(ctx, query, req.Quantity, req.MinQuantity, req.MaxQuantity, req.Location, productID), &s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("Stock not found for product %s", productID)
		}
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return &s, nil
}
