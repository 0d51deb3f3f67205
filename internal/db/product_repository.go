package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/models"
)

const productColumns = `p.id, p.name, p.description, p.price, p.cost, p.category, p.created_at, p.updated_at`

// pq error code for foreign_key_violation
const fkViolation = "23503"

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(database *PostgresDB) *ProductRepository {
	return &ProductRepository{db: database.Conn}
}

func scanProduct(row scanner, p *models.Product, extra ...any) error {
	dest := []any{&p.ID, &p.Name, &p.Description, &p.Price, &p.Cost, &p.Category, &p.CreatedAt, &p.UpdatedAt}
	return row.Scan(append(dest, extra...)...)
}

// GetAll returns all products with their stock, newest first
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.ProductWithStock, error) {
	query := `
		SELECT ` + productColumns + `, s.quantity, s.min_quantity, s.location
		FROM products p
		LEFT JOIN stock s ON p.id = s.product_id
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.ProductWithStock{}
	for rows.Next() {
		var p models.ProductWithStock
		if err := scanProduct(rows, &p.Product, &p.StockQuantity, &p.MinQuantity, &p.Location); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetByID returns a single product with its stock
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.ProductWithStock, error) {
	query := `
		SELECT ` + productColumns + `, s.quantity, s.min_quantity, s.max_quantity, s.location
		FROM products p
		LEFT JOIN stock s ON p.id = s.product_id
		WHERE p.id = $1
	`

	var p models.ProductWithStock
	err := scanProduct(r.db.QueryRowContext(ctx, query, id), &p.Product,
		&p.StockQuantity, &p.MinQuantity, &p.MaxQuantity, &p.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

// Create inserts a product and its stock row in one transaction
func (r *ProductRepository) Create(ctx context.Context, p *models.Product, s *models.Stock) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.ProductID = p.ID

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		productQuery := `
			INSERT INTO products (id, name, description, price, cost, category)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at, updated_at
		`
		err := tx.QueryRowContext(ctx, productQuery, p.ID, p.Name, p.Description, p.Price, p.Cost, p.Category).
			Scan(&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}

		stockQuery := `
			INSERT INTO stock (id, product_id, quantity, min_quantity, max_quantity, location)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING updated_at
		`
		err = tx.QueryRowContext(ctx, stockQuery, s.ID, s.ProductID, s.Quantity, s.MinQuantity, s.MaxQuantity, s.Location).
			Scan(&s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert stock: %w", err)
		}

		return nil
	})
}

// Update replaces the editable product fields. Stock is untouched.
func (r *ProductRepository) Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	query := `
		UPDATE products p
		SET name = $1, description = $2, price = $3, cost = $4, category = $5, updated_at = NOW()
		WHERE p.id = $6
		RETURNING ` + productColumns

	var p models.Product
	err := scanProduct(r.db.QueryRowContext(ctx, query, req.Name, req.Description, req.Price, req.Cost, req.Category, id), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// Delete removes a product and its stock row. Products referenced by a
// delivery are kept so delivery history stays intact.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var deliveries int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM delivery_items WHERE product_id = $1`, id).Scan(&deliveries)
		if err != nil {
			return fmt.Errorf("failed to check delivery items: %w", err)
		}
		if deliveries > 0 {
			return apperrors.Conflict("Product is referenced by %d delivery item(s) and cannot be deleted", deliveries)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM stock WHERE product_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete stock: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			return apperrors.NotFound("Product not found")
		}
		return nil
	})

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == fkViolation {
		return apperrors.Conflict("Product is referenced by a delivery and cannot be deleted")
	}
	return err
}
