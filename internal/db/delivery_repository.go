package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/models"
)

const deliveryColumns = `d.id, d.order_id, d.customer_name, d.customer_address, d.customer_phone, d.delivery_status,
	d.delivery_date::text, d.tracking_number, d.notes, d.created_at, d.updated_at`

type DeliveryRepository struct {
	db *sql.DB
}

func NewDeliveryRepository(database *PostgresDB) *DeliveryRepository {
	return &DeliveryRepository{db: database.Conn}
}

func scanDelivery(row scanner, d *models.Delivery, extra ...any) error {
	dest := []any{&d.ID, &d.OrderID, &d.CustomerName, &d.CustomerAddress, &d.CustomerPhone, &d.DeliveryStatus,
		&d.DeliveryDate, &d.TrackingNumber, &d.Notes, &d.CreatedAt, &d.UpdatedAt}
	return row.Scan(append(dest, extra...)...)
}

// Create inserts a delivery and its items, decrementing stock for each item
// in the order given. Any failure rolls back the delivery, its items and
// every decrement already applied. It returns the stock left per item.
func (r *DeliveryRepository) Create(ctx context.Context, req models.CreateDeliveryRequest) (*models.DeliveryDetail, []models.StockLevel, error) {
	detail := &models.DeliveryDetail{
		Delivery: models.Delivery{
			ID:              uuid.NewString(),
			OrderID:         req.OrderID,
			CustomerName:    req.CustomerName,
			CustomerAddress: req.CustomerAddress,
			CustomerPhone:   req.CustomerPhone,
			DeliveryStatus:  models.DeliveryPending,
			DeliveryDate:    req.DeliveryDate,
			TrackingNumber:  req.TrackingNumber,
			Notes:           req.Notes,
		},
		Items: make([]models.DeliveryItem, 0, len(req.Items)),
	}
	levels := make([]models.StockLevel, 0, len(req.Items))

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		deliveryQuery := `
			INSERT INTO deliveries (id, order_id, customer_name, customer_address, customer_phone,
				delivery_date, tracking_number, notes, delivery_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at, updated_at
		`
		d := &detail.Delivery
		err := tx.QueryRowContext(ctx, deliveryQuery,
			d.ID, d.OrderID, d.CustomerName, d.CustomerAddress, d.CustomerPhone,
			d.DeliveryDate, d.TrackingNumber, d.Notes, d.DeliveryStatus,
		).Scan(&d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert delivery: %w", err)
		}

		for _, item := range req.Items {
			line, level, err := r.addItem(ctx, tx, d.ID, item)
			if err != nil {
				return err
			}
			detail.Items = append(detail.Items, *line)
			levels = append(levels, *level)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return detail, levels, nil
}

// addItem checks, records and decrements one delivery line. The stock row
// stays locked until the surrounding transaction ends.
func (r *DeliveryRepository) addItem(ctx context.Context, tx *sql.Tx, deliveryID string, item models.DeliveryItemRequest) (*models.DeliveryItem, *models.StockLevel, error) {
	lockQuery := `
		SELECT s.quantity, s.min_quantity, p.name, p.price
		FROM stock s
		JOIN products p ON p.id = s.product_id
		WHERE s.product_id = $1
		FOR UPDATE OF s
	`
	line := &models.DeliveryItem{
		ID:         uuid.NewString(),
		DeliveryID: deliveryID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
	}
	level := &models.StockLevel{ProductID: item.ProductID}

	err := tx.QueryRowContext(ctx, lockQuery, item.ProductID).
		Scan(&level.Quantity, &level.MinQuantity, &line.ProductName, &line.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperrors.InvalidReference("Product %s not found in stock", item.ProductID)
		}
		return nil, nil, fmt.Errorf("failed to read stock: %w", err)
	}
	level.ProductName = line.ProductName

	if level.Quantity < item.Quantity {
		return nil, nil, apperrors.InsufficientStock(item.ProductID, line.ProductName, level.Quantity, item.Quantity)
	}

	itemQuery := `INSERT INTO delivery_items (id, delivery_id, product_id, quantity) VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, itemQuery, line.ID, deliveryID, item.ProductID, item.Quantity); err != nil {
		return nil, nil, fmt.Errorf("failed to insert delivery item: %w", err)
	}

	decrementQuery := `
		UPDATE stock
		SET quantity = quantity - $1, updated_at = NOW()
		WHERE product_id = $2 AND quantity >= $1
		RETURNING quantity
	`
	available := level.Quantity
	if err := tx.QueryRowContext(ctx, decrementQuery, item.Quantity, item.ProductID).Scan(&level.Quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperrors.InsufficientStock(item.ProductID, line.ProductName, available, item.Quantity)
		}
		return nil, nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return line, level, nil
}

func getDelivery(ctx context.Context, q rowQuerier, id string, lock bool) (*models.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries d WHERE d.id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var d models.Delivery
	if err := scanDelivery(q.QueryRowContext(ctx, query, id), &d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("Delivery not found")
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	return &d, nil
}

// GetByID returns a single delivery with its items
func (r *DeliveryRepository) GetByID(ctx context.Context, id string) (*models.DeliveryDetail, error) {
	d, err := getDelivery(ctx, r.db, id, false)
	if err != nil {
		return nil, err
	}

	itemsQuery := `
		SELECT di.id, di.delivery_id, di.product_id, p.name, p.price, di.quantity
		FROM delivery_items di
		JOIN products p ON di.product_id = p.id
		WHERE di.delivery_id = $1
		ORDER BY p.name
	`
	rows, err := r.db.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery items: %w", err)
	}
	defer rows.Close()

	detail := &models.DeliveryDetail{Delivery: *d, Items: []models.DeliveryItem{}}
	for rows.Next() {
		var item models.DeliveryItem
		err := rows.Scan(&item.ID, &item.DeliveryID, &item.ProductID, &item.ProductName, &item.Price, &item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery item: %w", err)
		}
		detail.Items = append(detail.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delivery items: %w", err)
	}

	return detail, nil
}

// GetAll returns all deliveries with an item summary, newest first
func (r *DeliveryRepository) GetAll(ctx context.Context) ([]models.DeliverySummary, error) {
	query := `
		SELECT ` + deliveryColumns + `,
			STRING_AGG(p.name || ' (x' || di.quantity || ')', ', ' ORDER BY p.name) AS items
		FROM deliveries d
		LEFT JOIN delivery_items di ON d.id = di.delivery_id
		LEFT JOIN products p ON di.product_id = p.id
		GROUP BY d.id
		ORDER BY d.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	deliveries := []models.DeliverySummary{}
	for rows.Next() {
		var d models.DeliverySummary
		if err := scanDelivery(rows, &d.Delivery, &d.Items); err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	return deliveries, nil
}

// Update patches status and tracking fields. Status may only move forward.
func (r *DeliveryRepository) Update(ctx context.Context, id string, req models.UpdateDeliveryRequest) (*models.Delivery, error) {
	var updated models.Delivery

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getDelivery(ctx, tx, id, true)
		if err != nil {
			return err
		}

		if req.DeliveryStatus != nil && !current.DeliveryStatus.CanTransitionTo(*req.DeliveryStatus) {
			return apperrors.Validation("Cannot change delivery status from %s to %s", current.DeliveryStatus, *req.DeliveryStatus)
		}

		query := `
			UPDATE deliveries d
			SET delivery_status = COALESCE($1, d.delivery_status),
				delivery_date = COALESCE($2::date, d.delivery_date),
				tracking_number = COALESCE($3, d.tracking_number),
				notes = COALESCE($4, d.notes),
				updated_at = NOW()
			WHERE d.id = $5
			RETURNING ` + deliveryColumns

		err = scanDelivery(tx.QueryRowContext(ctx, query,
			req.DeliveryStatus, req.DeliveryDate, req.TrackingNumber, req.Notes, id,
		), &updated)
		if err != nil {
			return fmt.Errorf("failed to update delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Stats counts deliveries by status
func (r *DeliveryRepository) Stats(ctx context.Context) (*models.DeliveryStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE delivery_status = 'pending'),
			COUNT(*) FILTER (WHERE delivery_status = 'in_transit'),
			COUNT(*) FILTER (WHERE delivery_status = 'delivered')
		FROM deliveries
	`

	var s models.DeliveryStats
	err := r.db.QueryRowContext(ctx, query).
		Scan(&s.TotalDeliveries, &s.PendingDeliveries, &s.InTransit, &s.CompletedDeliveries)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery stats: %w", err)
	}

	return &s, nil
}
