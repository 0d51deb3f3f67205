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

const paymentColumns = `id, order_id, amount, payment_method, payment_status, customer_name, customer_email, payment_date, notes`

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(database *PostgresDB) *PaymentRepository {
	return &PaymentRepository{db: database.Conn}
}

func scanPayment(row scanner, p *models.Payment) error {
	return row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaymentMethod, &p.PaymentStatus,
		&p.CustomerName, &p.CustomerEmail, &p.PaymentDate, &p.Notes)
}

// Create inserts a new payment
func (r *PaymentRepository) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	query := `
		INSERT INTO payments (id, order_id, amount, payment_method, payment_status, customer_name, customer_email, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + paymentColumns

	var p models.Payment
	err := scanPayment(r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		req.OrderID,
		req.Amount,
		req.PaymentMethod,
		req.PaymentStatus,
		req.CustomerName,
		req.CustomerEmail,
		req.Notes,
	), &p)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &p, nil
}

// GetAll returns all payments, newest first
func (r *PaymentRepository) GetAll(ctx context.Context) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// GetByID returns a single payment
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var p models.Payment
	if err := scanPayment(r.db.QueryRowContext(ctx, query, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("Payment not found")
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &p, nil
}

// Update patches a payment. Nil fields keep their stored value.
func (r *PaymentRepository) Update(ctx context.Context, id string, req models.UpdatePaymentRequest) (*models.Payment, error) {
	query := `
		UPDATE payments
		SET amount = COALESCE($1, amount),
			payment_method = COALESCE($2, payment_method),
			payment_status = COALESCE($3, payment_status),
			customer_name = COALESCE($4, customer_name),
			customer_email = COALESCE($5, customer_email),
			notes = COALESCE($6, notes)
		WHERE id = $7
		RETURNING ` + paymentColumns

	var p models.Payment
	err := scanPayment(r.db.QueryRowContext(ctx, query,
		req.Amount,
		req.PaymentMethod,
		req.PaymentStatus,
		req.CustomerName,
		req.CustomerEmail,
		req.Notes,
		id,
	), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("Payment not found")
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return &p, nil
}

// Stats aggregates payment totals
func (r *PaymentRepository) Stats(ctx context.Context) (*models.PaymentStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN payment_status = 'completed' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN amount ELSE 0 END), 0),
			COALESCE(ROUND(AVG(amount), 2), 0)
		FROM payments
	`

	var s models.PaymentStats
	err := r.db.QueryRowContext(ctx, query).
		Scan(&s.TotalPayments, &s.TotalRevenue, &s.PendingAmount, &s.AveragePayment)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment stats: %w", err)
	}

	return &s, nil
}
