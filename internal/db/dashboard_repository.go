package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prudhivi99/shop-manager/internal/models"
)

type DashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(database *PostgresDB) *DashboardRepository {
	return &DashboardRepository{db: database.Conn}
}

// Snapshot reads every dashboard figure in a single round-trip
func (r *DashboardRepository) Snapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM stock WHERE quantity <= min_quantity),
			(SELECT COUNT(*) FROM payments WHERE payment_status = 'pending'),
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE payment_status = 'pending'),
			(SELECT COUNT(*) FROM deliveries WHERE delivery_status = 'pending'),
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE payment_status = 'completed')
	`

	var s models.DashboardSnapshot
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.Products,
		&s.LowStockItems,
		&s.PendingPayments,
		&s.PendingPaymentsAmount,
		&s.PendingDeliveries,
		&s.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}

	return &s, nil
}
