package db_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/prudhivi99/shop-manager/internal/db"
)

var (
	productCols  = []string{"id", "name", "description", "price", "cost", "category", "created_at", "updated_at"}
	stockCols    = []string{"id", "product_id", "quantity", "min_quantity", "max_quantity", "location", "updated_at", "name", "price", "category"}
	paymentCols  = []string{"id", "order_id", "amount", "payment_method", "payment_status", "customer_name", "customer_email", "payment_date", "notes"}
	deliveryCols = []string{"id", "order_id", "customer_name", "customer_address", "customer_phone", "delivery_status",
		"delivery_date", "tracking_number", "notes", "created_at", "updated_at"}
)

func setupMockDB(t *testing.T) (*db.PostgresDB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &db.PostgresDB{Conn: conn}, mock
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
