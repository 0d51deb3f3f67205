package db_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/db"
	"github.com/prudhivi99/shop-manager/internal/models"
)

func TestPaymentCreate(t *testing.T) {
	database, mock := setupMockDB(t)
	repo := db.NewPaymentRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(sqlmock.AnyArg(), nil, "49.99", "card", "pending", "Ada", nil, nil).
		WillReturnRows(sqlmock.NewRows(paymentCols).
			AddRow("pay1", nil, "49.99", "card", "pending", "Ada", nil, now, nil))

	p, err := repo.Create(context.Background(), models.CreatePaymentRequest{
		Amount:        decimal.RequireFromString("49.99"),
		PaymentMethod: "card",
		PaymentStatus: models.PaymentPending,
		CustomerName:  strPtr("Ada"),
	})
	require.NoError(t, err)

	assert.Equal(t, "pay1", p.ID)
	assert.Equal(t, "49.99", p.Amount.StringFixed(2))
	assert.Equal(t, now, p.PaymentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentUpdate_NotFound(t *testing.T) {
	database, mock := setupMockDB(t)
	repo := db.NewPaymentRepository(database)
	status := models.PaymentCompleted

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE payments")).
		WithArgs(nil, nil, "completed", nil, nil, nil, "missing").
		WillReturnRows(sqlmock.NewRows(paymentCols))

	_, err := repo.Update(context.Background(), "missing", models.UpdatePaymentRequest{PaymentStatus: &status})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentStats_EmptyTableIsZero(t *testing.T) {
	database, mock := setupMockDB(t)
	repo := db.NewPaymentRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("ROUND(AVG(amount), 2)")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "revenue", "pending", "avg"}).AddRow(0, "0", "0", "0"))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalPayments)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.AveragePayment.IsZero())
}

func TestPaymentStats_SumsByStatus(t *testing.T) {
	database, mock := setupMockDB(t)
	repo := db.NewPaymentRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payments")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "revenue", "pending", "avg"}).AddRow(3, "150.00", "25.50", "58.50"))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalPayments)
	assert.Equal(t, "150.00", stats.TotalRevenue.StringFixed(2))
	assert.Equal(t, "25.50", stats.PendingAmount.StringFixed(2))
}
