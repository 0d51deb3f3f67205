package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID            string          `json:"id"`
	OrderID       *string         `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CustomerName  *string         `json:"customer_name"`
	CustomerEmail *string         `json:"customer_email"`
	PaymentDate   time.Time       `json:"payment_date"`
	Notes         *string         `json:"notes"`
}

type CreatePaymentRequest struct {
	OrderID       *string         `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CustomerName  *string         `json:"customer_name"`
	CustomerEmail *string         `json:"customer_email"`
	Notes         *string         `json:"notes"`
}

// UpdatePaymentRequest is a patch: nil fields keep their stored value.
type UpdatePaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method"`
	PaymentStatus *PaymentStatus   `json:"payment_status"`
	CustomerName  *string          `json:"customer_name"`
	CustomerEmail *string          `json:"customer_email"`
	Notes         *string          `json:"notes"`
}

type PaymentStats struct {
	TotalPayments  int64           `json:"total_payments"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	AveragePayment decimal.Decimal `json:"average_payment"`
}
