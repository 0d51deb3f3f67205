package models

import "github.com/shopspring/decimal"

// DashboardSnapshot is a live cross-entity summary.
type DashboardSnapshot struct {
	Products              int64           `json:"products"`
	LowStockItems         int64           `json:"low_stock_items"`
	PendingPayments       int64           `json:"pending_payments"`
	PendingPaymentsAmount decimal.Decimal `json:"pending_payments_amount"`
	PendingDeliveries     int64           `json:"pending_deliveries"`
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
}
