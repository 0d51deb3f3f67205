package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
)

var deliveryStatusRank = map[DeliveryStatus]int{
	DeliveryPending:   0,
	DeliveryInTransit: 1,
	DeliveryDelivered: 2,
}

func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryStatusRank[s]
	return ok
}

// CanTransitionTo reports whether a delivery may move from s to next.
// Status only moves forward; staying in place is allowed.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	from, ok := deliveryStatusRank[s]
	if !ok {
		return next.Valid()
	}
	to, ok := deliveryStatusRank[next]
	return ok && to >= from
}

type Delivery struct {
	ID              string         `json:"id"`
	OrderID         *string        `json:"order_id"`
	CustomerName    string         `json:"customer_name"`
	CustomerAddress string         `json:"customer_address"`
	CustomerPhone   *string        `json:"customer_phone"`
	DeliveryStatus  DeliveryStatus `json:"delivery_status"`
	DeliveryDate    *string        `json:"delivery_date"`
	TrackingNumber  *string        `json:"tracking_number"`
	Notes           *string        `json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type DeliveryItem struct {
	ID          string          `json:"id"`
	DeliveryID  string          `json:"delivery_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// DeliveryDetail is a delivery with its line items.
type DeliveryDetail struct {
	Delivery
	Items []DeliveryItem `json:"items"`
}

// DeliverySummary is a delivery listing row. Items reads like
// "Widget (x2), Gadget (x1)" and is nil for a delivery with no lines.
type DeliverySummary struct {
	Delivery
	Items *string `json:"items"`
}

type CreateDeliveryRequest struct {
	OrderID         *string               `json:"order_id"`
	CustomerName    string                `json:"customer_name"`
	CustomerAddress string                `json:"customer_address"`
	CustomerPhone   *string               `json:"customer_phone"`
	DeliveryDate    *string               `json:"delivery_date"`
	TrackingNumber  *string               `json:"tracking_number"`
	Notes           *string               `json:"notes"`
	Items           []DeliveryItemRequest `json:"items"`
}

type DeliveryItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateDeliveryRequest is a patch: nil fields keep their stored value.
type UpdateDeliveryRequest struct {
	DeliveryStatus *DeliveryStatus `json:"delivery_status"`
	DeliveryDate   *string         `json:"delivery_date"`
	TrackingNumber *string         `json:"tracking_number"`
	Notes          *string         `json:"notes"`
}

type DeliveryStats struct {
	TotalDeliveries     int64 `json:"total_deliveries"`
	PendingDeliveries   int64 `json:"pending_deliveries"`
	InTransit           int64 `json:"in_transit"`
	CompletedDeliveries int64 `json:"completed_deliveries"`
}
