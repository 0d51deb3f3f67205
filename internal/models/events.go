package models

// DeliveryCreatedEvent is published after a delivery commits
type DeliveryCreatedEvent struct {
	DeliveryID   string              `json:"delivery_id"`
	OrderID      *string             `json:"order_id"`
	CustomerName string              `json:"customer_name"`
	Items        []DeliveryItemEvent `json:"items"`
}

type DeliveryItemEvent struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// StockLowEvent is published when a product drops to or below its reorder threshold
type StockLowEvent struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}
