package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Stock struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	MaxQuantity int       `json:"max_quantity"`
	Location    *string   `json:"location"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsLow reports whether the quantity is at or below the reorder threshold.
func (s Stock) IsLow() bool {
	return s.Quantity <= s.MinQuantity
}

// StockItem is a stock row with the owning product's display fields.
type StockItem struct {
	Stock
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Category    *string         `json:"category"`
}

// Level returns the fields carried by low-stock notifications.
func (s StockItem) Level() StockLevel {
	return StockLevel{
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		MinQuantity: s.MinQuantity,
	}
}

// StockLevel is the quantity left for a product after a mutation.
type StockLevel struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}

func (l StockLevel) IsLow() bool {
	return l.Quantity <= l.MinQuantity
}

// UpdateStockRequest edits a stock row. Omitted fields keep their value.
type UpdateStockRequest struct {
	Quantity    *int    `json:"quantity"`
	MinQuantity *int    `json:"min_quantity"`
	MaxQuantity *int    `json:"max_quantity"`
	Location    *string `json:"location"`
}
