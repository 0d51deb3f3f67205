package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied to the stock row created alongside a product.
const (
	DefaultMinQuantity = 10
	DefaultMaxQuantity = 1000
	DefaultLocation    = "Main Warehouse"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Category    *string         `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductWithStock is a product joined with its stock row. The stock fields
// are nil when the product has no stock record.
type ProductWithStock struct {
	Product
	StockQuantity *int    `json:"stock_quantity"`
	MinQuantity   *int    `json:"min_quantity"`
	MaxQuantity   *int    `json:"max_quantity,omitempty"`
	Location      *string `json:"location"`
}

type CreateProductRequest struct {
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Category     *string         `json:"category"`
	InitialStock *int            `json:"initial_stock"`
	MinQuantity  *int            `json:"min_quantity"`
	Location     *string         `json:"location"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Category    *string         `json:"category"`
}
