package services

import (
	"github.com/shopspring/decimal"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
)

func validatePricing(price, cost decimal.Decimal) error {
	if !price.IsPositive() || !cost.IsPositive() {
		return apperrors.Validation("Price and cost must be positive numbers")
	}
	if price.LessThan(cost) {
		return apperrors.Validation("Warning: Price is less than cost. This will result in losses.")
	}
	return nil
}
