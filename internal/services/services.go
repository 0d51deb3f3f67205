package services

import (
	"context"
	"errors"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/models"
)

// ProductCache drops cached product reads after stock changes.
type ProductCache interface {
	Invalidate(ctx context.Context, productIDs ...string)
}

// EventPublisher emits domain events. Failures are logged, never returned
// to callers.
type EventPublisher interface {
	PublishDeliveryCreated(ctx context.Context, d *models.DeliveryDetail) error
	PublishStockLow(ctx context.Context, level models.StockLevel) error
}

// DeliveryRecorder counts committed deliveries.
type DeliveryRecorder interface {
	DeliveryCreated()
}

// wrap passes typed application errors through and marks anything else as
// a store failure.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	var stockErr *apperrors.InsufficientStockError
	if errors.As(err, &stockErr) {
		return err
	}
	return apperrors.Store(err)
}
