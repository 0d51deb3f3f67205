package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/models"
)

type PaymentStore interface {
	Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error)
	GetAll(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	Update(ctx context.Context, id string, req models.UpdatePaymentRequest) (*models.Payment, error)
	Stats(ctx context.Context) (*models.PaymentStats, error)
}

type PaymentService struct {
	store  PaymentStore
	logger *zap.Logger
}

func NewPaymentService(store PaymentStore, logger *zap.Logger) *PaymentService {
	return &PaymentService{store: store, logger: logger}
}

// Create records a payment. Status defaults to pending.
func (s *PaymentService) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	req.PaymentMethod = strings.TrimSpace(req.PaymentMethod)
	if req.Amount.IsZero() || req.PaymentMethod == "" {
		return nil, apperrors.Validation("Amount and payment method are required")
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.Validation("Amount must be a positive number")
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = models.PaymentPending
	}
	if !req.PaymentStatus.Valid() {
		return nil, apperrors.Validation("Invalid payment status: %s", req.PaymentStatus)
	}

	p, err := s.store.Create(ctx, req)
	if err != nil {
		s.logger.Error("❌ Failed to create payment", zap.Error(err))
		return nil, wrap(err)
	}

	s.logger.Info("💰 Payment recorded",
		zap.String("payment_id", p.ID),
		zap.String("amount", p.Amount.StringFixed(2)),
		zap.String("status", string(p.PaymentStatus)),
	)
	return p, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err)
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return payments, nil
}

// Update patches a payment. Omitted fields keep their value.
func (s *PaymentService) Update(ctx context.Context, id string, req models.UpdatePaymentRequest) (*models.Payment, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, apperrors.Validation("Amount must be a positive number")
	}
	if req.PaymentMethod != nil && strings.TrimSpace(*req.PaymentMethod) == "" {
		return nil, apperrors.Validation("Payment method cannot be empty")
	}
	if req.PaymentStatus != nil && !req.PaymentStatus.Valid() {
		return nil, apperrors.Validation("Invalid payment status: %s", *req.PaymentStatus)
	}

	p, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, wrap(err)
	}

	s.logger.Info("✏️ Payment updated", zap.String("payment_id", id), zap.String("status", string(p.PaymentStatus)))
	return p, nil
}

func (s *PaymentService) Stats(ctx context.Context) (*models.PaymentStats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return stats, nil
}
