package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
	"github.com/prudhivi99/shop-manager/internal/models"
)

const dateLayout = "2006-01-02"

type DeliveryStore interface {
	Create(ctx context.Context, req models.CreateDeliveryRequest) (*models.DeliveryDetail, []models.StockLevel, error)
	GetByID(ctx context.Context, id string) (*models.DeliveryDetail, error)
	GetAll(ctx context.Context) ([]models.DeliverySummary, error)
	Update(ctx context.Context, id string, req models.UpdateDeliveryRequest) (*models.Delivery, error)
	Stats(ctx context.Context) (*models.DeliveryStats, error)
}

type DeliveryService struct {
	store     DeliveryStore
	cache     ProductCache
	publisher EventPublisher
	recorder  DeliveryRecorder
	logger    *zap.Logger
}

// NewDeliveryService wires the delivery workflow. cache and recorder may be nil.
func NewDeliveryService(
	store DeliveryStore,
	cache ProductCache,
	publisher EventPublisher,
	recorder DeliveryRecorder,
	logger *zap.Logger,
) *DeliveryService {
	return &DeliveryService{
		store:     store,
		cache:     cache,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
	}
}

// Create books a delivery and takes its items out of stock. Either every
// item is applied or none is.
func (s *DeliveryService) Create(ctx context.Context, req models.CreateDeliveryRequest) (*models.DeliveryDetail, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerAddress = strings.TrimSpace(req.CustomerAddress)
	if req.CustomerName == "" || req.CustomerAddress == "" || len(req.Items) == 0 {
		return nil, apperrors.Validation("Customer name, address, and items are required")
	}
	for i, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return nil, apperrors.Validation("Item %d is missing a product", i+1)
		}
		if item.Quantity <= 0 {
			return nil, apperrors.Validation("Quantity for product %s must be a positive number", item.ProductID)
		}
	}
	date, err := normalizeDate(req.DeliveryDate)
	if err != nil {
		return nil, err
	}
	req.DeliveryDate = date

	detail, levels, err := s.store.Create(ctx, req)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindStore {
			s.logger.Error("❌ Failed to create delivery", zap.Error(err))
		}
		return nil, wrap(err)
	}

	productIDs := make([]string, 0, len(detail.Items))
	for _, item := range detail.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, productIDs...)
	}
	if s.recorder != nil {
		s.recorder.DeliveryCreated()
	}

	s.logger.Info("🚚 Delivery created",
		zap.String("delivery_id", detail.ID),
		zap.String("customer", detail.CustomerName),
		zap.Int("items", len(detail.Items)),
	)

	if err := s.publisher.PublishDeliveryCreated(ctx, detail); err != nil {
		s.logger.Warn("⚠️ Failed to publish delivery.created", zap.String("delivery_id", detail.ID), zap.Error(err))
	}
	for _, level := range levels {
		if level.IsLow() {
			notifyLow(ctx, s.publisher, s.logger, level)
		}
	}

	return detail, nil
}

func (s *DeliveryService) Get(ctx context.Context, id string) (*models.DeliveryDetail, error) {
	d, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err)
	}
	return d, nil
}

func (s *DeliveryService) List(ctx context.Context) ([]models.DeliverySummary, error) {
	deliveries, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return deliveries, nil
}

// Update moves a delivery along its lifecycle and edits tracking details
func (s *DeliveryService) Update(ctx context.Context, id string, req models.UpdateDeliveryRequest) (*models.Delivery, error) {
	if req.DeliveryStatus != nil && !req.DeliveryStatus.Valid() {
		return nil, apperrors.Validation("Invalid delivery status: %s", *req.DeliveryStatus)
	}
	date, err := normalizeDate(req.DeliveryDate)
	if err != nil {
		return nil, err
	}
	req.DeliveryDate = date

	d, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, wrap(err)
	}

	s.logger.Info("✏️ Delivery updated", zap.String("delivery_id", id), zap.String("status", string(d.DeliveryStatus)))
	return d, nil
}

func (s *DeliveryService) Stats(ctx context.Context) (*models.DeliveryStats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return stats, nil
}

// normalizeDate treats a blank date as absent and rejects anything but YYYY-MM-DD.
func normalizeDate(date *string) (*string, error) {
	if date == nil || strings.TrimSpace(*date) == "" {
		return nil, nil
	}
	if _, err := time.Parse(dateLayout, *date); err != nil {
		return nil, apperrors.Validation("Invalid delivery date %q, expected YYYY-MM-DD", *date)
	}
	return date, nil
}
