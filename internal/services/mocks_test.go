package services_test

import (
	"context"
	"errors"

	"github.com/prudhivi99/shop-manager/internal/models"
)

// ---- product store ----

type mockProductStore struct {
	createdProduct *models.Product
	createdStock   *models.Stock
	createErr      error
	product        *models.ProductWithStock
	products       []models.ProductWithStock
	getErr         error
	updated        *models.Product
	updateErr      error
	deleteErr      error
	calls          int
}

func (m *mockProductStore) GetAll(_ context.Context) ([]models.ProductWithStock, error) {
	m.calls++
	return m.products, m.getErr
}

func (m *mockProductStore) GetByID(_ context.Context, _ string) (*models.ProductWithStock, error) {
	m.calls++
	return m.product, m.getErr
}

func (m *mockProductStore) Create(_ context.Context, p *models.Product, s *models.Stock) error {
	m.calls++
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = "p-new"
	s.ProductID = p.ID
	m.createdProduct = p
	m.createdStock = s
	return nil
}

func (m *mockProductStore) Update(_ context.Context, _ string, _ models.UpdateProductRequest) (*models.Product, error) {
	m.calls++
	return m.updated, m.updateErr
}

func (m *mockProductStore) Delete(_ context.Context, _ string) error {
	m.calls++
	return m.deleteErr
}

// ---- stock store ----

type mockStockStore struct {
	items     []models.StockItem
	item      *models.StockItem
	err       error
	updateReq *models.UpdateStockRequest
}

func (m *mockStockStore) GetAll(_ context.Context) ([]models.StockItem, error) { return m.items, m.err }

func (m *mockStockStore) GetLow(_ context.Context) ([]models.StockItem, error) { return m.items, m.err }

func (m *mockStockStore) Update(_ context.Context, _ string, req models.UpdateStockRequest) (*models.StockItem, error) {
	m.updateReq = &req
	return m.item, m.err
}

// ---- payment store ----

type mockPaymentStore struct {
	createReq *models.CreatePaymentRequest
	payment   *models.Payment
	payments  []models.Payment
	stats     *models.PaymentStats
	err       error
}

func (m *mockPaymentStore) Create(_ context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	m.createReq = &req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Payment{ID: "pay1", Amount: req.Amount, PaymentMethod: req.PaymentMethod, PaymentStatus: req.PaymentStatus}, nil
}

func (m *mockPaymentStore) GetAll(_ context.Context) ([]models.Payment, error) { return m.payments, m.err }

func (m *mockPaymentStore) GetByID(_ context.Context, _ string) (*models.Payment, error) {
	return m.payment, m.err
}

func (m *mockPaymentStore) Update(_ context.Context, _ string, _ models.UpdatePaymentRequest) (*models.Payment, error) {
	return m.payment, m.err
}

func (m *mockPaymentStore) Stats(_ context.Context) (*models.PaymentStats, error) { return m.stats, m.err }

// ---- delivery store ----

type mockDeliveryStore struct {
	createReq *models.CreateDeliveryRequest
	detail    *models.DeliveryDetail
	levels    []models.StockLevel
	delivery  *models.Delivery
	updateReq *models.UpdateDeliveryRequest
	err       error
}

func (m *mockDeliveryStore) Create(_ context.Context, req models.CreateDeliveryRequest) (*models.DeliveryDetail, []models.StockLevel, error) {
	m.createReq = &req
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.detail, m.levels, nil
}

func (m *mockDeliveryStore) GetByID(_ context.Context, _ string) (*models.DeliveryDetail, error) {
	return m.detail, m.err
}

func (m *mockDeliveryStore) GetAll(_ context.Context) ([]models.DeliverySummary, error) {
	return nil, m.err
}

func (m *mockDeliveryStore) Update(_ context.Context, _ string, req models.UpdateDeliveryRequest) (*models.Delivery, error) {
	m.updateReq = &req
	return m.delivery, m.err
}

func (m *mockDeliveryStore) Stats(_ context.Context) (*models.DeliveryStats, error) {
	return &models.DeliveryStats{}, m.err
}

// ---- collaborators ----

type mockCache struct {
	invalidated [][]string
}

func (m *mockCache) Invalidate(_ context.Context, productIDs ...string) {
	m.invalidated = append(m.invalidated, productIDs)
}

type mockPublisher struct {
	deliveries []*models.DeliveryDetail
	lows       []models.StockLevel
	failWith   error
}

func (m *mockPublisher) PublishDeliveryCreated(_ context.Context, d *models.DeliveryDetail) error {
	m.deliveries = append(m.deliveries, d)
	return m.failWith
}

func (m *mockPublisher) PublishStockLow(_ context.Context, level models.StockLevel) error {
	m.lows = append(m.lows, level)
	return m.failWith
}

type mockRecorder struct{ deliveries int }

func (m *mockRecorder) DeliveryCreated() { m.deliveries++ }

var errStore = errors.New("pq: connection reset by peer")

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
