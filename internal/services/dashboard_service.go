package services

import (
	"context"

	"github.com/prudhivi99/shop-manager/internal/models"
)

type DashboardStore interface {
	Snapshot(ctx context.Context) (*models.DashboardSnapshot, error)
}

// DashboardService reads live cross-entity figures. Nothing is cached.
type DashboardService struct {
	store DashboardStore
}

func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) Snapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return snapshot, nil
}
