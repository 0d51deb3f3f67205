package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prudhivi99/shop-manager/internal/models"
)

type DeliveryService interface {
	Create(ctx context.Context, req models.CreateDeliveryRequest) (*models.DeliveryDetail, error)
	Get(ctx context.Context, id string) (*models.DeliveryDetail, error)
	List(ctx context.Context) ([]models.DeliverySummary, error)
	Update(ctx context.Context, id string, req models.UpdateDeliveryRequest) (*models.Delivery, error)
	Stats(ctx context.Context) (*models.DeliveryStats, error)
}

type DeliveryHandler struct {
	service DeliveryService
}

func NewDeliveryHandler(service DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{service: service}
}

// ListDeliveries returns deliveries with an item summary
func (h *DeliveryHandler) ListDeliveries(c *gin.Context) {
	deliveries, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, deliveries)
}

// GetDelivery returns a delivery with its items
func (h *DeliveryHandler) GetDelivery(c *gin.Context) {
	delivery, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, delivery)
}

// CreateDelivery books a delivery and takes its items out of stock
func (h *DeliveryHandler) CreateDelivery(c *gin.Context) {
	var req models.CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	delivery, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, delivery)
}

func (h *DeliveryHandler) UpdateDelivery(c *gin.Context) {
	var req models.UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	delivery, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, delivery)
}

func (h *DeliveryHandler) DeliveryStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
