package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prudhivi99/shop-manager/internal/models"
)

type StockService interface {
	List(ctx context.Context) ([]models.StockItem, error)
	ListLow(ctx context.Context) ([]models.StockItem, error)
	Update(ctx context.Context, productID string, req models.UpdateStockRequest) (*models.StockItem, error)
}

type StockHandler struct {
	service StockService
}

func NewStockHandler(service StockService) *StockHandler {
	return &StockHandler{service: service}
}

func (h *StockHandler) ListStock(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListLowStock returns rows at or below their reorder threshold
func (h *StockHandler) ListLowStock(c *gin.Context) {
	items, err := h.service.ListLow(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *StockHandler) UpdateStock(c *gin.Context) {
	var req models.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("productId"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
