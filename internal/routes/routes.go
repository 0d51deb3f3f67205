package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prudhivi99/shop-manager/internal/handlers"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Products   *handlers.ProductHandler
	Stock      *handlers.StockHandler
	Payments   *handlers.PaymentHandler
	Deliveries *handlers.DeliveryHandler
	Dashboard  *handlers.DashboardHandler
}

// Register mounts the REST API under /api plus /health
func Register(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Health.HealthCheck)

	api := r.Group("/api")

	products := api.Group("/products")
	products.GET("", h.Products.ListProducts)
	products.GET("/:id", h.Products.GetProduct)
	products.POST("", h.Products.CreateProduct)
	products.PUT("/:id", h.Products.UpdateProduct)
	products.DELETE("/:id", h.Products.DeleteProduct)

	stock := api.Group("/stock")
	stock.GET("", h.Stock.ListStock)
	stock.GET("/alerts/low", h.Stock.ListLowStock)
	stock.PUT("/:productId", h.Stock.UpdateStock)

	payments := api.Group("/payments")
	payments.GET("", h.Payments.ListPayments)
	payments.GET("/stats/summary", h.Payments.PaymentStats)
	payments.GET("/:id", h.Payments.GetPayment)
	payments.POST("", h.Payments.CreatePayment)
	payments.PUT("/:id", h.Payments.UpdatePayment)

	deliveries := api.Group("/deliveries")
	deliveries.GET("", h.Deliveries.ListDeliveries)
	deliveries.GET("/stats/summary", h.Deliveries.DeliveryStats)
	deliveries.GET("/:id", h.Deliveries.GetDelivery)
	deliveries.POST("", h.Deliveries.CreateDelivery)
	deliveries.PUT("/:id", h.Deliveries.UpdateDelivery)

	api.GET("/dashboard", h.Dashboard.GetDashboard)
}
