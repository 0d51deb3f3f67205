package consumer

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/models"
)

// AlertRecorder counts processed low-stock alerts.
type AlertRecorder interface {
	StockLow()
}

type StockAlertConsumer struct {
	recorder AlertRecorder
	logger   *zap.Logger
}

func NewStockAlertConsumer(recorder AlertRecorder, logger *zap.Logger) *StockAlertConsumer {
	return &StockAlertConsumer{recorder: recorder, logger: logger}
}

// ProcessStockLow handles stock.low events until messages is closed
func (c *StockAlertConsumer) ProcessStockLow(messages <-chan amqp.Delivery) {
	for msg := range messages {
		c.handle(msg)
	}
	c.logger.Info("👋 Stock alert consumer stopped")
}

func (c *StockAlertConsumer) handle(msg amqp.Delivery) {
	var event models.StockLowEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil || event.ProductID == "" {
		c.logger.Error("❌ Failed to parse stock.low event", zap.Error(err), zap.ByteString("body", msg.Body))
		msg.Nack(false, false) // Don't requeue bad messages
		return
	}

	c.logger.Warn("⚠️ Low stock",
		zap.String("product_id", event.ProductID),
		zap.String("product_name", event.ProductName),
		zap.Int("quantity", event.Quantity),
		zap.Int("min_quantity", event.MinQuantity),
	)
	if c.recorder != nil {
		c.recorder.StockLow()
	}

	msg.Ack(false)
}
