package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prudhivi99/shop-manager/internal/models"
)

const (
	DeliveryCreatedQueue = "delivery.created"
	StockLowQueue        = "stock.low"
)

// Broker is the part of messaging.RabbitMQ the publisher needs.
type Broker interface {
	DeclareQueue(name string) error
	Publish(ctx context.Context, queue string, body []byte) error
}

type EventPublisher struct {
	broker Broker
}

func NewEventPublisher(broker Broker) (*EventPublisher, error) {
	for _, queue := range []string{DeliveryCreatedQueue, StockLowQueue} {
		if err := broker.DeclareQueue(queue); err != nil {
			return nil, err
		}
	}

	return &EventPublisher{broker: broker}, nil
}

// PublishDeliveryCreated publishes a delivery.created event
func (p *EventPublisher) PublishDeliveryCreated(ctx context.Context, d *models.DeliveryDetail) error {
	event := models.DeliveryCreatedEvent{
		DeliveryID:   d.ID,
		OrderID:      d.OrderID,
		CustomerName: d.CustomerName,
		Items:        make([]models.DeliveryItemEvent, 0, len(d.Items)),
	}
	for _, item := range d.Items {
		event.Items = append(event.Items, models.DeliveryItemEvent{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return p.publish(ctx, DeliveryCreatedQueue, event)
}

// PublishStockLow publishes a stock.low event
func (p *EventPublisher) PublishStockLow(ctx context.Context, level models.StockLevel) error {
	return p.publish(ctx, StockLowQueue, models.StockLowEvent{
		ProductID:   level.ProductID,
		ProductName: level.ProductName,
		Quantity:    level.Quantity,
		MinQuantity: level.MinQuantity,
	})
}

func (p *EventPublisher) publish(ctx context.Context, queue string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.broker.Publish(ctx, queue, data)
}

// NopPublisher drops every event. Used when RabbitMQ is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishDeliveryCreated(context.Context, *models.DeliveryDetail) error { return nil }

func (NopPublisher) PublishStockLow(context.Context, models.StockLevel) error { return nil }
