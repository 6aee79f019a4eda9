package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/service"
)

// Ensure KafkaPublisher implements service.CheckoutEventPublisher
var _ service.CheckoutEventPublisher = (*KafkaPublisher)(nil)

// EventType represents the type of checkout event.
type EventType string

const (
	EventTypePaymentVerified EventType = "payment.verified"
	EventTypeCartCleared     EventType = "cart.cleared"
)

// CheckoutEvent is a checkout lifecycle event. Published at most once per
// order; duplicate verification redirects are filtered upstream.
type CheckoutEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	OrderID   string    `json:"order_id"`
	Provider  string    `json:"provider,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// KafkaPublisher publishes checkout events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
	logger *zap.Logger
}

// NewKafkaPublisher creates a new Kafka-based event publisher.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.CheckoutTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		topic:  cfg.CheckoutTopic,
		logger: logger.Named("checkout-events"),
	}
}

// PublishPaymentVerified publishes a payment verified event.
func (p *KafkaPublisher) PublishPaymentVerified(ctx context.Context, orderID, provider string) error {
	return p.publish(ctx, CheckoutEvent{
		ID:        newEventID(),
		Type:      EventTypePaymentVerified,
		OrderID:   orderID,
		Provider:  provider,
		Timestamp: time.Now().UTC(),
	})
}

// PublishCartCleared publishes a cart cleared event.
func (p *KafkaPublisher) PublishCartCleared(ctx context.Context, orderID string) error {
	return p.publish(ctx, CheckoutEvent{
		ID:        newEventID(),
		Type:      EventTypeCartCleared,
		OrderID:   orderID,
		Timestamp: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, event CheckoutEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish checkout event",
			zap.String("event_type", string(event.Type)),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return err
	}

	p.logger.Debug("Checkout event published",
		zap.String("event_type", string(event.Type)),
		zap.String("order_id", event.OrderID))
	return nil
}

// Close closes the underlying Kafka writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// newEventID returns a unique, time-sortable event ID. ULIDs stay unique
// for events minted in the same instant, which the verified/cleared pair
// on a successful checkout always is.
func newEventID() string {
	return "evt_" + ulid.Make().String()
}
