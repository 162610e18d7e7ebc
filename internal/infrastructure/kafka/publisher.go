// Package kafka publishes unit lifecycle events. Consumers (the
// storefront cache, the notification worker) react to status changes
// without polling the database.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/edievo/edsis-api/internal/application/usecase"
	"github.com/edievo/edsis-api/internal/domain/entity"
)

var _ usecase.EventPublisher = (*Publisher)(nil)

// UnitEvent is the wire envelope for one lifecycle event.
type UnitEvent struct {
	Type       string    `json:"type"`
	UnitID     string    `json:"unit_id"`
	ProductID  string    `json:"product_id"`
	SerialCode string    `json:"serial_code"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	At         time.Time `json:"at"`
}

// Publisher writes unit events to one topic, keyed by unit ID so every
// unit's events stay ordered within a partition.
type Publisher struct {
	w   *kafka.Writer
	log zerolog.Logger
}

// NewPublisher builds the publisher.
func NewPublisher(brokers []string, topic string, log zerolog.Logger) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		log: log,
	}
}

// PublishUnitEvent emits one event. Failures are logged here; callers
// treat the event as best effort since the state change already
// committed.
func (p *Publisher) PublishUnitEvent(ctx context.Context, eventType string, unit *entity.InventoryUnit) error {
	event := UnitEvent{
		Type:       eventType,
		UnitID:     unit.ID,
		ProductID:  unit.ProductID,
		SerialCode: unit.SerialCode,
		Status:     string(unit.Status),
		Location:   unit.CurrentLocation,
		At:         time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(unit.ID),
		Value: payload,
		Time:  event.At,
	})
	if err != nil {
		p.log.Error().Err(err).Str("event", eventType).Str("unit_id", unit.ID).Msg("publish unit event failed")
		return err
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error { return p.w.Close() }
