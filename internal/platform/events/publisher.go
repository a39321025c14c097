package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// AlertPublisher sends raised fraud alerts to downstream consumers.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert domain.FraudAlert) error
	Close() error
}

// NewAlertPublisher returns the Kafka publisher when brokers are configured
// and a no-op publisher otherwise.
func NewAlertPublisher(brokers []string, topic string) AlertPublisher {
	if len(brokers) == 0 {
		return NoopAlertPublisher{}
	}
	return NewKafkaAlertPublisher(brokers, topic)
}

// KafkaAlertPublisher writes fraud alerts to a Kafka topic as JSON messages.
type KafkaAlertPublisher struct {
	writer *kafka.Writer
}

func NewKafkaAlertPublisher(brokers []string, topic string) *KafkaAlertPublisher {
	return &KafkaAlertPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaAlertPublisher) PublishAlert(ctx context.Context, alert domain.FraudAlert) error {
	msg, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(alert.AlertID),
		Value: msg,
		Time:  alert.CreatedAt,
	})
}

func (p *KafkaAlertPublisher) Close() error {
	return p.writer.Close()
}

// NoopAlertPublisher drops alerts. Used when no broker is configured.
type NoopAlertPublisher struct{}

func (NoopAlertPublisher) PublishAlert(ctx context.Context, alert domain.FraudAlert) error {
	return nil
}

func (NoopAlertPublisher) Close() error {
	return nil
}
