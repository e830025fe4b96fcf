package outbox

import (
	"context"
	"fmt"
	"log/slog"

	"place-booking/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=../../../tests/mock/outbox/publisher.go -package=outboxmock

type Publisher interface {
	Publish(ctx context.Context, msgs []kafka.Message) error
	Close() error
}

// KafkaPublisher writes batches synchronously so a returned nil means every
// message was acknowledged by all in-sync replicas.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Logger:       kafka.LoggerFunc(func(string, ...any) {}),
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
				slog.Error("kafka writer: " + fmt.Sprintf(msg, args...))
			}),
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msgs []kafka.Message) error {
	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
