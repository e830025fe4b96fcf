package bootstrap

import (
	"context"

	"place-booking/internal/infra/outbox"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/pkg/clock"
	"place-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// MessagingModule relays the booking event outbox to Kafka. It needs the
// Postgres store; the in-memory store keeps its events in process.
var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			NewKafkaPublisher,
			fx.As(new(outbox.Publisher)),
		),
		NewOutboxRelay,
	),
	fx.Invoke(startOutboxRelay),
)

func NewKafkaPublisher(cfg config.Config) *outbox.KafkaPublisher {
	return outbox.NewKafkaPublisher(cfg.Kafka)
}

func NewOutboxRelay(pool *pgxpool.Pool, q *sqlc.Queries, publisher outbox.Publisher, clk clock.Clock, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(pool, q, publisher, clk, cfg)
}

func startOutboxRelay(lc fx.Lifecycle, relay *outbox.Relay, publisher outbox.Publisher) {
	var (
		cancel context.CancelFunc
		done   = make(chan struct{})
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}
			return publisher.Close()
		},
	})
}
