package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"place-booking/internal/infra"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/pkg/clock"
	"place-booking/internal/pkg/config"
	"place-booking/internal/pkg/errs"
	"place-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=relay.go -destination=../../../tests/mock/outbox/relay.go -package=outboxmock

const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

type PendingEventQueries interface {
	ListPendingBookingEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.BookingEvents, error)
	MarkBookingEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingEventsPublishedParams) (int64, error)
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Relay drains booking_events to Kafka. Rows are claimed with SKIP LOCKED,
// so several relays may run against one database; delivery is at least once.
type Relay struct {
	db        TxBeginner
	queries   PendingEventQueries
	publisher Publisher
	clock     clock.Clock
	cfg       config.KafkaConfig
}

func NewRelay(db TxBeginner, queries PendingEventQueries, publisher Publisher, clk clock.Clock, cfg config.Config) *Relay {
	return &Relay{
		db:        db,
		queries:   queries,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg.Kafka,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for {
				n, err := r.RunOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						slog.Warn("booking outbox relay failed", "error", err.Error())
					}
					break
				}
				// A full batch suggests a backlog; keep draining without waiting.
				if n < int(r.cfg.BatchSize) {
					break
				}
			}
		}
	}
}

// RunOnce publishes one batch inside its own transaction and reports how many
// events were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to begin outbox transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("outbox rollback failed", "error", rbErr.Error())
		}
	}()

	n, err := r.PublishPending(ctx, tx)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit outbox batch", err)
	}
	if n > 0 {
		slog.Debug("booking events published", "count", n)
	}
	return n, nil
}

// PublishPending sends the oldest unpublished events and marks them sent
// using db, which must be the transaction that claimed them.
func (r *Relay) PublishPending(ctx context.Context, db sqlc.DBTX) (int, error) {
	rows, err := r.queries.ListPendingBookingEvents(ctx, db, r.cfg.BatchSize)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to list pending booking events", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	msgs := make([]kafka.Message, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, toMessage(row))
		ids = append(ids, row.ID)
	}

	if err := r.publisher.Publish(ctx, msgs); err != nil {
		return 0, errs.Wrap(err, "failed to publish booking events")
	}

	_, err = r.queries.MarkBookingEventsPublished(ctx, db, sqlc.MarkBookingEventsPublishedParams{
		Column1:     ids,
		PublishedAt: pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark booking events published", err)
	}
	return len(rows), nil
}

// Keyed by resource so every event for one resource lands on one partition in order.
func toMessage(row sqlc.BookingEvents) kafka.Message {
	return kafka.Message{
		Key:   []byte(row.ResourceID.String()),
		Value: row.Payload,
		Time:  pgconv.TimeFromPgtype(row.CreatedAt),
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(row.EventType)},
			{Key: HeaderEventID, Value: []byte(row.ID.String())},
		},
	}
}
