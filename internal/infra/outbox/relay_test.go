//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"testing"

	"place-booking/internal/infra"
	"place-booking/internal/infra/outbox"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/pkg/clock"
	"place-booking/internal/pkg/config"
	"place-booking/internal/pkg/pgconv"
	"place-booking/tests/common/builder"
	outboxmock "place-booking/tests/mock/outbox"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errBrokerDown = errors.New("broker unavailable")

type relayFixture struct {
	queries   *outboxmock.MockPendingEventQueries
	publisher *outboxmock.MockPublisher
	beginner  *outboxmock.MockTxBeginner
	clock     *clock.MockClock
	relay     *outbox.Relay
}

func newRelayFixture(t *testing.T) *relayFixture {
	ctrl := gomock.NewController(t)
	f := &relayFixture{
		queries:   outboxmock.NewMockPendingEventQueries(ctrl),
		publisher: outboxmock.NewMockPublisher(ctrl),
		beginner:  outboxmock.NewMockTxBeginner(ctrl),
		clock:     clock.NewMockClock(builder.At(12, 0)),
	}
	cfg := config.NewTestConfig()
	cfg.Kafka.BatchSize = 50
	f.relay = outbox.NewRelay(f.beginner, f.queries, f.publisher, f.clock, cfg)
	return f
}

func pendingEvent(resourceID uuid.UUID, eventType string) sqlc.BookingEvents {
	return sqlc.BookingEvents{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		ResourceID: resourceID,
		EventType:  eventType,
		Payload:    []byte(`{"status":"active"}`),
		CreatedAt:  pgconv.TimeToPgtype(builder.At(11, 0)),
	}
}

func TestRelay_PublishPending(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	t.Run("success: events published keyed by resource and marked", func(t *testing.T) {
		f := newRelayFixture(t)
		rows := []sqlc.BookingEvents{
			pendingEvent(resourceID, "booking.created"),
			pendingEvent(resourceID, "booking.cancelled"),
		}

		f.queries.EXPECT().ListPendingBookingEvents(ctx, nil, int32(50)).Return(rows, nil)
		f.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs []kafka.Message) error {
				require.Len(t, msgs, 2)
				for i, msg := range msgs {
					assert.Equal(t, resourceID.String(), string(msg.Key))
					assert.Equal(t, rows[i].Payload, msg.Value)
					assert.Equal(t, builder.At(11, 0), msg.Time.UTC())
					assert.Contains(t, msg.Headers, kafka.Header{Key: outbox.HeaderEventType, Value: []byte(rows[i].EventType)})
				}
				return nil
			})
		f.queries.EXPECT().MarkBookingEventsPublished(ctx, nil, sqlc.MarkBookingEventsPublishedParams{
			Column1:     []uuid.UUID{rows[0].ID, rows[1].ID},
			PublishedAt: pgconv.TimeToPgtype(builder.At(12, 0)),
		}).Return(int64(2), nil)

		n, err := f.relay.PublishPending(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("success: nothing pending publishes nothing", func(t *testing.T) {
		f := newRelayFixture(t)
		f.queries.EXPECT().ListPendingBookingEvents(ctx, nil, int32(50)).Return(nil, nil)

		n, err := f.relay.PublishPending(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("error: broker failure leaves events pending", func(t *testing.T) {
		f := newRelayFixture(t)
		f.queries.EXPECT().ListPendingBookingEvents(ctx, nil, int32(50)).
			Return([]sqlc.BookingEvents{pendingEvent(resourceID, "booking.created")}, nil)
		f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errBrokerDown)

		n, err := f.relay.PublishPending(ctx, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errBrokerDown)
		assert.Zero(t, n)
	})

	t.Run("error: listing failure is classified", func(t *testing.T) {
		f := newRelayFixture(t)
		f.queries.EXPECT().ListPendingBookingEvents(ctx, nil, int32(50)).
			Return(nil, &pgconn.PgError{Code: "40P01"})

		_, err := f.relay.PublishPending(ctx, nil)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRetryable))
	})
}

func TestRelay_RunOnce_BeginFailure(t *testing.T) {
	ctx := context.Background()
	f := newRelayFixture(t)
	f.beginner.EXPECT().Begin(ctx).Return(nil, errBrokerDown)

	n, err := f.relay.RunOnce(ctx)
	require.Error(t, err)
	assert.Zero(t, n)
}
