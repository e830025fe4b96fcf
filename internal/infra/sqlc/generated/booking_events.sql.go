// source: booking_events.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertBookingEvent = `-- name: InsertBookingEvent :exec
INSERT INTO booking_events (id, booking_id, resource_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertBookingEventParams struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	ResourceID uuid.UUID
	EventType  string
	Payload    []byte
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) InsertBookingEvent(ctx context.Context, db DBTX, arg InsertBookingEventParams) error {
	_, err := db.Exec(ctx, insertBookingEvent,
		arg.ID,
		arg.BookingID,
		arg.ResourceID,
		arg.EventType,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

const listPendingBookingEvents = `-- name: ListPendingBookingEvents :many
SELECT id, booking_id, resource_id, event_type, payload, created_at, published_at
FROM booking_events
WHERE published_at IS NULL
ORDER BY created_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED
`

func (q *Queries) ListPendingBookingEvents(ctx context.Context, db DBTX, limit int32) ([]BookingEvents, error) {
	rows, err := db.Query(ctx, listPendingBookingEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingEvents
	for rows.Next() {
		var i BookingEvents
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.ResourceID,
			&i.EventType,
			&i.Payload,
			&i.CreatedAt,
			&i.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markBookingEventsPublished = `-- name: MarkBookingEventsPublished :execrows
UPDATE booking_events SET published_at = $2 WHERE id = ANY($1::uuid[])
`

type MarkBookingEventsPublishedParams struct {
	Column1     []uuid.UUID
	PublishedAt pgtype.Timestamptz
}

func (q *Queries) MarkBookingEventsPublished(ctx context.Context, db DBTX, arg MarkBookingEventsPublishedParams) (int64, error) {
	result, err := db.Exec(ctx, markBookingEventsPublished, arg.Column1, arg.PublishedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
