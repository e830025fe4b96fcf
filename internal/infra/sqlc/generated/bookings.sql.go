// source: bookings.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (id, user_id, resource_id, start_time, end_time, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, resource_id, start_time, end_time, status, created_at
`

type CreateBookingParams struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ResourceID uuid.UUID
	StartTime  pgtype.Timestamptz
	EndTime    pgtype.Timestamptz
	Status     string
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.UserID,
		arg.ResourceID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.CreatedAt,
	)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ResourceID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const getBooking = `-- name: GetBooking :one
SELECT id, user_id, resource_id, start_time, end_time, status, created_at
FROM bookings WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBooking, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ResourceID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const getBookingForUpdate = `-- name: GetBookingForUpdate :one
SELECT id, user_id, resource_id, start_time, end_time, status, created_at
FROM bookings WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingForUpdate, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ResourceID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const updateBookingStatus = `-- name: UpdateBookingStatus :execrows
UPDATE bookings SET status = $2 WHERE id = $1
`

type UpdateBookingStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateBookingSlot = `-- name: UpdateBookingSlot :execrows
UPDATE bookings SET start_time = $2, end_time = $3 WHERE id = $1 AND status = 'active'
`

type UpdateBookingSlotParams struct {
	ID        uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
}

func (q *Queries) UpdateBookingSlot(ctx context.Context, db DBTX, arg UpdateBookingSlotParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingSlot, arg.ID, arg.StartTime, arg.EndTime)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findOverlappingActiveBookings = `-- name: FindOverlappingActiveBookings :many
SELECT id, user_id, resource_id, start_time, end_time, status, created_at
FROM bookings
WHERE resource_id = $1
  AND status = 'active'
  AND start_time < $2
  AND end_time > $3
  AND ($4::uuid IS NULL OR id <> $4::uuid)
ORDER BY start_time, id
`

type FindOverlappingActiveBookingsParams struct {
	ResourceID uuid.UUID
	EndTime    pgtype.Timestamptz
	StartTime  pgtype.Timestamptz
	ExcludeID  pgtype.UUID
}

// Candidate lookup served by idx_bookings_resource_time.
func (q *Queries) FindOverlappingActiveBookings(ctx context.Context, db DBTX, arg FindOverlappingActiveBookingsParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, findOverlappingActiveBookings,
		arg.ResourceID,
		arg.EndTime,
		arg.StartTime,
		arg.ExcludeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		var i Bookings
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.ResourceID,
			&i.StartTime,
			&i.EndTime,
			&i.Status,
			&i.CreatedAt,
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

const findBookingBySlot = `-- name: FindBookingBySlot :one
SELECT id, user_id, resource_id, start_time, end_time, status, created_at
FROM bookings
WHERE resource_id = $1 AND start_time = $2 AND end_time = $3
`

type FindBookingBySlotParams struct {
	ResourceID uuid.UUID
	StartTime  pgtype.Timestamptz
	EndTime    pgtype.Timestamptz
}

func (q *Queries) FindBookingBySlot(ctx context.Context, db DBTX, arg FindBookingBySlotParams) (Bookings, error) {
	row := db.QueryRow(ctx, findBookingBySlot, arg.ResourceID, arg.StartTime, arg.EndTime)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ResourceID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const getBookingView = `-- name: GetBookingView :one
SELECT b.id, b.user_id, b.resource_id, r.name AS resource_name, b.start_time, b.end_time, b.status, b.created_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.id = $1
`

type GetBookingViewRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	Status       string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewRow, error) {
	row := db.QueryRow(ctx, getBookingView, id)
	var i GetBookingViewRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ResourceID,
		&i.ResourceName,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const listBookingsForResource = `-- name: ListBookingsForResource :many
SELECT b.id, b.user_id, b.resource_id, r.name AS resource_name, b.start_time, b.end_time, b.status, b.created_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.resource_id = $1
  AND ($2::timestamptz IS NULL OR b.end_time > $2::timestamptz)
  AND ($3::timestamptz IS NULL OR b.start_time < $3::timestamptz)
ORDER BY b.start_time, b.id
`

type ListBookingsForResourceParams struct {
	ResourceID uuid.UUID
	RangeFrom  pgtype.Timestamptz
	RangeTo    pgtype.Timestamptz
}

type ListBookingsForResourceRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	Status       string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) ListBookingsForResource(ctx context.Context, db DBTX, arg ListBookingsForResourceParams) ([]ListBookingsForResourceRow, error) {
	rows, err := db.Query(ctx, listBookingsForResource, arg.ResourceID, arg.RangeFrom, arg.RangeTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookingsForResourceRow
	for rows.Next() {
		var i ListBookingsForResourceRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.ResourceID,
			&i.ResourceName,
			&i.StartTime,
			&i.EndTime,
			&i.Status,
			&i.CreatedAt,
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

const listBookingsForUser = `-- name: ListBookingsForUser :many
SELECT b.id, b.user_id, b.resource_id, r.name AS resource_name, b.start_time, b.end_time, b.status, b.created_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
`

type ListBookingsForUserRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	Status       string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) ListBookingsForUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]ListBookingsForUserRow, error) {
	rows, err := db.Query(ctx, listBookingsForUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookingsForUserRow
	for rows.Next() {
		var i ListBookingsForUserRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.ResourceID,
			&i.ResourceName,
			&i.StartTime,
			&i.EndTime,
			&i.Status,
			&i.CreatedAt,
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
