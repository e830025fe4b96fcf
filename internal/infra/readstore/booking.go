package readstore

import (
	"context"

	"place-booking/internal/domain/booking"
	"place-booking/internal/infra"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/pkg/pgconv"
	"place-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingsForResource(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForResourceParams) ([]sqlc.ListBookingsForResourceRow, error)
	ListBookingsForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListBookingsForUserRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return toBookingView(row), nil
}

// FindByResource leaves open window bounds as NULL; the query treats them
// as unbounded.
func (r *BookingReadStore) FindByResource(ctx context.Context, resourceID uuid.UUID, window booking.TimeRange) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsForResource(ctx, r.db, sqlc.ListBookingsForResourceParams{
		ResourceID: resourceID,
		RangeFrom:  pgconv.TimePtrToPgtype(window.From),
		RangeTo:    pgconv.TimePtrToPgtype(window.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for resource", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewRow(row)))
	}
	return views, nil
}

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsForUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for user", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewRow(row)))
	}
	return views, nil
}

// The list rows share GetBookingViewRow's layout, so callers convert.
func toBookingView(row sqlc.GetBookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:           row.ID,
		UserID:       row.UserID,
		ResourceID:   row.ResourceID,
		ResourceName: row.ResourceName,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		EndTime:      pgconv.TimeFromPgtype(row.EndTime),
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
