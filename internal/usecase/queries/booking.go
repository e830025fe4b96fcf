package queries

import (
	"context"
	"time"

	"place-booking/internal/domain/booking"
	"place-booking/internal/infra"
	"place-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

var ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListBookingsForResource orders by start time ascending. With a range,
	// only bookings overlapping it are returned; cancelled ones included.
	ListBookingsForResource(ctx context.Context, resourceID uuid.UUID, from, to *time.Time) ([]*BookingView, error)
	// ListBookingsForUser orders by creation time, most recent first.
	ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByResource(ctx context.Context, resourceID uuid.UUID, window booking.TimeRange) ([]*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithSecondary(ErrBookingNotFound, err)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBookingsForResource(ctx context.Context, resourceID uuid.UUID, from, to *time.Time) ([]*BookingView, error) {
	window, err := booking.NewTimeRange(from, to)
	if err != nil {
		return nil, err
	}
	return q.repo.FindByResource(ctx, resourceID, window)
}

func (q *bookingQueriesImpl) ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByUser(ctx, userID)
}
