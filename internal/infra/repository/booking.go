package repository

import (
	"context"

	"place-booking/internal/domain/booking"
	"place-booking/internal/infra"
	"place-booking/internal/infra/repository/converter"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

type BookingWriteQueries interface {
	LockResource(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	FindOverlappingActiveBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingActiveBookingsParams) ([]sqlc.Bookings, error)
	FindBookingBySlot(ctx context.Context, db sqlc.DBTX, arg sqlc.FindBookingBySlotParams) (sqlc.Bookings, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	UpdateBookingSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingSlotParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// LockResource takes a row lock on the resource for the rest of the
// transaction. NO KEY UPDATE serialises booking writers on the resource
// without blocking foreign-key checks from inserts that reference it.
func (r *BookingRepository) LockResource(ctx context.Context, resourceID uuid.UUID) error {
	if _, err := r.queries.LockResource(ctx, r.db, resourceID); err != nil {
		return infra.WrapRepoErr("failed to lock resource", err)
	}
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, resourceID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.FindOverlappingActiveBookings(ctx, r.db, sqlc.FindOverlappingActiveBookingsParams{
		ResourceID: resourceID,
		StartTime:  pgconv.TimeToPgtype(slot.Start()),
		EndTime:    pgconv.TimeToPgtype(slot.End()),
		ExcludeID:  pgconv.UUIDPtrToPgtype(exclude),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}
	bookings, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking rows", err)
	}
	return bookings, nil
}

func (r *BookingRepository) SlotTaken(ctx context.Context, resourceID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	_, err := r.queries.FindBookingBySlot(ctx, r.db, sqlc.FindBookingBySlotParams{
		ResourceID: resourceID,
		StartTime:  pgconv.TimeToPgtype(slot.Start()),
		EndTime:    pgconv.TimeToPgtype(slot.End()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to look up booking slot", err)
	}
	return true, nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		ID:     b.ID(),
		Status: b.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

func (r *BookingRepository) UpdateSlot(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingSlot(ctx, r.db, sqlc.UpdateBookingSlotParams{
		ID:        b.ID(),
		StartTime: pgconv.TimeToPgtype(b.Start()),
		EndTime:   pgconv.TimeToPgtype(b.End()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule booking", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "active booking not found")
	}
	return nil
}
