//go:build unit || e2e

package builder

import (
	"time"

	"place-booking/internal/domain/booking"
	reqdto "place-booking/internal/handler/dto/request"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Day is the calendar date every builder time falls on.
var Day = time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)

// At returns h:m on Day in UTC.
func At(h, m int) time.Time {
	return Day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type BookingBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	Start        time.Time
	End          time.Time
	Status       booking.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "Room A",
		Start:        At(9, 0),
		End:          At(10, 0),
		Status:       booking.StatusActive,
		CreatedAt:    At(8, 0),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain goes through NewBooking for active bookings so input checks
// apply; cancelled ones are reconstructed with the builder's ID.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	if b.Status != booking.StatusActive {
		return booking.ReconstructBooking(b.ID, b.UserID, b.ResourceID, b.Start, b.End, b.Status.String(), b.CreatedAt)
	}
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.UserID, b.ResourceID, slot, b.CreatedAt)
}

// MustReconstruct keeps the builder's ID, for tests that need a known one.
func (b *BookingBuilder) MustReconstruct() *booking.Booking {
	bk, err := booking.ReconstructBooking(b.ID, b.UserID, b.ResourceID, b.Start, b.End, b.Status.String(), b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:         b.ID,
		UserID:     b.UserID,
		ResourceID: b.ResourceID,
		StartTime:  pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:    pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:     b.Status.String(),
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewRow {
	return sqlc.GetBookingViewRow{
		ID:           b.ID,
		UserID:       b.UserID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		StartTime:    pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:      pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:       b.Status.String(),
		CreatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		UserID:       b.UserID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		StartTime:    b.Start,
		EndTime:      b.End,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		StartTime:  b.Start,
		EndTime:    b.End,
	}
}

func (b *BookingBuilder) BuildRescheduleRequestDTO() reqdto.RescheduleBookingRequest {
	return reqdto.RescheduleBookingRequest{
		StartTime: b.Start,
		EndTime:   b.End,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithResourceID(resourceID uuid.UUID) *BookingBuilder {
	b.ResourceID = resourceID
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}
