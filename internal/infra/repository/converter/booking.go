package converter

import (
	"place-booking/internal/domain/booking"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/pkg/pgconv"
	"place-booking/internal/usecase/shared"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		UserID:     b.UserID(),
		ResourceID: b.ResourceID(),
		StartTime:  pgconv.TimeToPgtype(b.Start()),
		EndTime:    pgconv.TimeToPgtype(b.End()),
		Status:     b.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		row.ResourceID,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		row.Status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func EventToInsertParams(e shared.BookingEvent) sqlc.InsertBookingEventParams {
	return sqlc.InsertBookingEventParams{
		ID:         e.ID,
		BookingID:  e.BookingID,
		ResourceID: e.ResourceID,
		EventType:  e.Type,
		Payload:    e.Payload,
		CreatedAt:  pgconv.TimeToPgtype(e.CreatedAt),
	}
}
