package shared

import (
	"encoding/json"
	"time"

	"place-booking/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	EventBookingCreated     = "booking.created"
	EventBookingCancelled   = "booking.cancelled"
	EventBookingRescheduled = "booking.rescheduled"
)

// BookingEvent is an outbox row written in the same transaction as the
// booking change it describes.
type BookingEvent struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	ResourceID uuid.UUID
	Type       string
	Payload    []byte
	CreatedAt  time.Time
}

type bookingEventPayload struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *booking.Booking, now time.Time) (BookingEvent, error) {
	payload, err := json.Marshal(bookingEventPayload{
		BookingID:  b.ID(),
		UserID:     b.UserID(),
		ResourceID: b.ResourceID(),
		StartTime:  b.Start(),
		EndTime:    b.End(),
		Status:     b.Status().String(),
		OccurredAt: now,
	})
	if err != nil {
		return BookingEvent{}, err
	}
	return BookingEvent{
		ID:         uuid.New(),
		BookingID:  b.ID(),
		ResourceID: b.ResourceID(),
		Type:       eventType,
		Payload:    payload,
		CreatedAt:  now,
	}, nil
}
