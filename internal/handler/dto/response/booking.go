package response

import (
	"place-booking/internal/domain/booking"
	"place-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name,omitempty"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	mustCopy(&res, v)
	return &res
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

// FromBooking renders a command result. The resource name is not known at
// that point and is left out.
func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID().String(),
		UserID:     b.UserID().String(),
		ResourceID: b.ResourceID().String(),
		StartTime:  formatTime(b.Start()),
		EndTime:    formatTime(b.End()),
		Status:     b.Status().String(),
		CreatedAt:  formatTime(b.CreatedAt()),
	}
}
