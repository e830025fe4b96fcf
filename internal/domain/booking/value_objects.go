package booking

import (
	"fmt"
	"time"

	"place-booking/internal/pkg/clock"
)

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot truncates both ends to storage precision before comparing
// them, so a slot shorter than that precision is rejected.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, ErrMissingTime
	}
	start = start.UTC().Truncate(clock.Precision)
	end = end.UTC().Truncate(clock.Precision)
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether the two half-open intervals share any instant.
// Slots that only touch at an endpoint do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// Contains reports whether t falls within [start, end).
func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339Nano), ts.end.Format(time.RFC3339Nano))
}

// TimeRange is an optional query window. A nil bound is open on that side.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

func NewTimeRange(from, to *time.Time) (TimeRange, error) {
	if from != nil && to != nil && !to.After(*from) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{From: from, To: to}, nil
}

// Admits reports whether slot overlaps the window.
func (r TimeRange) Admits(slot TimeSlot) bool {
	if r.To != nil && !slot.Start().Before(*r.To) {
		return false
	}
	if r.From != nil && !r.From.Before(slot.End()) {
		return false
	}
	return true
}
