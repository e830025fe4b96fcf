//go:build unit

package booking_test

import (
	"testing"
	"time"

	"place-booking/internal/domain/booking"
	"place-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	s, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return s
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := slot(t, builder.At(9, 0), builder.At(10, 0))

	tests := []struct {
		name  string
		other booking.TimeSlot
		want  bool
	}{
		{"touching after", slot(t, builder.At(10, 0), builder.At(11, 0)), false},
		{"touching before", slot(t, builder.At(8, 0), builder.At(9, 0)), false},
		{"partial overlap at end", slot(t, builder.At(9, 30), builder.At(10, 30)), true},
		{"partial overlap at start", slot(t, builder.At(8, 30), builder.At(9, 30)), true},
		{"identical", slot(t, builder.At(9, 0), builder.At(10, 0)), true},
		{"contained", slot(t, builder.At(9, 15), builder.At(9, 45)), true},
		{"containing", slot(t, builder.At(8, 0), builder.At(11, 0)), true},
		{"disjoint", slot(t, builder.At(12, 0), builder.At(13, 0)), false},
		{"one microsecond overlap", slot(t, builder.At(10, 0).Add(-time.Microsecond), builder.At(11, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestNewTimeSlot_Precision(t *testing.T) {
	t.Run("sub-microsecond slot collapses and is rejected", func(t *testing.T) {
		start := builder.At(9, 0).Add(100 * time.Nanosecond)
		end := builder.At(9, 0).Add(900 * time.Nanosecond)

		_, err := booking.NewTimeSlot(start, end)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("ends are truncated to microseconds in UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		start := builder.At(9, 0).Add(1500 * time.Nanosecond).In(tokyo)
		end := builder.At(10, 0).Add(999 * time.Nanosecond)

		s := slot(t, start, end)
		assert.Equal(t, builder.At(9, 0).Add(time.Microsecond), s.Start())
		assert.Equal(t, builder.At(10, 0), s.End())
		assert.Equal(t, time.UTC, s.Start().Location())
	})
}

func TestTimeSlot_Contains(t *testing.T) {
	s := slot(t, builder.At(9, 0), builder.At(10, 0))

	assert.True(t, s.Contains(builder.At(9, 0)))
	assert.True(t, s.Contains(builder.At(9, 59)))
	assert.False(t, s.Contains(builder.At(10, 0)))
	assert.False(t, s.Contains(builder.At(8, 59)))
}

func TestFindConflicts(t *testing.T) {
	resourceID := uuid.New()
	otherResource := uuid.New()

	morning, err := builder.NewBookingBuilder().WithResourceID(resourceID).WithSlot(builder.At(9, 0), builder.At(10, 0)).BuildDomain()
	require.NoError(t, err)
	late, err := builder.NewBookingBuilder().WithResourceID(resourceID).WithSlot(builder.At(10, 0), builder.At(11, 0)).BuildDomain()
	require.NoError(t, err)
	cancelled, err := builder.NewBookingBuilder().WithResourceID(resourceID).WithSlot(builder.At(12, 0), builder.At(13, 0)).AsCancelled().BuildDomain()
	require.NoError(t, err)
	elsewhere, err := builder.NewBookingBuilder().WithResourceID(otherResource).WithSlot(builder.At(9, 0), builder.At(17, 0)).BuildDomain()
	require.NoError(t, err)

	existing := []*booking.Booking{morning, late, cancelled, elsewhere}

	t.Run("touching boundary is free", func(t *testing.T) {
		assert.False(t, booking.HasConflict(existing, resourceID, slot(t, builder.At(11, 0), builder.At(12, 0)), nil))
	})

	t.Run("overlap reports the blocking booking", func(t *testing.T) {
		got := booking.FindConflicts(existing, resourceID, slot(t, builder.At(9, 30), builder.At(10, 30)), nil)
		require.Len(t, got, 2)
		assert.Equal(t, morning.ID(), got[0].ID())
		assert.Equal(t, late.ID(), got[1].ID())
	})

	t.Run("cancelled bookings are ignored", func(t *testing.T) {
		assert.False(t, booking.HasConflict(existing, resourceID, slot(t, builder.At(12, 0), builder.At(13, 0)), nil))
	})

	t.Run("other resources are ignored", func(t *testing.T) {
		assert.False(t, booking.HasConflict(existing, resourceID, slot(t, builder.At(14, 0), builder.At(15, 0)), nil))
	})

	t.Run("excluded booking does not block itself", func(t *testing.T) {
		id := morning.ID()
		assert.False(t, booking.HasConflict(existing, resourceID, slot(t, builder.At(9, 0), builder.At(9, 30)), &id))
		assert.True(t, booking.HasConflict(existing, resourceID, slot(t, builder.At(9, 30), builder.At(10, 30)), &id))
	})

	t.Run("empty ledger", func(t *testing.T) {
		assert.False(t, booking.HasConflict(nil, resourceID, slot(t, builder.At(9, 0), builder.At(10, 0)), nil))
	})
}

func TestTimeRange_Admits(t *testing.T) {
	s := slot(t, builder.At(9, 0), builder.At(10, 0))
	from, to := builder.At(10, 0), builder.At(12, 0)
	early, noon := builder.At(8, 0), builder.At(9, 0)

	open, err := booking.NewTimeRange(nil, nil)
	require.NoError(t, err)
	assert.True(t, open.Admits(s))

	after, err := booking.NewTimeRange(&from, &to)
	require.NoError(t, err)
	assert.False(t, after.Admits(s), "range starting at the slot end does not overlap")

	before, err := booking.NewTimeRange(&early, &noon)
	require.NoError(t, err)
	assert.False(t, before.Admits(s), "range ending at the slot start does not overlap")

	_, err = booking.NewTimeRange(&to, &from)
	assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
}
