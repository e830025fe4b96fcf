package booking

import "github.com/google/uuid"

// FindConflicts returns the active bookings on resourceID that overlap slot,
// skipping exclude (the booking being moved by a reschedule).
//
// This is the naive path: a linear scan over candidates, O(n) in the number
// passed in. Storage-backed callers narrow candidates first with an index on
// (resource_id, start_time, end_time) so n here is only the k rows that
// could overlap. Callers must pass candidates read inside the same
// transaction that will write the result.
func FindConflicts(candidates []*Booking, resourceID uuid.UUID, slot TimeSlot, exclude *uuid.UUID) []*Booking {
	var conflicts []*Booking
	for _, b := range candidates {
		if b.resourceID != resourceID || !b.IsActive() {
			continue
		}
		if exclude != nil && b.id == *exclude {
			continue
		}
		if b.slot.Overlaps(slot) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

func HasConflict(candidates []*Booking, resourceID uuid.UUID, slot TimeSlot, exclude *uuid.UUID) bool {
	return len(FindConflicts(candidates, resourceID, slot, exclude)) > 0
}

// SameTriple reports whether b occupies exactly (resourceID, slot),
// regardless of status.
func (b *Booking) SameTriple(resourceID uuid.UUID, slot TimeSlot) bool {
	return b.resourceID == resourceID && b.slot.Equal(slot)
}
