package commands

import (
	"context"

	"place-booking/internal/domain/booking"
	"place-booking/internal/pkg/errs"
	"place-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotOverlaps = errs.Mark(errs.New("requested slot overlaps an active booking"), errs.ErrConflict)
	ErrSlotTaken    = errs.Mark(errs.New("a booking for this exact slot already exists"), errs.ErrConflict)
)

// ConflictChecker decides whether a candidate slot collides with the ledger.
// It reads through the caller's transaction, never a cache, so its answer
// is only meaningful while the resource lock taken by that transaction is
// held.
type ConflictChecker struct{}

func NewConflictChecker() *ConflictChecker {
	return &ConflictChecker{}
}

func (c *ConflictChecker) HasConflict(
	ctx context.Context,
	repo shared.BookingRepository,
	resourceID uuid.UUID,
	slot booking.TimeSlot,
	exclude *uuid.UUID,
) (bool, error) {
	candidates, err := repo.FindOverlapping(ctx, resourceID, slot, exclude)
	if err != nil {
		return false, err
	}
	return booking.HasConflict(candidates, resourceID, slot, exclude), nil
}

// Check returns ErrSlotTaken or ErrSlotOverlaps, both conflict kinds, when
// slot cannot be granted.
func (c *ConflictChecker) Check(
	ctx context.Context,
	repo shared.BookingRepository,
	resourceID uuid.UUID,
	slot booking.TimeSlot,
	exclude *uuid.UUID,
) error {
	taken, err := repo.SlotTaken(ctx, resourceID, slot)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlotTaken
	}

	conflict, err := c.HasConflict(ctx, repo, resourceID, slot, exclude)
	if err != nil {
		return err
	}
	if conflict {
		return ErrSlotOverlaps
	}
	return nil
}
