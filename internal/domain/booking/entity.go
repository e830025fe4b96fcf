package booking

import (
	"time"

	"place-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingTime      = errs.Mark(errs.New("start and end time are required"), errs.ErrValidation)
	ErrInvalidTimeSlot  = errs.Mark(errs.New("end time must be after start time"), errs.ErrValidation)
	ErrInvalidTimeRange = errs.Mark(errs.New("range end must be after range start"), errs.ErrValidation)
	ErrInvalidStatus    = errs.Mark(errs.New("invalid booking status"), errs.ErrValidation)
	ErrMissingUser      = errs.Mark(errs.New("user id is required"), errs.ErrValidation)
	ErrMissingResource  = errs.Mark(errs.New("resource id is required"), errs.ErrValidation)
	ErrAlreadyCancelled = errs.Mark(errs.New("booking is already cancelled"), errs.ErrAlreadyCancelled)
	ErrNotOwner         = errs.Mark(errs.New("booking belongs to another user"), errs.ErrForbidden)
)

type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	resourceID uuid.UUID
	slot       TimeSlot
	status     Status
	createdAt  time.Time
}

func NewBooking(userID, resourceID uuid.UUID, slot TimeSlot, now time.Time) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if resourceID == uuid.Nil {
		return nil, ErrMissingResource
	}

	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		resourceID: resourceID,
		slot:       slot,
		status:     StatusActive,
		createdAt:  now.UTC(),
	}, nil
}

func ReconstructBooking(
	id, userID, resourceID uuid.UUID,
	start, end time.Time,
	status string,
	createdAt time.Time,
) (*Booking, error) {
	slot, err := NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}
	st, err := NewStatus(status)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         id,
		userID:     userID,
		resourceID: resourceID,
		slot:       slot,
		status:     st,
		createdAt:  createdAt.UTC(),
	}, nil
}

// Cancel flips the booking to cancelled. Only the owner, or a caller the
// auth collaborator marked as elevated, may do so. Ownership is checked
// first so a stranger cannot probe a booking's state.
func (b *Booking) Cancel(actorID uuid.UUID, elevated bool) error {
	if err := b.AuthorizeChange(actorID, elevated); err != nil {
		return err
	}
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

// AuthorizeChange allows the owner or an elevated caller.
func (b *Booking) AuthorizeChange(actorID uuid.UUID, elevated bool) error {
	if !elevated && b.userID != actorID {
		return ErrNotOwner
	}
	return nil
}

// Reschedule moves the booking in place; id and createdAt are untouched.
func (b *Booking) Reschedule(slot TimeSlot) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.slot = slot
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) ResourceID() uuid.UUID { return b.resourceID }
func (b *Booking) TimeSlot() TimeSlot    { return b.slot }
func (b *Booking) Start() time.Time      { return b.slot.Start() }
func (b *Booking) End() time.Time        { return b.slot.End() }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
