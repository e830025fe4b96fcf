package shared

import (
	"context"

	"place-booking/internal/domain/booking"
	"place-booking/internal/domain/taxonomy"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: write transaction bounded by the booking timeout. fn may run
	// more than once when the store rejects the first attempt with an
	// exclusion or serialization failure, so it must not leak side effects.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction. Nothing written
// through them is visible to others until Within returns nil.
type Tx interface {
	Bookings() BookingRepository
	Taxonomy() TaxonomyRepository
	Events() EventRepository
}

type BookingRepository interface {
	// LockResource takes the resource-scoped exclusive lock held until the
	// transaction ends. Returns a not-found repository error if absent.
	LockResource(ctx context.Context, resourceID uuid.UUID) error
	// FindOverlapping returns active bookings on resourceID whose interval
	// may overlap slot, excluding exclude when set.
	FindOverlapping(ctx context.Context, resourceID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) ([]*booking.Booking, error)
	// SlotTaken reports whether any booking, in any status, already holds
	// exactly this (resource, start, end) triple.
	SlotTaken(ctx context.Context, resourceID uuid.UUID, slot booking.TimeSlot) (bool, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	UpdateSlot(ctx context.Context, b *booking.Booking) error
}

type TaxonomyRepository interface {
	CreateLocation(ctx context.Context, l *taxonomy.Location) error
	CreateResourceType(ctx context.Context, t *taxonomy.ResourceType) error
	CreateResource(ctx context.Context, r *taxonomy.Resource) error
	CreateTag(ctx context.Context, t *taxonomy.Tag) error
	GetResource(ctx context.Context, id uuid.UUID) (*taxonomy.Resource, error)
	GetTag(ctx context.Context, id uuid.UUID) (*taxonomy.Tag, error)
	// AttachTag reports whether a new link was written.
	AttachTag(ctx context.Context, resourceID, tagID uuid.UUID) (bool, error)
}

type EventRepository interface {
	Append(ctx context.Context, event BookingEvent) error
}
