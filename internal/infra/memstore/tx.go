package memstore

import (
	"context"

	"place-booking/internal/domain/booking"
	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/infra"
	"place-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	store *Store
	ops   []op
	held  []lockKey
}

func (t *memTx) Bookings() shared.BookingRepository   { return (*txBookings)(t) }
func (t *memTx) Taxonomy() shared.TaxonomyRepository { return (*txTaxonomy)(t) }
func (t *memTx) Events() shared.EventRepository      { return (*txEvents)(t) }

func (t *memTx) lock(ctx context.Context, key lockKey) error {
	for _, k := range t.held {
		if k == key {
			return nil
		}
	}
	if err := t.store.locks.acquire(ctx, key); err != nil {
		return infra.WrapRepoErr("failed to acquire lock", err)
	}
	t.held = append(t.held, key)
	return nil
}

func (t *memTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.store.locks.release(t.held[i])
	}
	t.held = nil
}

// stage checks o against committed state so constraint failures surface at
// the call that caused them, then queues it for commit.
func (t *memTx) stage(o op) error {
	t.store.mu.RLock()
	err := o.check(t.store)
	t.store.mu.RUnlock()
	if err != nil {
		return err
	}
	t.ops = append(t.ops, o)
	return nil
}

type txBookings memTx

func (r *txBookings) tx() *memTx { return (*memTx)(r) }

func (r *txBookings) LockResource(ctx context.Context, resourceID uuid.UUID) error {
	s := r.store
	s.mu.RLock()
	_, ok := s.resources[resourceID]
	s.mu.RUnlock()
	if !ok {
		return notFound("resource not found")
	}
	return r.tx().lock(ctx, lockKey{scope: scopeResource, id: resourceID})
}

func (r *txBookings) FindOverlapping(_ context.Context, resourceID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) ([]*booking.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.overlapping(resourceID, slot.Start(), slot.End(), exclude)
	out := make([]*booking.Booking, 0, len(idx))
	for _, i := range idx {
		b, err := s.toBooking(s.arena[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *txBookings) SlotTaken(_ context.Context, resourceID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bySlot[keyOf(resourceID, slot.Start(), slot.End())]
	return ok, nil
}

func (r *txBookings) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if err := r.tx().lock(ctx, lockKey{scope: scopeBooking, id: id}); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return s.toBooking(s.arena[i])
}

func (r *txBookings) Create(_ context.Context, b *booking.Booking) error {
	return r.tx().stage(createBooking{rec: bookingRecord{
		id:         b.ID(),
		userID:     b.UserID(),
		resourceID: b.ResourceID(),
		start:      b.Start(),
		end:        b.End(),
		status:     b.Status(),
		createdAt:  b.CreatedAt(),
	}})
}

func (r *txBookings) UpdateStatus(_ context.Context, b *booking.Booking) error {
	return r.tx().stage(updateStatus{id: b.ID(), status: b.Status()})
}

func (r *txBookings) UpdateSlot(_ context.Context, b *booking.Booking) error {
	return r.tx().stage(updateSlot{id: b.ID(), start: b.Start(), end: b.End()})
}

type txTaxonomy memTx

func (r *txTaxonomy) tx() *memTx { return (*memTx)(r) }

func (r *txTaxonomy) CreateLocation(_ context.Context, l *taxonomy.Location) error {
	return r.tx().stage(createLocation{l: l})
}

func (r *txTaxonomy) CreateResourceType(_ context.Context, t *taxonomy.ResourceType) error {
	return r.tx().stage(createResourceType{t: t})
}

func (r *txTaxonomy) CreateResource(_ context.Context, res *taxonomy.Resource) error {
	return r.tx().stage(createResource{r: res})
}

func (r *txTaxonomy) CreateTag(_ context.Context, t *taxonomy.Tag) error {
	return r.tx().stage(createTag{t: t})
}

func (r *txTaxonomy) GetResource(_ context.Context, id uuid.UUID) (*taxonomy.Resource, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.resources[id]
	if !ok {
		return nil, notFound("resource not found")
	}
	return res, nil
}

func (r *txTaxonomy) GetTag(_ context.Context, id uuid.UUID) (*taxonomy.Tag, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	tag, ok := s.tags[id]
	if !ok {
		return nil, notFound("tag not found")
	}
	return tag, nil
}

func (r *txTaxonomy) AttachTag(_ context.Context, resourceID, tagID uuid.UUID) (bool, error) {
	s := r.store
	s.mu.RLock()
	_, linked := s.resourceTags[resourceID][tagID]
	s.mu.RUnlock()

	if err := r.tx().stage(attachTag{resourceID: resourceID, tagID: tagID}); err != nil {
		return false, err
	}
	return !linked, nil
}

type txEvents memTx

func (r *txEvents) Append(_ context.Context, event shared.BookingEvent) error {
	return (*memTx)(r).stage(appendEvent{e: event})
}
