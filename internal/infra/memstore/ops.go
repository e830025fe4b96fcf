package memstore

import (
	"time"

	"place-booking/internal/domain/booking"
	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/infra"
	"place-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// op is one staged write. check runs against the store as it stands and
// must not mutate it; apply mutates and returns its own undo.
type op interface {
	check(s *Store) error
	apply(s *Store) func()
}

func duplicate(constraint string) error {
	return infra.NewConstraintErr(infra.KindDuplicateKey, constraint)
}

func missingParent(constraint string) error {
	return infra.NewConstraintErr(infra.KindForeignKeyViolated, constraint)
}

type createLocation struct{ l *taxonomy.Location }

func (o createLocation) check(*Store) error {
	return nil
}

func (o createLocation) apply(s *Store) func() {
	s.locations[o.l.ID()] = o.l
	return func() {
		delete(s.locations, o.l.ID())
	}
}

type createResourceType struct{ t *taxonomy.ResourceType }

func (o createResourceType) check(s *Store) error {
	if _, ok := s.typeNames[o.t.Name()]; ok {
		return duplicate("resource_types_name_key")
	}
	return nil
}

func (o createResourceType) apply(s *Store) func() {
	s.resourceTypes[o.t.ID()] = o.t
	s.typeNames[o.t.Name()] = o.t.ID()
	return func() {
		delete(s.resourceTypes, o.t.ID())
		delete(s.typeNames, o.t.Name())
	}
}

type createResource struct{ r *taxonomy.Resource }

func (o createResource) check(s *Store) error {
	if _, ok := s.locations[o.r.LocationID()]; !ok {
		return missingParent("resources_location_id_fkey")
	}
	if _, ok := s.resourceTypes[o.r.TypeID()]; !ok {
		return missingParent("resources_type_id_fkey")
	}
	return nil
}

func (o createResource) apply(s *Store) func() {
	s.resources[o.r.ID()] = o.r
	return func() {
		delete(s.resources, o.r.ID())
	}
}

type createTag struct{ t *taxonomy.Tag }

func (o createTag) check(s *Store) error {
	if _, ok := s.resourceTypes[o.t.ResourceTypeID()]; !ok {
		return missingParent("tags_resource_type_id_fkey")
	}
	if _, ok := s.tagNames[o.t.Name()]; ok {
		return duplicate("tags_name_key")
	}
	return nil
}

func (o createTag) apply(s *Store) func() {
	s.tags[o.t.ID()] = o.t
	s.tagNames[o.t.Name()] = o.t.ID()
	return func() {
		delete(s.tags, o.t.ID())
		delete(s.tagNames, o.t.Name())
	}
}

type attachTag struct{ resourceID, tagID uuid.UUID }

func (o attachTag) check(s *Store) error {
	if _, ok := s.resources[o.resourceID]; !ok {
		return missingParent("resource_tags_resource_id_fkey")
	}
	if _, ok := s.tags[o.tagID]; !ok {
		return missingParent("resource_tags_tag_id_fkey")
	}
	return nil
}

func (o attachTag) apply(s *Store) func() {
	set, ok := s.resourceTags[o.resourceID]
	if !ok {
		set = make(map[uuid.UUID]struct{})
		s.resourceTags[o.resourceID] = set
	}
	if _, linked := set[o.tagID]; linked {
		return func() {}
	}
	set[o.tagID] = struct{}{}
	return func() { delete(set, o.tagID) }
}

type createBooking struct{ rec bookingRecord }

func (o createBooking) check(s *Store) error {
	if _, ok := s.resources[o.rec.resourceID]; !ok {
		return missingParent("bookings_resource_id_fkey")
	}
	if _, ok := s.bySlot[keyOf(o.rec.resourceID, o.rec.start, o.rec.end)]; ok {
		return duplicate("bookings_resource_slot_key")
	}
	if o.rec.status == booking.StatusActive && len(s.overlapping(o.rec.resourceID, o.rec.start, o.rec.end, nil)) > 0 {
		return infra.NewConstraintErr(infra.KindExclusionViolated, "bookings_no_overlap")
	}
	return nil
}

func (o createBooking) apply(s *Store) func() {
	i := len(s.arena)
	s.arena = append(s.arena, o.rec)
	s.byID[o.rec.id] = i
	s.bySlot[keyOf(o.rec.resourceID, o.rec.start, o.rec.end)] = i
	s.byUser[o.rec.userID] = append(s.byUser[o.rec.userID], i)
	s.insertResourceIndex(o.rec.resourceID, i)
	return func() {
		s.removeResourceIndex(o.rec.resourceID, i)
		u := s.byUser[o.rec.userID]
		s.byUser[o.rec.userID] = u[:len(u)-1]
		delete(s.bySlot, keyOf(o.rec.resourceID, o.rec.start, o.rec.end))
		delete(s.byID, o.rec.id)
		s.arena = s.arena[:i]
	}
}

type updateStatus struct {
	id     uuid.UUID
	status booking.Status
}

func (o updateStatus) check(s *Store) error {
	if _, ok := s.byID[o.id]; !ok {
		return notFound("booking not found")
	}
	return nil
}

func (o updateStatus) apply(s *Store) func() {
	i := s.byID[o.id]
	prev := s.arena[i].status
	s.arena[i].status = o.status
	return func() { s.arena[i].status = prev }
}

type updateSlot struct {
	id         uuid.UUID
	start, end time.Time
}

func (o updateSlot) check(s *Store) error {
	i, ok := s.byID[o.id]
	if !ok || s.arena[i].status != booking.StatusActive {
		return notFound("active booking not found")
	}
	r := s.arena[i]
	if j, taken := s.bySlot[keyOf(r.resourceID, o.start, o.end)]; taken && j != i {
		return duplicate("bookings_resource_slot_key")
	}
	if len(s.overlapping(r.resourceID, o.start, o.end, &o.id)) > 0 {
		return infra.NewConstraintErr(infra.KindExclusionViolated, "bookings_no_overlap")
	}
	return nil
}

func (o updateSlot) apply(s *Store) func() {
	i := s.byID[o.id]
	prev := s.arena[i]
	s.move(i, o.start, o.end)
	return func() { s.move(i, prev.start, prev.end) }
}

func (s *Store) move(i int, start, end time.Time) {
	r := s.arena[i]
	delete(s.bySlot, keyOf(r.resourceID, r.start, r.end))
	s.removeResourceIndex(r.resourceID, i)
	s.arena[i].start = start
	s.arena[i].end = end
	s.bySlot[keyOf(r.resourceID, start, end)] = i
	s.insertResourceIndex(r.resourceID, i)
}

type appendEvent struct{ e shared.BookingEvent }

func (o appendEvent) check(*Store) error { return nil }

func (o appendEvent) apply(s *Store) func() {
	n := len(s.events)
	s.events = append(s.events, o.e)
	return func() { s.events = s.events[:n] }
}
