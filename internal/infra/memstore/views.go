package memstore

import (
	"context"
	"sort"

	"place-booking/internal/domain/booking"
	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingViews serves queries.BookingViewRepo from committed state.
type BookingViews struct{ s *Store }

func (s *Store) BookingViews() *BookingViews { return &BookingViews{s: s} }

func (v *BookingViews) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return s.bookingView(s.arena[i]), nil
}

func (v *BookingViews) FindByResource(_ context.Context, resourceID uuid.UUID, window booking.TimeRange) ([]*queries.BookingView, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.byResource[resourceID]
	out := make([]*queries.BookingView, 0, len(idx))
	for _, i := range idx {
		r := s.arena[i]
		if window.To != nil && !r.start.Before(*window.To) {
			break
		}
		if window.From != nil && !window.From.Before(r.end) {
			continue
		}
		out = append(out, s.bookingView(r))
	}
	// The index orders by start only; break ties by id like the SQL path.
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].StartTime.Equal(out[b].StartTime) {
			return lessID(out[a].ID, out[b].ID)
		}
		return out[a].StartTime.Before(out[b].StartTime)
	})
	return out, nil
}

func (v *BookingViews) FindByUser(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.byUser[userID]
	out := make([]*queries.BookingView, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.bookingView(s.arena[i]))
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return lessID(out[b].ID, out[a].ID)
		}
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out, nil
}

func (s *Store) bookingView(r bookingRecord) *queries.BookingView {
	var name string
	if res, ok := s.resources[r.resourceID]; ok {
		name = res.Name()
	}
	return &queries.BookingView{
		ID:           r.id,
		UserID:       r.userID,
		ResourceID:   r.resourceID,
		ResourceName: name,
		StartTime:    r.start,
		EndTime:      r.end,
		Status:       r.status.String(),
		CreatedAt:    r.createdAt,
	}
}

// TaxonomyViews serves queries.TaxonomyViewRepo from committed state.
type TaxonomyViews struct{ s *Store }

func (s *Store) TaxonomyViews() *TaxonomyViews { return &TaxonomyViews{s: s} }

func (v *TaxonomyViews) Locations(context.Context) ([]*queries.LocationView, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*queries.LocationView, 0, len(s.locations))
	for _, l := range s.locations {
		out = append(out, &queries.LocationView{ID: l.ID(), Name: l.Name(), Address: l.Address()})
	}
	sort.Slice(out, func(a, b int) bool { return lessID(out[a].ID, out[b].ID) })
	return out, nil
}

func (v *TaxonomyViews) ResourceTypes(context.Context) ([]*queries.ResourceTypeView, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*queries.ResourceTypeView, 0, len(s.resourceTypes))
	for _, t := range s.resourceTypes {
		out = append(out, &queries.ResourceTypeView{ID: t.ID(), Name: t.Name()})
	}
	sort.Slice(out, func(a, b int) bool { return lessID(out[a].ID, out[b].ID) })
	return out, nil
}

func (v *TaxonomyViews) TagsByType(_ context.Context, typeID uuid.UUID) ([]*queries.TagView, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*queries.TagView
	for _, t := range s.tags {
		if t.ResourceTypeID() == typeID {
			out = append(out, tagView(t))
		}
	}
	sort.Slice(out, func(a, b int) bool { return lessID(out[a].ID, out[b].ID) })
	return out, nil
}

func (v *TaxonomyViews) TagsForResource(_ context.Context, resourceID uuid.UUID) ([]*queries.TagView, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*queries.TagView
	for tagID := range s.resourceTags[resourceID] {
		out = append(out, tagView(s.tags[tagID]))
	}
	sort.Slice(out, func(a, b int) bool { return lessID(out[a].ID, out[b].ID) })
	return out, nil
}

func (v *TaxonomyViews) ResourceByID(_ context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.resources[id]
	if !ok {
		return nil, notFound("resource not found")
	}
	return s.resourceView(r), nil
}

func (v *TaxonomyViews) ResourcesByLocation(_ context.Context, locationID uuid.UUID) ([]*queries.ResourceView, error) {
	return v.resourcesWhere(func(r *taxonomy.Resource) bool { return r.LocationID() == locationID }), nil
}

func (v *TaxonomyViews) ResourcesByType(_ context.Context, typeID uuid.UUID) ([]*queries.ResourceView, error) {
	return v.resourcesWhere(func(r *taxonomy.Resource) bool { return r.TypeID() == typeID }), nil
}

func (v *TaxonomyViews) ResourcesByTag(_ context.Context, tagID uuid.UUID) ([]*queries.ResourceView, error) {
	s := v.s
	return v.resourcesWhere(func(r *taxonomy.Resource) bool {
		_, ok := s.resourceTags[r.ID()][tagID]
		return ok
	}), nil
}

func (v *TaxonomyViews) resourcesWhere(match func(*taxonomy.Resource) bool) []*queries.ResourceView {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*queries.ResourceView
	for _, r := range s.resources {
		if match(r) {
			out = append(out, s.resourceView(r))
		}
	}
	sort.Slice(out, func(a, b int) bool { return lessID(out[a].ID, out[b].ID) })
	return out
}

func (s *Store) resourceView(r *taxonomy.Resource) *queries.ResourceView {
	view := &queries.ResourceView{
		ID:         r.ID(),
		Name:       r.Name(),
		LocationID: r.LocationID(),
		TypeID:     r.TypeID(),
	}
	if l, ok := s.locations[r.LocationID()]; ok {
		view.LocationName = l.Name()
	}
	if t, ok := s.resourceTypes[r.TypeID()]; ok {
		view.TypeName = t.Name()
	}
	return view
}

func tagView(t *taxonomy.Tag) *queries.TagView {
	return &queries.TagView{ID: t.ID(), Name: t.Name(), ResourceTypeID: t.ResourceTypeID()}
}

// lessID matches Postgres uuid ordering, which compares bytes.
func lessID(a, b uuid.UUID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
