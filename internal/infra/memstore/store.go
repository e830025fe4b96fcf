// Package memstore is an in-memory store driver implementing the same ports
// as the Postgres stack. Bookings live in an append-only arena addressed by
// index, with per-resource indexes kept sorted by start time.
//
// Writes made through a Tx are staged and applied atomically when Within
// commits; reads inside a Tx see committed state only. Resource and booking
// locks are held from acquisition until the Tx ends.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"place-booking/internal/domain/booking"
	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/infra"
	"place-booking/internal/infra/uow"
	"place-booking/internal/pkg/config"
	"place-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookingRecord struct {
	id         uuid.UUID
	userID     uuid.UUID
	resourceID uuid.UUID
	start      time.Time
	end        time.Time
	status     booking.Status
	createdAt  time.Time
}

type slotKey struct {
	resourceID uuid.UUID
	start      int64
	end        int64
}

func keyOf(resourceID uuid.UUID, start, end time.Time) slotKey {
	return slotKey{resourceID: resourceID, start: start.UnixNano(), end: end.UnixNano()}
}

type Store struct {
	cfg config.BookingConfig

	mu sync.RWMutex

	locations     map[uuid.UUID]*taxonomy.Location
	resourceTypes map[uuid.UUID]*taxonomy.ResourceType
	resources     map[uuid.UUID]*taxonomy.Resource
	tags          map[uuid.UUID]*taxonomy.Tag
	resourceTags  map[uuid.UUID]map[uuid.UUID]struct{}

	typeNames     map[string]uuid.UUID
	tagNames      map[string]uuid.UUID

	arena      []bookingRecord
	byID       map[uuid.UUID]int
	byResource map[uuid.UUID][]int
	bySlot     map[slotKey]int
	byUser     map[uuid.UUID][]int

	events []shared.BookingEvent

	locks *lockTable
}

func New(cfg config.Config) *Store {
	return &Store{
		cfg:           cfg.Booking,
		locations:     make(map[uuid.UUID]*taxonomy.Location),
		resourceTypes: make(map[uuid.UUID]*taxonomy.ResourceType),
		resources:     make(map[uuid.UUID]*taxonomy.Resource),
		tags:          make(map[uuid.UUID]*taxonomy.Tag),
		resourceTags:  make(map[uuid.UUID]map[uuid.UUID]struct{}),
		typeNames:     make(map[string]uuid.UUID),
		tagNames:      make(map[string]uuid.UUID),
		byID:          make(map[uuid.UUID]int),
		byResource:    make(map[uuid.UUID][]int),
		bySlot:        make(map[slotKey]int),
		byUser:        make(map[uuid.UUID][]int),
		locks:         newLockTable(),
	}
}

// Within runs fn under the same retry and timeout policy as the Postgres
// driver. Staged writes are validated against the store's constraints and
// applied together; a violation discards all of them.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return uow.Run(ctx, s.cfg, func(ctx context.Context) error {
		tx := &memTx{store: s}
		defer tx.release()

		if err := fn(ctx, tx); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.commit(tx.ops)
	})
}

// Events returns a copy of every event appended so far, oldest first.
func (s *Store) Events() []shared.BookingEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]shared.BookingEvent, len(s.events))
	copy(out, s.events)
	return out
}

// commit applies ops in order under the write lock, re-checking each one
// against the state left by its predecessors. On the first violation every
// applied op is undone in reverse.
func (s *Store) commit(ops []op) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	undos := make([]func(), 0, len(ops))
	for _, o := range ops {
		if err := o.check(s); err != nil {
			for i := len(undos) - 1; i >= 0; i-- {
				undos[i]()
			}
			return err
		}
		undos = append(undos, o.apply(s))
	}
	return nil
}

func (s *Store) toBooking(r bookingRecord) (*booking.Booking, error) {
	return booking.ReconstructBooking(r.id, r.userID, r.resourceID, r.start, r.end, r.status.String(), r.createdAt)
}

// overlapping scans the resource index, which is sorted by start, and stops
// at the first booking starting at or after slot's end.
func (s *Store) overlapping(resourceID uuid.UUID, start, end time.Time, exclude *uuid.UUID) []int {
	idx := s.byResource[resourceID]
	var out []int
	for _, i := range idx {
		r := s.arena[i]
		if !r.start.Before(end) {
			break
		}
		if r.status != booking.StatusActive || !start.Before(r.end) {
			continue
		}
		if exclude != nil && r.id == *exclude {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (s *Store) insertResourceIndex(resourceID uuid.UUID, i int) {
	idx := s.byResource[resourceID]
	start := s.arena[i].start
	pos := sort.Search(len(idx), func(k int) bool {
		return s.arena[idx[k]].start.After(start)
	})
	idx = append(idx, 0)
	copy(idx[pos+1:], idx[pos:])
	idx[pos] = i
	s.byResource[resourceID] = idx
}

func (s *Store) removeResourceIndex(resourceID uuid.UUID, i int) {
	idx := s.byResource[resourceID]
	for k, v := range idx {
		if v == i {
			s.byResource[resourceID] = append(idx[:k], idx[k+1:]...)
			return
		}
	}
}

func notFound(msg string) error {
	return infra.NewRepoErr(infra.KindNotFound, msg)
}
