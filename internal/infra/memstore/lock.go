package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type lockScope uint8

const (
	scopeResource lockScope = iota
	scopeBooking
)

type lockKey struct {
	scope lockScope
	id    uuid.UUID
}

// lockTable hands out one-slot channels per key so acquisition can give up
// when the context ends, which sync.Mutex cannot. An entry lives while it
// has a holder or a waiter.
type lockTable struct {
	mu    sync.Mutex
	slots map[lockKey]*lockSlot
}

type lockSlot struct {
	ch   chan struct{}
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{slots: make(map[lockKey]*lockSlot)}
}

func (t *lockTable) ref(key lockKey) chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.slots[key]
	if !ok {
		s = &lockSlot{ch: make(chan struct{}, 1)}
		t.slots[key] = s
	}
	s.refs++
	return s.ch
}

func (t *lockTable) unref(key lockKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.slots[key]
	s.refs--
	if s.refs == 0 {
		delete(t.slots, key)
	}
}

func (t *lockTable) acquire(ctx context.Context, key lockKey) error {
	ch := t.ref(key)
	select {
	case ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		t.unref(key)
		return ctx.Err()
	}
}

func (t *lockTable) release(key lockKey) {
	t.mu.Lock()
	ch := t.slots[key].ch
	t.mu.Unlock()
	<-ch
	t.unref(key)
}

func (t *lockTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots)
}
