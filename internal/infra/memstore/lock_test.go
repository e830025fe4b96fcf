//go:build unit

package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockTable(t *testing.T) {
	t.Run("released keys are dropped", func(t *testing.T) {
		locks := newLockTable()
		ctx := context.Background()

		for range 100 {
			key := lockKey{scope: scopeBooking, id: uuid.New()}
			require.NoError(t, locks.acquire(ctx, key))
			locks.release(key)
		}
		assert.Equal(t, 0, locks.size())
	})

	t.Run("waiter keeps the entry until it releases", func(t *testing.T) {
		locks := newLockTable()
		ctx := context.Background()
		key := lockKey{scope: scopeResource, id: uuid.New()}

		require.NoError(t, locks.acquire(ctx, key))

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := locks.acquire(ctx, key); err == nil {
				locks.release(key)
			}
		}()

		assert.Eventually(t, func() bool {
			locks.mu.Lock()
			defer locks.mu.Unlock()
			return locks.slots[key].refs == 2
		}, time.Second, time.Millisecond)

		locks.release(key)
		wg.Wait()
		assert.Equal(t, 0, locks.size())
	})

	t.Run("abandoned wait drops its reference", func(t *testing.T) {
		locks := newLockTable()
		key := lockKey{scope: scopeResource, id: uuid.New()}
		require.NoError(t, locks.acquire(context.Background(), key))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, locks.acquire(ctx, key), context.DeadlineExceeded)
		assert.Equal(t, 1, locks.size())

		locks.release(key)
		assert.Equal(t, 0, locks.size())
	})
}
