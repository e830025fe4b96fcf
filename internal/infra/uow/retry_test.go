//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"place-booking/internal/infra"
	"place-booking/internal/pkg/config"
	"place-booking/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", errors.Wrap(context.DeadlineExceeded, "begin"), true},
		{"statement cancelled", infra.WrapRepoErr("q", &pgconn.PgError{Code: "57014"}), true},
		{"lock not available", infra.WrapRepoErr("q", &pgconn.PgError{Code: "55P03"}), true},
		{"exclusion", infra.WrapRepoErr("q", &pgconn.PgError{Code: "23P01"}), false},
		{"plain", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTimeout(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(infra.WrapRepoErr("q", &pgconn.PgError{Code: "23P01"})))
	assert.True(t, isRetryable(infra.WrapRepoErr("q", &pgconn.PgError{Code: "40001"})))
	assert.True(t, isRetryable(infra.WrapRepoErr("q", &pgconn.PgError{Code: "40P01"})))
	assert.False(t, isRetryable(infra.WrapRepoErr("q", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isRetryable(errors.New("boom")))
}

func TestCalculateBackoff(t *testing.T) {
	base := 20 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		floor := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}

func TestRun(t *testing.T) {
	exclusion := func() error { return infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23P01"}) }
	serialization := func() error { return infra.WrapRepoErr("insert", &pgconn.PgError{Code: "40001"}) }
	cfg := config.BookingConfig{TxTimeout: time.Second, ConflictRetries: 1}

	t.Run("success on first attempt", func(t *testing.T) {
		calls := 0
		err := Run(context.Background(), cfg, func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("exclusion retried once then conflict", func(t *testing.T) {
		calls := 0
		err := Run(context.Background(), cfg, func(context.Context) error {
			calls++
			return exclusion()
		})
		require.Error(t, err)
		assert.Equal(t, 2, calls)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.False(t, errs.Is(err, errs.ErrTransient))
	})

	t.Run("serialization failure exhausts into transient", func(t *testing.T) {
		calls := 0
		err := Run(context.Background(), cfg, func(context.Context) error {
			calls++
			return serialization()
		})
		require.Error(t, err)
		assert.Equal(t, 2, calls)
		assert.True(t, errs.Is(err, errs.ErrTransient))
	})

	t.Run("retry succeeds", func(t *testing.T) {
		calls := 0
		err := Run(context.Background(), cfg, func(context.Context) error {
			calls++
			if calls == 1 {
				return exclusion()
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("timeout is transient without retry", func(t *testing.T) {
		calls := 0
		short := config.BookingConfig{TxTimeout: 10 * time.Millisecond, ConflictRetries: 1}
		err := Run(context.Background(), short, func(ctx context.Context) error {
			calls++
			<-ctx.Done()
			return ctx.Err()
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, errs.Is(err, errs.ErrTransient))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := Run(context.Background(), cfg, func(context.Context) error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
		assert.Nil(t, errs.Kind(err))
	})

	t.Run("zero retries", func(t *testing.T) {
		calls := 0
		err := Run(context.Background(), config.BookingConfig{TxTimeout: time.Second}, func(context.Context) error {
			calls++
			return exclusion()
		})
		assert.Equal(t, 1, calls)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}
