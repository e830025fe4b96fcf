package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"place-booking/internal/infra"
	"place-booking/internal/pkg/config"
	"place-booking/internal/pkg/errs"
)

const retryBackoffBase = 20 * time.Millisecond

// Run executes attempt under the booking transaction policy shared by every
// store driver. Each attempt gets its own TxTimeout deadline. Exclusion,
// serialization and deadlock failures are retried up to ConflictRetries
// times; after that an exclusion failure is a conflict and the rest are
// transient. Timeouts are transient and never retried.
func Run(ctx context.Context, cfg config.BookingConfig, attempt func(ctx context.Context) error) error {
	for n := 0; ; n++ {
		err := runAttempt(ctx, cfg.TxTimeout, attempt)
		if err == nil {
			return nil
		}

		if IsTimeout(err) || errors.Is(err, context.Canceled) {
			slog.Warn("transaction timed out", "attempt", n+1, "timeout", cfg.TxTimeout.String())
			return errs.WithSecondary(errs.ErrTransient, err)
		}
		if !isRetryable(err) {
			return err
		}
		if n >= cfg.ConflictRetries {
			slog.Warn("transaction failed after retries", "attempts", n+1, "error", err.Error())
			if infra.IsKind(err, infra.KindExclusionViolated) {
				return errs.WithSecondary(errs.ErrConflict, err)
			}
			return errs.WithSecondary(errs.ErrTransient, err)
		}

		waitTime := calculateBackoff(n, retryBackoffBase)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", n+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return errs.WithSecondary(errs.ErrTransient, ctx.Err())
		case <-time.After(waitTime):
		}
	}
}

func runAttempt(ctx context.Context, timeout time.Duration, attempt func(ctx context.Context) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return attempt(ctx)
}

// IsTimeout reports deadline expiry, statement cancellation and lock
// timeouts, whether raw or already classified by the repository layer.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || infra.IsKind(err, infra.KindTimeout)
}

func isRetryable(err error) bool {
	return infra.IsKind(err, infra.KindExclusionViolated) || infra.IsKind(err, infra.KindRetryable)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

