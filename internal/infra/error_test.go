//go:build unit

package infra_test

import (
	"context"
	"errors"
	"testing"

	"place-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		kind       infra.RepositoryErrorKind
		constraint string
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound, ""},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "tags_name_key"}, infra.KindDuplicateKey, "tags_name_key"},
		{"foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "bookings_resource_id_fkey"}, infra.KindForeignKeyViolated, "bookings_resource_id_fkey"},
		{"exclusion", &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}, infra.KindExclusionViolated, "bookings_no_overlap"},
		{"serialization", &pgconn.PgError{Code: "40001"}, infra.KindRetryable, ""},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, infra.KindRetryable, ""},
		{"statement timeout", &pgconn.PgError{Code: "57014"}, infra.KindTimeout, ""},
		{"context deadline", context.DeadlineExceeded, infra.KindTimeout, ""},
		{"anything else", errors.New("connection reset"), infra.KindDBFailure, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err)

			assert.True(t, infra.IsKind(err, tt.kind), "got %v", err)
			assert.Equal(t, tt.constraint, infra.ConstraintOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewRepoErr(t *testing.T) {
	err := infra.NewRepoErr(infra.KindNotFound, "booking not found")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Equal(t, "NOT_FOUND: booking not found", err.Error())
}
