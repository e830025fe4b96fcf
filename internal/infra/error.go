package infra

import (
	"context"
	"errors"
	"log/slog"

	"place-booking/internal/pkg/errs"
	"place-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a driver error and logs it. Not-found and
// constraint outcomes are expected business paths and log at debug.
func WrapRepoErr(msg string, err error) error {
	kind, constraint := classify(err)

	level := slog.LevelError
	switch kind {
	case KindNotFound, KindDuplicateKey, KindExclusionViolated, KindForeignKeyViolated, KindRetryable:
		level = slog.LevelDebug
	}
	slog.Log(context.Background(), level, "Repository error: "+msg,
		slog.String("kind", string(kind)),
		slog.String("constraint", constraint),
		slog.Any("error", err),
	)

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: errs.Wrap(err, msg)}
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

// NewConstraintErr reports a constraint violation detected outside the
// database, in the same shape classify produces for driver errors.
func NewConstraintErr(kind RepositoryErrorKind, constraint string) error {
	return RepositoryError{Kind: kind, Constraint: constraint, msg: "violates " + constraint}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

func classify(err error) (RepositoryErrorKind, string) {
	if pgconv.IsNoRows(err) {
		return KindNotFound, ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout, ""
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgErrCodeExclusionViolation:
		return KindExclusionViolated, pgErr.ConstraintName
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return KindRetryable, ""
	case pgErrCodeQueryCanceled, pgErrCodeLockNotAvailable:
		return KindTimeout, ""
	default:
		return KindDBFailure, pgErr.ConstraintName
	}
}

const (
	pgErrCodeUniqueViolation      = "23505"
	pgErrCodeForeignKeyViolation  = "23503"
	pgErrCodeExclusionViolation   = "23P01"
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeQueryCanceled        = "57014"
	pgErrCodeLockNotAvailable     = "55P03"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
	KindRetryable          RepositoryErrorKind = "RETRYABLE"
	KindTimeout            RepositoryErrorKind = "TIMEOUT"
)
