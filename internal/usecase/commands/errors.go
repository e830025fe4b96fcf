package commands

import (
	"place-booking/internal/infra"
	"place-booking/internal/pkg/errs"
)

// surface maps repository failures onto caller-facing kinds. Errors that
// already carry a kind pass through untouched; anything unclassified stays
// an internal error. The repository error is kept as the secondary cause so
// its text never reaches callers.
func surface(err error, onDuplicate error) error {
	if err == nil || errs.Kind(err) != nil {
		return err
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound),
		infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithSecondary(errs.ErrNotFound, err)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.WithSecondary(onDuplicate, err)
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.WithSecondary(errs.ErrConflict, err)
	case infra.IsKind(err, infra.KindRetryable),
		infra.IsKind(err, infra.KindTimeout):
		return errs.WithSecondary(errs.ErrTransient, err)
	default:
		return err
	}
}
