package errs

// Caller-facing error kinds. Lower layers attach one of these with Mark so
// callers can branch with Is while keeping the original cause and stack.
// A sentinel built as Mark(New(..), kind) is equivalent to kind under Is;
// use errors.Is to tell two such sentinels apart.
var (
	ErrValidation       = New("validation error")
	ErrConflict         = New("booking conflict")
	ErrNotFound         = New("not found")
	ErrForbidden        = New("forbidden")
	ErrAlreadyCancelled = New("booking already cancelled")
	ErrDuplicateName    = New("duplicate name")
	ErrTransient        = New("transient failure, retry later")
)

// Kind returns the caller-facing kind carried by err, or nil.
func Kind(err error) error {
	for _, k := range []error{
		ErrValidation,
		ErrConflict,
		ErrNotFound,
		ErrForbidden,
		ErrAlreadyCancelled,
		ErrDuplicateName,
		ErrTransient,
	} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}
