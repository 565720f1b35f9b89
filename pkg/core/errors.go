package core

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound   = errors.New("gitcat: object not found")
	ErrDecompression    = errors.New("gitcat: decompression failed")
	ErrMalformedHeader  = errors.New("gitcat: malformed object header")
	ErrTruncatedPayload = errors.New("gitcat: truncated payload")
	ErrTrailingData     = errors.New("gitcat: trailing data after payload")
	ErrUnsupportedKind  = errors.New("gitcat: unsupported object kind")

	ErrInvalidInput = errors.New("gitcat: invalid input")
	ErrCorrupt      = errors.New("gitcat: corrupt object")
	ErrTooLarge     = errors.New("gitcat: too large")
)

// UnsupportedKindError reports a well-formed header whose kind has no handler.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s: %q not yet supported", ErrUnsupportedKind, e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}
