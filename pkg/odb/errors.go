package odb

import (
	"github.com/agenthands/gitcat/pkg/core"
)

var (
	ErrObjectNotFound   = core.ErrObjectNotFound
	ErrDecompression    = core.ErrDecompression
	ErrMalformedHeader  = core.ErrMalformedHeader
	ErrTruncatedPayload = core.ErrTruncatedPayload
	ErrTrailingData     = core.ErrTrailingData
	ErrUnsupportedKind  = core.ErrUnsupportedKind
	ErrInvalidInput     = core.ErrInvalidInput
	ErrCorrupt          = core.ErrCorrupt
	ErrTooLarge         = core.ErrTooLarge
)
