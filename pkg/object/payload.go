package object

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/agenthands/gitcat/pkg/core"
)

// ReadPayload reads exactly h.Size bytes following the header and checks
// that nothing remains in r afterwards.
func ReadPayload(r *bufio.Reader, h Header, maxSize uint64) ([]byte, error) {
	if err := checkSize(h, maxSize); err != nil {
		return nil, err
	}

	buf := make([]byte, h.Size)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, shortRead(h, uint64(n), err)
	}

	if err := expectEOF(r); err != nil {
		return nil, err
	}
	return buf, nil
}

// SkipPayload validates the payload like ReadPayload without retaining it.
func SkipPayload(r *bufio.Reader, h Header, maxSize uint64) error {
	if err := checkSize(h, maxSize); err != nil {
		return err
	}

	n, err := io.CopyN(io.Discard, r, int64(h.Size))
	if err != nil {
		return shortRead(h, uint64(n), err)
	}
	return expectEOF(r)
}

func checkSize(h Header, maxSize uint64) error {
	if maxSize == 0 {
		maxSize = core.DefaultMaxObjectBytes
	}
	// Payloads are held in a single slice.
	if maxSize > math.MaxInt {
		maxSize = math.MaxInt
	}
	if h.Size > maxSize {
		return fmt.Errorf("%w: declared size %d exceeds limit %d", core.ErrTooLarge, h.Size, maxSize)
	}
	return nil
}

func shortRead(h Header, got uint64, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s declares %d bytes, stream ended after %d",
			core.ErrTruncatedPayload, h.KindName, h.Size, got)
	}
	return err
}

func expectEOF(r *bufio.Reader) error {
	b, err := r.ReadByte()
	switch {
	case err == nil:
		return fmt.Errorf("%w: unexpected byte 0x%02x after payload", core.ErrTrailingData, b)
	case errors.Is(err, io.EOF):
		return nil
	default:
		return err
	}
}
