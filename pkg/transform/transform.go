package transform

import (
	"errors"
	"fmt"
	"io"

	"github.com/agenthands/gitcat/pkg/core"
	"github.com/klauspost/compress/zlib"
)

// Inflater turns a raw stored object stream into its decompressed form.
type Inflater interface {
	Name() string
	NewReader(stored io.Reader) io.ReadCloser
}

// None inflater passes stored bytes through unchanged.
type noneInflater struct{}

func NewNone() Inflater {
	return &noneInflater{}
}

func (t *noneInflater) Name() string { return "none" }

func (t *noneInflater) NewReader(stored io.Reader) io.ReadCloser {
	return io.NopCloser(stored)
}

// Zlib inflater decodes the zlib streams loose objects are stored in.
type zlibInflater struct{}

func NewZlib() Inflater {
	return &zlibInflater{}
}

func (t *zlibInflater) Name() string { return "zlib" }

// NewReader never touches stored; the zlib header is read on the first Read
// so malformed data surfaces there.
func (t *zlibInflater) NewReader(stored io.Reader) io.ReadCloser {
	return &zlibReader{src: stored}
}

type zlibReader struct {
	src    io.Reader
	zr     io.ReadCloser
	err    error
	closed bool
}

func (r *zlibReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, fmt.Errorf("%w: read after close", core.ErrDecompression)
	}
	if r.err != nil {
		return 0, r.err
	}

	if r.zr == nil {
		zr, err := zlib.NewReader(r.src)
		if err != nil {
			r.err = wrapInflateErr(err)
			return 0, r.err
		}
		r.zr = zr
	}

	n, err := r.zr.Read(p)
	if err != nil && err != io.EOF {
		r.err = wrapInflateErr(err)
		return n, r.err
	}
	return n, err
}

func (r *zlibReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.zr != nil {
		return r.zr.Close()
	}
	return nil
}

func wrapInflateErr(err error) error {
	// An empty or cut-off compressed stream is corruption, not a clean end.
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %v", core.ErrDecompression, err)
}
