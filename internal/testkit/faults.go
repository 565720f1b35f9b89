package testkit

import (
	"errors"
	"io"
)

// ErrFault is the error injected by FailAfter and FailingWriter.
var ErrFault = errors.New("testkit: injected fault")

// FailAfter returns a reader that yields the first n bytes of r and then
// fails with err (ErrFault when nil), simulating a stored object whose
// underlying file or decoder breaks mid-stream. If r ends before n bytes,
// its EOF is passed through.
func FailAfter(r io.Reader, n int64, err error) io.Reader {
	if err == nil {
		err = ErrFault
	}
	return &faultReader{lr: &io.LimitedReader{R: r, N: n}, err: err}
}

type faultReader struct {
	lr  *io.LimitedReader
	err error
}

func (f *faultReader) Read(p []byte) (int, error) {
	if f.lr.N <= 0 {
		return 0, f.err
	}
	return f.lr.Read(p)
}

// FailingWriter stands in for an output sink that breaks after accepting
// Budget bytes.
type FailingWriter struct {
	W      io.Writer
	Budget int
	Err    error // ErrFault when nil
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	err := w.Err
	if err == nil {
		err = ErrFault
	}
	if w.Budget <= 0 {
		return 0, err
	}
	if len(p) > w.Budget {
		n, _ := w.W.Write(p[:w.Budget])
		w.Budget = 0
		return n, err
	}
	w.Budget -= len(p)
	return w.W.Write(p)
}

// CountingReader records how many bytes were pulled through it.
type CountingReader struct {
	R io.Reader
	N int64
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	c.N += int64(n)
	return n, err
}
