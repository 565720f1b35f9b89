package object

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/agenthands/gitcat/pkg/core"
)

// Header is the "<kind> <size>" prefix of a decompressed object.
type Header struct {
	Kind     core.Kind
	KindName string // the kind token as stored
	Size     uint64
}

// ParseHeader consumes r up to and including the first NUL byte and parses
// the bytes before it. At most maxLen header bytes are examined; maxLen <= 0
// means core.DefaultMaxHeaderBytes.
func ParseHeader(r *bufio.Reader, maxLen int) (Header, error) {
	if maxLen <= 0 {
		maxLen = core.DefaultMaxHeaderBytes
	}

	raw, err := readHeaderBytes(r, maxLen)
	if err != nil {
		return Header{}, err
	}

	if !utf8.Valid(raw) {
		return Header{}, fmt.Errorf("%w: invalid encoding", core.ErrMalformedHeader)
	}

	sp := bytes.IndexByte(raw, ' ')
	if sp < 0 {
		return Header{}, fmt.Errorf("%w: missing separator in %q", core.ErrMalformedHeader, raw)
	}
	kind, sizeTok := string(raw[:sp]), string(raw[sp+1:])
	if kind == "" {
		return Header{}, fmt.Errorf("%w: empty kind", core.ErrMalformedHeader)
	}

	size, err := strconv.ParseUint(sizeTok, 10, 64)
	if err != nil {
		return Header{}, fmt.Errorf("%w: invalid size %q", core.ErrMalformedHeader, sizeTok)
	}

	return Header{
		Kind:     core.ParseKind(kind),
		KindName: kind,
		Size:     size,
	}, nil
}

// readHeaderBytes returns the bytes before the first NUL, consuming the NUL.
func readHeaderBytes(r *bufio.Reader, maxLen int) ([]byte, error) {
	var raw []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: missing terminator after %d bytes", core.ErrMalformedHeader, len(raw))
			}
			return nil, err
		}
		if b == 0 {
			return raw, nil
		}
		if len(raw) == maxLen {
			return nil, fmt.Errorf("%w: header too long (more than %d bytes) for kind %q",
				core.ErrMalformedHeader, maxLen, kindPrefix(raw))
		}
		raw = append(raw, b)
	}
}

// kindPrefix returns the start of the kind token in an unterminated header,
// shortened for error messages.
func kindPrefix(raw []byte) string {
	const maxShown = 32

	if sp := bytes.IndexByte(raw, ' '); sp >= 0 {
		raw = raw[:sp]
	}
	if len(raw) > maxShown {
		return string(raw[:maxShown]) + "..."
	}
	return string(raw)
}
