// Package object decodes the decompressed form of a loose object:
// "<kind> SP <decimal size> NUL <payload>", with nothing after the payload.
package object

import (
	"bufio"
	"io"

	"github.com/agenthands/gitcat/pkg/core"
)

// Object is a fully validated object. Payload must not be modified.
type Object struct {
	Header
	Payload []byte
}

// Decode parses and validates a complete decompressed object stream.
func Decode(r io.Reader, limits core.LimitsConfig) (*Object, error) {
	limits = limits.WithDefaults()
	br := bufio.NewReader(r)

	h, err := ParseHeader(br, limits.MaxHeaderBytes)
	if err != nil {
		return nil, err
	}

	payload, err := ReadPayload(br, h, limits.MaxObjectBytes)
	if err != nil {
		return nil, err
	}

	return &Object{Header: h, Payload: payload}, nil
}

// DecodeHeader parses the header and validates the payload length without
// keeping the payload.
func DecodeHeader(r io.Reader, limits core.LimitsConfig) (Header, error) {
	limits = limits.WithDefaults()
	br := bufio.NewReader(r)

	h, err := ParseHeader(br, limits.MaxHeaderBytes)
	if err != nil {
		return Header{}, err
	}
	if err := SkipPayload(br, h, limits.MaxObjectBytes); err != nil {
		return Header{}, err
	}
	return h, nil
}
