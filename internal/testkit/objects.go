package testkit

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/agenthands/gitcat/pkg/core"
	"github.com/klauspost/compress/zlib"
	"github.com/multiformats/go-multihash"
)

// RawObject returns the uncompressed loose object encoding of payload.
func RawObject(kind string, payload []byte) []byte {
	raw := make([]byte, 0, len(kind)+24+len(payload))
	raw = append(raw, kind...)
	raw = append(raw, ' ')
	raw = strconv.AppendInt(raw, int64(len(payload)), 10)
	raw = append(raw, 0)
	raw = append(raw, payload...)
	return raw
}

// Deflate zlib-compresses data.
func Deflate(tb testing.TB, data []byte) []byte {
	tb.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		tb.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

// ObjectIDFor returns the SHA-1 object id of raw object bytes.
func ObjectIDFor(tb testing.TB, raw []byte) core.ObjectID {
	tb.Helper()

	mh, err := multihash.Sum(raw, multihash.SHA1, -1)
	if err != nil {
		tb.Fatalf("multihash: %v", err)
	}
	dec, err := multihash.Decode(mh)
	if err != nil {
		tb.Fatalf("multihash decode: %v", err)
	}
	return core.ObjectID(hex.EncodeToString(dec.Digest))
}

// WriteLooseObject stores a well-formed object under objectsDir and returns its id.
func WriteLooseObject(tb testing.TB, objectsDir, kind string, payload []byte) core.ObjectID {
	tb.Helper()

	raw := RawObject(kind, payload)
	id := ObjectIDFor(tb, raw)
	WriteStored(tb, objectsDir, id, Deflate(tb, raw))
	return id
}

// WriteRaw compresses an arbitrary decompressed stream and stores it under id.
func WriteRaw(tb testing.TB, objectsDir string, id core.ObjectID, decompressed []byte) {
	tb.Helper()
	WriteStored(tb, objectsDir, id, Deflate(tb, decompressed))
}

// WriteStored writes stored bytes verbatim at the loose object path for id.
func WriteStored(tb testing.TB, objectsDir string, id core.ObjectID, stored []byte) {
	tb.Helper()

	path := filepath.Join(objectsDir, string(id[:2]), string(id[2:]))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatal(err)
	}
	if err := os.WriteFile(path, stored, 0644); err != nil {
		tb.Fatal(err)
	}
}

// CorruptByte returns a copy of data with the byte at offset flipped.
func CorruptByte(data []byte, offset int) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	if offset >= 0 && offset < len(out) {
		out[offset] ^= 0xFF
	}
	return out
}
