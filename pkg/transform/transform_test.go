package transform

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/agenthands/gitcat/internal/testkit"
	"github.com/agenthands/gitcat/pkg/core"
)

func TestInflateNone(t *testing.T) {
	tr := NewNone()

	if tr.Name() != "none" {
		t.Errorf("expected none, got %s", tr.Name())
	}

	data := []byte("hello world")
	rc := tr.NewReader(bytes.NewReader(data))
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("none inflater should not change data")
	}
}

func TestInflateZlib(t *testing.T) {
	tr := NewZlib()

	if tr.Name() != "zlib" {
		t.Errorf("expected zlib, got %s", tr.Name())
	}

	t.Run("Roundtrip", func(t *testing.T) {
		data := testkit.NewPayloadSource(1).Text(1024 * 1024)

		stored := testkit.Deflate(t, data)
		if len(stored) >= len(data) {
			t.Errorf("expected zlib to compress data, %d >= %d", len(stored), len(data))
		}

		rc := tr.NewReader(bytes.NewReader(stored))
		defer rc.Close()

		got, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Error("zlib inflater corrupted data on roundtrip")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		rc := tr.NewReader(bytes.NewReader(testkit.Deflate(t, nil)))
		defer rc.Close()

		got, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no bytes, got %d", len(got))
		}
	})

	t.Run("LazyConstruction", func(t *testing.T) {
		src := testkit.FailAfter(bytes.NewReader(nil), 0, nil)

		// Constructing must not read from the source.
		rc := tr.NewReader(src)
		defer rc.Close()

		_, err := rc.Read(make([]byte, 1))
		if !errors.Is(err, core.ErrDecompression) {
			t.Fatalf("expected ErrDecompression on first read, got %v", err)
		}
	})

	t.Run("Corruption", func(t *testing.T) {
		data := []byte("hello world this is a test payload")
		stored := testkit.Deflate(t, data)

		cases := map[string][]byte{
			"Empty":       {},
			"NotZlib":     []byte("plain text, not compressed"),
			"BadHeader":   append([]byte{0x00, 0x00}, stored[2:]...),
			"Truncated":   stored[:len(stored)/2],
			"BadChecksum": flipLast(stored),
			"HeaderOnly":  stored[:2],
		}

		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				rc := tr.NewReader(bytes.NewReader(in))
				defer rc.Close()

				_, err := io.ReadAll(rc)
				if !errors.Is(err, core.ErrDecompression) {
					t.Errorf("expected ErrDecompression, got %v", err)
				}
			})
		}
	})

	t.Run("CloseIdempotent", func(t *testing.T) {
		rc := tr.NewReader(bytes.NewReader(testkit.Deflate(t, []byte("x"))))
		if _, err := io.ReadAll(rc); err != nil {
			t.Fatal(err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("first Close failed: %v", err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("second Close failed: %v", err)
		}
		if _, err := rc.Read(make([]byte, 1)); err == nil {
			t.Error("expected Read after Close to fail")
		}
	})
}

func flipLast(b []byte) []byte {
	out := append([]byte(nil), b...)
	out[len(out)-1] ^= 0xFF
	return out
}
