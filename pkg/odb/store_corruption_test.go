package odb_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/agenthands/gitcat/internal/testkit"
	"github.com/agenthands/gitcat/pkg/core"
	"github.com/agenthands/gitcat/pkg/odb"
)

const testID core.ObjectID = "0123456789abcdef0123456789abcdef01234567"

func TestCatFile_Failures(t *testing.T) {
	cases := []struct {
		name   string
		stored func(t *testing.T) []byte
		want   error
	}{
		{"NotCompressed", func(t *testing.T) []byte { return []byte("blob 5\x00hello") }, odb.ErrDecompression},
		{"EmptyFile", func(t *testing.T) []byte { return nil }, odb.ErrDecompression},
		{"CompressedTruncated", func(t *testing.T) []byte {
			stored := testkit.Deflate(t, []byte("blob 5\x00hello"))
			return stored[:len(stored)-6]
		}, odb.ErrDecompression},
		{"BadChecksum", func(t *testing.T) []byte {
			stored := testkit.Deflate(t, []byte("blob 5\x00hello"))
			return testkit.CorruptByte(stored, len(stored)-1)
		}, odb.ErrDecompression},
		{"EmptyStream", func(t *testing.T) []byte { return testkit.Deflate(t, nil) }, odb.ErrMalformedHeader},
		{"NoNUL", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("blob 5 hello")) }, odb.ErrMalformedHeader},
		{"NoSpace", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("blob5\x00hello")) }, odb.ErrMalformedHeader},
		{"BadSize", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("blob five\x00hello")) }, odb.ErrMalformedHeader},
		{"BadEncoding", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("bl\xc3ob 5\x00hello")) }, odb.ErrMalformedHeader},
		{"Truncated", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("blob 6\x00hello")) }, odb.ErrTruncatedPayload},
		{"TruncatedToEmpty", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("blob 5\x00")) }, odb.ErrTruncatedPayload},
		{"Trailing", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("blob 4\x00hello")) }, odb.ErrTrailingData},
		{"TrailingNUL", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("blob 5\x00hello\x00")) }, odb.ErrTrailingData},
		{"Tree", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("tree 5\x00hello")) }, odb.ErrUnsupportedKind},
		{"UnknownKind", func(t *testing.T) []byte { return testkit.Deflate(t, []byte("widget 5\x00hello")) }, odb.ErrUnsupportedKind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, objects := createTestStore(t, odb.Config{})
			testkit.WriteStored(t, objects, testID, tc.stored(t))

			var out bytes.Buffer
			err := s.CatFile(context.Background(), testID, &out)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if out.Len() != 0 {
				t.Errorf("no partial output allowed, got %d bytes", out.Len())
			}
		})
	}
}

func TestCatFile_NotFound(t *testing.T) {
	s, objects := createTestStore(t, odb.Config{})
	ctx := context.Background()

	var out bytes.Buffer
	err := s.CatFile(ctx, testID, &out)
	if !errors.Is(err, odb.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}

	// Prefixes are not expanded.
	full := testkit.WriteLooseObject(t, objects, "blob", []byte("hello"))
	err = s.CatFile(ctx, full[:8], &out)
	if !errors.Is(err, odb.ErrObjectNotFound) {
		t.Errorf("expected prefix lookup to fail with ErrObjectNotFound, got %v", err)
	}

	// A directory at the object path cannot be read as an object.
	if err := os.MkdirAll(s.Path(testID), 0755); err != nil {
		t.Fatal(err)
	}
	err = s.CatFile(ctx, testID, &out)
	if !errors.Is(err, odb.ErrObjectNotFound) {
		t.Errorf("expected ErrObjectNotFound for a directory, got %v", err)
	}
	if errors.Is(err, odb.ErrDecompression) {
		t.Error("a directory must not be reported as a decompression failure")
	}
	if _, err := s.Stat(ctx, testID); !errors.Is(err, odb.ErrObjectNotFound) {
		t.Errorf("expected Stat to fail with ErrObjectNotFound, got %v", err)
	}
}

func TestCatFile_UnsupportedKindNamesKind(t *testing.T) {
	s, objects := createTestStore(t, odb.Config{})
	id := testkit.WriteLooseObject(t, objects, "tag", []byte("object 0\n"))

	err := s.CatFile(context.Background(), id, &bytes.Buffer{})
	var uk *core.UnsupportedKindError
	if !errors.As(err, &uk) || uk.Kind != "tag" {
		t.Fatalf("expected UnsupportedKindError for tag, got %v", err)
	}
	if errors.Is(err, odb.ErrMalformedHeader) || errors.Is(err, odb.ErrCorrupt) {
		t.Error("unsupported kind must not look like corruption")
	}
}

func TestCatFile_WriteFailure(t *testing.T) {
	s, objects := createTestStore(t, odb.Config{})
	id := testkit.WriteLooseObject(t, objects, "blob", []byte("hello"))

	w := &testkit.FailingWriter{W: &bytes.Buffer{}}
	if err := s.CatFile(context.Background(), id, w); !errors.Is(err, testkit.ErrFault) {
		t.Errorf("expected injected fault, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	payload := []byte("hello")

	t.Run("Match", func(t *testing.T) {
		s, objects := createTestStore(t, odb.Config{Verify: true})
		id := testkit.WriteLooseObject(t, objects, "blob", payload)

		var out bytes.Buffer
		if err := s.CatFile(ctx, id, &out); err != nil {
			t.Fatalf("CatFile failed: %v", err)
		}
		if out.String() != "hello" {
			t.Errorf("unexpected output %q", out.String())
		}
		if _, err := s.Stat(ctx, id); err != nil {
			t.Errorf("Stat failed: %v", err)
		}
	})

	t.Run("Mismatch", func(t *testing.T) {
		s, objects := createTestStore(t, odb.Config{Verify: true})
		testkit.WriteRaw(t, objects, testID, testkit.RawObject("blob", payload))

		var out bytes.Buffer
		if err := s.CatFile(ctx, testID, &out); !errors.Is(err, odb.ErrCorrupt) {
			t.Errorf("expected ErrCorrupt, got %v", err)
		}
		if out.Len() != 0 {
			t.Error("nothing should be written for a mismatched object")
		}
		if _, err := s.Stat(ctx, testID); !errors.Is(err, odb.ErrCorrupt) {
			t.Errorf("expected Stat to fail with ErrCorrupt, got %v", err)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		s, objects := createTestStore(t, odb.Config{})
		testkit.WriteRaw(t, objects, testID, testkit.RawObject("blob", payload))

		var out bytes.Buffer
		if err := s.CatFile(ctx, testID, &out); err != nil {
			t.Errorf("without verification the id is not checked, got %v", err)
		}
	})

	t.Run("PartialID", func(t *testing.T) {
		s, objects := createTestStore(t, odb.Config{Verify: true})
		testkit.WriteRaw(t, objects, "abcd", testkit.RawObject("blob", payload))

		if err := s.CatFile(ctx, "abcd", &bytes.Buffer{}); !errors.Is(err, odb.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestLimits(t *testing.T) {
	s, objects := createTestStore(t, odb.Config{Limits: odb.LimitsConfig{MaxObjectBytes: 4}})
	id := testkit.WriteLooseObject(t, objects, "blob", []byte("hello"))

	if err := s.CatFile(context.Background(), id, &bytes.Buffer{}); !errors.Is(err, odb.ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}
