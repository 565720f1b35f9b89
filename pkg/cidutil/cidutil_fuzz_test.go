package cidutil

import (
	"testing"

	"github.com/agenthands/gitcat/pkg/core"
)

func FuzzVerify(f *testing.F) {
	v := NewVerifier()

	f.Add(string(emptyBlobID), "blob", []byte{})
	f.Add(string(emptyBlobID), "blob", []byte("not empty"))
	f.Add("0000000000000000000000000000000000000000", "tree", []byte("x"))
	f.Add("zz", "blob", []byte{})

	f.Fuzz(func(t *testing.T, id, kind string, payload []byte) {
		// Verify should not panic regardless of input
		_ = v.Verify(core.ObjectID(id), kind, payload)
	})
}
