package testkit

import (
	"bytes"
	"math/rand/v2"
)

// PayloadSource produces deterministic object payloads for a seed.
type PayloadSource struct {
	rng *rand.Rand
}

func NewPayloadSource(seed uint64) *PayloadSource {
	return &PayloadSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Random returns n uniformly random bytes, NULs and invalid UTF-8 included.
func (s *PayloadSource) Random(n int) []byte {
	b := make([]byte, n)
	for i := 0; i < n; i += 8 {
		v := s.rng.Uint64()
		for j := 0; j < 8 && i+j < n; j++ {
			b[i+j] = byte(v >> (8 * j))
		}
	}
	return b
}

// Text returns n bytes of line-oriented text, the kind of content blobs
// usually hold. It compresses well.
func (s *PayloadSource) Text(n int) []byte {
	words := []string{"blob", "tree", "commit", "object", "header", "payload", "hash", "zlib"}

	var buf bytes.Buffer
	buf.Grow(n + 16)
	for buf.Len() < n {
		buf.WriteString(words[s.rng.IntN(len(words))])
		if s.rng.IntN(10) == 0 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	return buf.Bytes()[:n]
}
