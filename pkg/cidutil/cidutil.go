package cidutil

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/agenthands/gitcat/pkg/core"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Verifier maps object ids to CIDs and checks object content against them.
type Verifier interface {
	ObjectCID(id core.ObjectID) (cid.Cid, error)
	Verify(id core.ObjectID, kind string, payload []byte) error
}

type verifier struct{}

// NewVerifier returns a SHA-1 git-raw verifier.
func NewVerifier() Verifier {
	return &verifier{}
}

// ObjectCID expresses a full object id as a CIDv1 with the git-raw codec.
func (v *verifier) ObjectCID(id core.ObjectID) (cid.Cid, error) {
	if !id.IsFull() {
		return cid.Undef, fmt.Errorf("%w: %q is not a full object id", core.ErrInvalidInput, id)
	}

	digest, err := hex.DecodeString(string(id))
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}

	mh, err := multihash.Encode(digest, multihash.SHA1)
	if err != nil {
		return cid.Undef, fmt.Errorf("failed to encode multihash: %w", err)
	}

	return cid.NewCidV1(cid.GitRaw, mh), nil
}

// Verify recomputes the hash of "<kind> <size>\0<payload>" and compares it
// to the digest named by id.
func (v *verifier) Verify(id core.ObjectID, kind string, payload []byte) error {
	c, err := v.ObjectCID(id)
	if err != nil {
		return err
	}

	prefix := c.Prefix()
	hash, err := multihash.Sum(rawObject(kind, payload), prefix.MhType, prefix.MhLength)
	if err != nil {
		return fmt.Errorf("failed to compute multihash for verification: %w", err)
	}

	if !bytes.Equal(c.Hash(), hash) {
		return fmt.Errorf("%w: content of %s does not match its id", core.ErrCorrupt, id)
	}

	return nil
}

func rawObject(kind string, payload []byte) []byte {
	raw := make([]byte, 0, len(kind)+24+len(payload))
	raw = append(raw, kind...)
	raw = append(raw, ' ')
	raw = strconv.AppendUint(raw, uint64(len(payload)), 10)
	raw = append(raw, 0)
	return append(raw, payload...)
}
