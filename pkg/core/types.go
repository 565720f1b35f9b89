package core

import (
	"fmt"
	"strings"
)

const (
	MinObjectIDLen  = 4
	FullObjectIDLen = 40
)

// ObjectID is a lowercase hex object identifier.
type ObjectID string

// ParseObjectID validates s as a 4..40 character hex string and returns it
// in canonical lowercase form.
func ParseObjectID(s string) (ObjectID, error) {
	if len(s) < MinObjectIDLen || len(s) > FullObjectIDLen {
		return "", fmt.Errorf("%w: object id %q must be %d to %d hex characters",
			ErrInvalidInput, s, MinObjectIDLen, FullObjectIDLen)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return "", fmt.Errorf("%w: object id %q contains non-hex character %q", ErrInvalidInput, s, c)
		}
	}
	return ObjectID(strings.ToLower(s)), nil
}

func (id ObjectID) String() string { return string(id) }

// IsFull reports whether id names a complete SHA-1 object id.
func (id ObjectID) IsFull() bool { return len(id) == FullObjectIDLen }

// Kind is the object type carried in an object header.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBlob
	KindTree
	KindCommit
	KindTag
)

var kindNames = map[Kind]string{
	KindBlob:   "blob",
	KindTree:   "tree",
	KindCommit: "commit",
	KindTag:    "tag",
}

// ParseKind maps a header kind token to a Kind. Tokens outside the known set
// map to KindUnknown; they are still syntactically valid.
func ParseKind(token string) Kind {
	for k, name := range kindNames {
		if name == token {
			return k
		}
	}
	return KindUnknown
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
