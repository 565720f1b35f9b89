package odb

import (
	"context"
	"io"

	"github.com/agenthands/gitcat/pkg/core"
	"github.com/agenthands/gitcat/pkg/object"
)

type Config = core.Config
type LimitsConfig = core.LimitsConfig
type ObjectID = core.ObjectID
type Object = object.Object

// Info describes a stored object without its payload.
type Info struct {
	ID   ObjectID
	Kind string
	Size uint64
}

// Store reads loose objects from an object directory.
type Store interface {
	// Path resolves id to its loose object file. It never fails.
	Path(id ObjectID) string

	// Read retrieves and validates the object named by id.
	Read(ctx context.Context, id ObjectID) (*Object, error)

	// Stat validates the object named by id and returns its header.
	Stat(ctx context.Context, id ObjectID) (Info, error)

	// Has reports whether a loose object file exists for id.
	Has(ctx context.Context, id ObjectID) (bool, error)

	// CatFile writes the payload of a supported object to w. Nothing is
	// written unless the whole object validated.
	CatFile(ctx context.Context, id ObjectID, w io.Writer) error
}
