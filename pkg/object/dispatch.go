package object

import (
	"fmt"
	"io"

	"github.com/agenthands/gitcat/pkg/core"
)

// Emitter writes a validated object of one kind to w.
type Emitter func(w io.Writer, obj *Object) error

// Dispatcher routes objects to the emitter registered for their kind.
type Dispatcher struct {
	emitters map[core.Kind]Emitter
}

// NewDispatcher returns a dispatcher with the built-in emitters. Only blobs
// are handled; tree, commit and tag are known kinds without an emitter yet.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		emitters: map[core.Kind]Emitter{
			core.KindBlob: emitBlob,
		},
	}
}

// Handles reports whether kind has an emitter.
func (d *Dispatcher) Handles(kind core.Kind) bool {
	_, ok := d.emitters[kind]
	return ok
}

// Dispatch emits obj to w, or fails with *core.UnsupportedKindError.
func (d *Dispatcher) Dispatch(w io.Writer, obj *Object) error {
	emit, ok := d.emitters[obj.Kind]
	if !ok {
		return &core.UnsupportedKindError{Kind: obj.KindName}
	}
	return emit(w, obj)
}

func emitBlob(w io.Writer, obj *Object) error {
	n, err := w.Write(obj.Payload)
	if err != nil {
		return fmt.Errorf("write blob payload: %w", err)
	}
	if n != len(obj.Payload) {
		return fmt.Errorf("write blob payload: %w", io.ErrShortWrite)
	}
	return nil
}
