package odb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agenthands/gitcat/pkg/cidutil"
	"github.com/agenthands/gitcat/pkg/core"
	"github.com/agenthands/gitcat/pkg/object"
	"github.com/agenthands/gitcat/pkg/transform"
	"go.uber.org/zap"
)

type store struct {
	cfg Config
	log *zap.Logger

	inflater   transform.Inflater
	verifier   cidutil.Verifier
	dispatcher *object.Dispatcher
}

// Open prepares a Store over cfg.ObjectsDir (Dir/objects by default). A nil
// log disables logging.
func Open(ctx context.Context, cfg Config, log *zap.Logger) (Store, error) {
	if cfg.ObjectsDir == "" {
		if cfg.Dir == "" {
			return nil, fmt.Errorf("%w: repository directory not specified", core.ErrInvalidInput)
		}
		cfg.ObjectsDir = filepath.Join(cfg.Dir, "objects")
	}
	cfg.Limits = cfg.Limits.WithDefaults()

	fi, err := os.Stat(cfg.ObjectsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open object directory: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", core.ErrInvalidInput, cfg.ObjectsDir)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &store{
		cfg:        cfg,
		log:        log.With(zap.String("objects", cfg.ObjectsDir)),
		inflater:   transform.NewZlib(),
		verifier:   cidutil.NewVerifier(),
		dispatcher: object.NewDispatcher(),
	}, nil
}

func (s *store) Path(id ObjectID) string {
	dir, file := ObjectPath(id)
	return filepath.Join(s.cfg.ObjectsDir, dir, file)
}

// ObjectPath splits id into its fan-out directory and file name.
func ObjectPath(id ObjectID) (dir, file string) {
	if len(id) < 2 {
		return "", string(id)
	}
	return string(id[:2]), string(id[2:])
}

func (s *store) Read(ctx context.Context, id ObjectID) (*Object, error) {
	var obj *Object
	err := s.withStream(ctx, id, func(r io.Reader) error {
		var err error
		obj, err = object.Decode(r, s.cfg.Limits)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.cfg.Verify {
		if err := s.verifier.Verify(id, obj.KindName, obj.Payload); err != nil {
			return nil, err
		}
	}

	s.log.Debug("object read",
		zap.Stringer("id", id),
		zap.String("kind", obj.KindName),
		zap.Uint64("size", obj.Size))

	return obj, nil
}

func (s *store) Stat(ctx context.Context, id ObjectID) (Info, error) {
	// Verification needs the payload bytes.
	if s.cfg.Verify {
		obj, err := s.Read(ctx, id)
		if err != nil {
			return Info{}, err
		}
		return Info{ID: id, Kind: obj.KindName, Size: obj.Size}, nil
	}

	var h object.Header
	err := s.withStream(ctx, id, func(r io.Reader) error {
		var err error
		h, err = object.DecodeHeader(r, s.cfg.Limits)
		return err
	})
	if err != nil {
		return Info{}, err
	}
	return Info{ID: id, Kind: h.KindName, Size: h.Size}, nil
}

func (s *store) Has(ctx context.Context, id ObjectID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fi, err := os.Stat(s.Path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return fi.Mode().IsRegular(), nil
}

func (s *store) CatFile(ctx context.Context, id ObjectID, w io.Writer) error {
	obj, err := s.Read(ctx, id)
	if err != nil {
		return err
	}

	if err := s.dispatcher.Dispatch(w, obj); err != nil {
		return fmt.Errorf("object %s: %w", id, err)
	}
	return nil
}

// withStream opens the loose object file for id and hands fn its
// decompressed stream. The file and decoder are released on every path.
func (s *store) withStream(ctx context.Context, id ObjectID, fn func(r io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(id)
	f, err := os.Open(path)
	if err != nil {
		s.log.Debug("object open failed", zap.Stringer("id", id), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", core.ErrObjectNotFound, id, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrObjectNotFound, id, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s: %s is not a regular file", core.ErrObjectNotFound, id, path)
	}

	zr := s.inflater.NewReader(f)
	defer zr.Close()

	if err := fn(zr); err != nil {
		s.log.Debug("object rejected", zap.Stringer("id", id), zap.Error(err))
		return fmt.Errorf("object %s: %w", id, err)
	}
	return nil
}
