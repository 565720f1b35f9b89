package odb

import (
	"github.com/agenthands/gitcat/pkg/cidutil"
	"github.com/agenthands/gitcat/pkg/object"
	"github.com/agenthands/gitcat/pkg/transform"
	"go.uber.org/zap"
)

// NewStoreForTest constructs a Store with injected dependencies. Test-only.
func NewStoreForTest(
	cfg Config,
	log *zap.Logger,
	inf transform.Inflater,
	ver cidutil.Verifier,
	d *object.Dispatcher,
) Store {
	cfg.Limits = cfg.Limits.WithDefaults()
	return &store{
		cfg:        cfg,
		log:        log,
		inflater:   inf,
		verifier:   ver,
		dispatcher: d,
	}
}
