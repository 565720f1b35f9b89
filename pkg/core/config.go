package core

type Config struct {
	Dir        string // repository root, e.g. ".git"
	ObjectsDir string // defaults to Dir/objects

	// Verify recomputes the object hash on every read and compares it to
	// the requested id. Requires full 40 character ids.
	Verify bool

	Limits LimitsConfig
}

type LimitsConfig struct {
	MaxHeaderBytes int
	MaxObjectBytes uint64
}

const (
	DefaultMaxHeaderBytes = 1 << 10
	DefaultMaxObjectBytes = 1 << 30
)

// WithDefaults returns a copy of l with zero fields replaced by defaults.
func (l LimitsConfig) WithDefaults() LimitsConfig {
	if l.MaxHeaderBytes <= 0 {
		l.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if l.MaxObjectBytes == 0 {
		l.MaxObjectBytes = DefaultMaxObjectBytes
	}
	return l
}
