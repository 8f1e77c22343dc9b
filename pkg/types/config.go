package types

import "errors"

// Config holds the backing file path and sync mode for a Store.
type Config struct {
	DBFile string `json:"db_file" yaml:"db_file"`
	Sync   string `json:"sync" yaml:"sync"`
}

// Supported sync modes. Immediate persists after every mutating operation
// (write-through); manual persists only on an explicit Save.
const (
	SyncImmediate = "immediate"
	SyncManual    = "manual"
)

// Config validation errors.
var (
	ErrDBFileEmpty = errors.New("db_file must not be empty")
	ErrSyncUnknown = errors.New("unknown sync mode")
)

// knownSyncModes lists the sync modes that Validate accepts. The empty
// string means "use the default" (immediate).
var knownSyncModes = map[string]bool{
	"":            true,
	SyncImmediate: true,
	SyncManual:    true,
}

// Validate checks that the Config is well-formed, returning a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DBFile == "" {
		return ErrDBFileEmpty
	}
	if !knownSyncModes[c.Sync] {
		return ErrSyncUnknown
	}
	return nil
}

// EffectiveSync returns the sync mode with the default applied.
func (c Config) EffectiveSync() string {
	if c.Sync == "" {
		return SyncImmediate
	}
	return c.Sync
}
