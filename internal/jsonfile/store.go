package jsonfile

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Store holds the whole database in memory and persists it to a single JSON
// file. In immediate sync mode (the default) every mutating operation
// rewrites the file; in manual mode only Save does.
//
// The store assumes a single logical owner of the backing file. The mutex
// only guards in-process sharing; concurrent access from another process is
// unsupported.
type Store struct {
	mu     sync.RWMutex
	config types.Config
	log    *slog.Logger
	db     types.Database
}

var _ types.Store = (*Store)(nil)

// Option configures a Store at Open time.
type Option func(*Store)

// WithLogger sets the logger used for operation debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Open validates the config, loads the backing file, and returns a
// ready-to-use store. A missing file starts an empty database; a file that
// cannot be parsed as a database document fails with types.ErrLoad.
func Open(config types.Config, opts ...Option) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := loadDatabase(config.DBFile)
	if err != nil {
		return nil, err
	}

	s := &Store{
		config: config,
		log:    slog.New(slog.DiscardHandler),
		db:     db,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log.Debug("database loaded",
		"db_file", config.DBFile,
		"sync", config.EffectiveSync(),
		"tables", len(db))
	return s, nil
}

// Insert appends a record to the named table, creating the table if needed.
// The record is normalized into the JSON value union and deep-copied before
// the table is touched; invalid records are rejected with no state change.
func (s *Store) Insert(table string, rec types.Record) error {
	if table == "" {
		return types.ErrTableEmpty
	}
	if rec == nil {
		return fmt.Errorf("%w: record must not be nil", types.ErrInvalidRecord)
	}
	norm, err := types.NormalizeMap(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidRecord, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.db[table] = append(s.db[table], norm)
	if err := s.writeThroughLocked(); err != nil {
		return err
	}

	s.log.Debug("record inserted", "table", table, "fields", len(norm))
	return nil
}

// Retrieve returns deep copies of every record in the table matching the
// query, in insertion order. A missing table yields an empty result, not an
// error. A nil or empty query matches every record.
func (s *Store) Retrieve(table string, query types.Query) ([]types.Record, error) {
	if table == "" {
		return nil, types.ErrTableEmpty
	}
	q, err := types.NormalizeMap(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidQuery, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []types.Record{}
	for _, rec := range s.db[table] {
		if types.Matches(rec, q) {
			results = append(results, types.CloneRecord(rec))
		}
	}
	return results, nil
}

// Update merges updates into every record matching the query in a single
// pass and returns the matched count. Matching uses pre-update field values:
// each record is visited exactly once, so an update can neither re-match nor
// un-match a record mid-operation. Persists afterward even when nothing
// matched.
func (s *Store) Update(table string, query types.Query, updates types.Updates) (int, error) {
	if table == "" {
		return 0, types.ErrTableEmpty
	}
	q, err := types.NormalizeMap(query)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrInvalidQuery, err)
	}
	u, err := types.NormalizeMap(updates)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrInvalidUpdates, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := 0
	for _, rec := range s.db[table] {
		if !types.Matches(rec, q) {
			continue
		}
		matched++
		for k, v := range u {
			rec[k] = types.CloneValue(v)
		}
	}
	if err := s.writeThroughLocked(); err != nil {
		return matched, err
	}

	s.log.Debug("records updated", "table", table, "matched", matched)
	return matched, nil
}

// Delete removes every record matching the query, preserving the relative
// order of the remaining records, and returns the removed count. A drained
// table stays present in the database. An empty query removes every record.
func (s *Store) Delete(table string, query types.Query) (int, error) {
	if table == "" {
		return 0, types.ErrTableEmpty
	}
	q, err := types.NormalizeMap(query)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrInvalidQuery, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs, ok := s.db[table]
	removed := 0
	if ok {
		kept := make([]types.Record, 0, len(recs))
		for _, rec := range recs {
			if types.Matches(rec, q) {
				removed++
				continue
			}
			kept = append(kept, rec)
		}
		s.db[table] = kept
	}
	if err := s.writeThroughLocked(); err != nil {
		return removed, err
	}

	s.log.Debug("records deleted", "table", table, "removed", removed)
	return removed, nil
}

// Tables returns the table names in sorted order.
func (s *Store) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.db))
	for name := range s.db {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a deep copy of the whole database.
func (s *Store) Snapshot() types.Database {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(types.Database, len(s.db))
	for name, recs := range s.db {
		cp := make([]types.Record, len(recs))
		for i, rec := range recs {
			cp[i] = types.CloneRecord(rec)
		}
		out[name] = cp
	}
	return out
}

// Save serializes the entire in-memory database to the backing file,
// overwriting prior contents. The write is atomic: on failure the previous
// file is intact and the in-memory state remains valid.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(); err != nil {
		return err
	}
	s.log.Debug("database saved", "db_file", s.config.DBFile, "tables", len(s.db))
	return nil
}

// writeThroughLocked persists after a mutation in immediate mode. Manual
// mode defers persistence to an explicit Save. Caller must hold s.mu.
func (s *Store) writeThroughLocked() error {
	if s.config.EffectiveSync() == types.SyncManual {
		return nil
	}
	return s.persistLocked()
}

// persistLocked writes the database to the backing file, wrapping failures
// in types.ErrPersist so callers can tell IO errors from bad input. Caller
// must hold s.mu.
func (s *Store) persistLocked() error {
	if err := writeDatabase(s.config.DBFile, s.db); err != nil {
		return fmt.Errorf("%w: %v", types.ErrPersist, err)
	}
	return nil
}
