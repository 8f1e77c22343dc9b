package types

import (
	"errors"

	"github.com/google/uuid"
)

// Store provides table-oriented CRUD over a single JSON-backed database.
// Records are schema-less maps; queries match by exact equality on every
// listed field. Missing tables are never an error: reads return empty
// results, updates and deletes are no-ops, inserts create the table.
type Store interface {
	// Insert appends a record to the named table, creating the table if it
	// does not exist. The record is validated and deep-copied before the
	// table is touched.
	Insert(table string, rec Record) error

	// Retrieve returns deep copies of every record matching the query, in
	// insertion order. A nil or empty query matches every record.
	Retrieve(table string, query Query) ([]Record, error)

	// Update merges updates into every record matching the query and returns
	// the number of records touched. Matching uses pre-update field values.
	Update(table string, query Query, updates Updates) (int, error)

	// Delete removes every record matching the query, preserving the order
	// of the remaining records, and returns the number removed. An empty
	// query drains the table; the table itself stays present.
	Delete(table string, query Query) (int, error)

	// Tables returns the table names in sorted order.
	Tables() []string

	// Save serializes the whole database to the backing file atomically.
	// Mutating operations already save implicitly unless the store runs in
	// manual sync mode.
	Save() error
}

// Store operation errors.
var (
	ErrLoad           = errors.New("backing file is not a valid database document")
	ErrPersist        = errors.New("persisting database")
	ErrInvalidRecord  = errors.New("invalid record")
	ErrInvalidQuery   = errors.New("invalid query")
	ErrInvalidUpdates = errors.New("invalid updates")
	ErrTableEmpty     = errors.New("table name must not be empty")
)

// NewRecordID generates a UUID v7 string for callers that want server-side
// record IDs. Falls back to UUID v4 if v7 generation fails.
func NewRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
