package jsonfile

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Render returns a human-readable listing of one table's records, or an
// indication that the table is absent or empty. Read-only.
func (s *Store) Render(table string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs, ok := s.db[table]
	if !ok {
		return fmt.Sprintf("Table %q does not exist.\n", table)
	}
	if len(recs) == 0 {
		return fmt.Sprintf("Table %q is empty.\n", table)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Table %q:\n", table)
	renderRecords(&b, recs)
	return b.String()
}

// RenderAll returns a human-readable listing of every table in the database,
// in sorted table order.
func (s *Store) RenderAll() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.db) == 0 {
		return "Database is empty.\n"
	}

	names := make([]string, 0, len(s.db))
	for name := range s.db {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "Table %q:\n", name)
		recs := s.db[name]
		if len(recs) == 0 {
			b.WriteString("  (Empty)\n")
			continue
		}
		renderRecords(&b, recs)
	}
	return b.String()
}

func renderRecords(b *strings.Builder, recs []types.Record) {
	for i, rec := range recs {
		line, err := json.Marshal(rec)
		if err != nil {
			// Stored records are always in the JSON value union, so this
			// cannot happen; render a placeholder rather than panic.
			fmt.Fprintf(b, "  Record %d: <unrenderable: %v>\n", i+1, err)
			continue
		}
		fmt.Fprintf(b, "  Record %d: %s\n", i+1, line)
	}
}
