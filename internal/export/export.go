// Package export writes SQLite snapshots of a pantry database for
// inspection with external tooling.
package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// SQLite writes every table of db into a fresh SQLite database at path. Each
// table maps to a SQLite table with a position column (insertion order) and
// the record stored as compact JSON text. Any existing file at path is
// replaced.
func SQLite(db types.Database, path string) error {
	// Remove any previous snapshot so the export starts from a clean file.
	_ = os.Remove(path)

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening sqlite snapshot: %w", err)
	}
	defer conn.Close()

	for name, recs := range db {
		ident := quoteIdent(name)
		if _, err := conn.Exec(fmt.Sprintf(
			"CREATE TABLE %s (position INTEGER PRIMARY KEY, record TEXT NOT NULL)", ident)); err != nil {
			return fmt.Errorf("creating table %s: %w", name, err)
		}
		for i, rec := range recs {
			raw, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("marshaling record %d of %s: %w", i+1, name, err)
			}
			if _, err := conn.Exec(fmt.Sprintf(
				"INSERT INTO %s (position, record) VALUES (?, ?)", ident),
				i+1, string(raw)); err != nil {
				return fmt.Errorf("inserting record %d of %s: %w", i+1, name, err)
			}
		}
	}
	return nil
}

// quoteIdent quotes an arbitrary table name as a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
