// Package jsonfile implements the flat-file JSON backend for Pantry.
// This file provides whole-document read/write helpers with atomic
// persistence (temp file, fsync, rename).
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// loadDatabase reads and parses the backing file as a database document
// (object of table name to array of record objects). A missing or empty
// file yields an empty database. A file with content that does not parse as
// a database document returns an error wrapping types.ErrLoad.
func loadDatabase(path string) (types.Database, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.Database{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return types.Database{}, nil
	}

	var db types.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", types.ErrLoad, path, err)
	}
	if db == nil {
		// File contained the JSON literal null.
		db = types.Database{}
	}
	return db, nil
}

// writeDatabase atomically writes the database document to path using the
// temp-file, fsync, rename pattern. On failure the previous file contents
// are left intact.
func writeDatabase(path string, db types.Database) error {
	raw, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pantry-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing database: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
