// Shared helpers for pantry CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/pantry/internal/jsonfile"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// openStore resolves the database file and opens the store with the
// configured sync mode.
func openStore() (*jsonfile.Store, error) {
	dbFile, err := resolveDBFile()
	if err != nil {
		return nil, fmt.Errorf("resolve db file: %w", err)
	}

	cfg := types.Config{
		DBFile: dbFile,
		Sync:   configSync,
	}

	store, err := jsonfile.Open(cfg, jsonfile.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// finishMutation persists manual-mode stores after a mutating command.
// Immediate mode has already written through, so this is a no-op there.
func finishMutation(store *jsonfile.Store) error {
	if configSync != types.SyncManual {
		return nil
	}
	return store.Save()
}

// parseMapArg parses a JSON object argument (a record, query, or updates
// mapping). what names the argument for error messages.
func parseMapArg(what, raw string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("%s must be a JSON object: %w", what, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%s must be a JSON object, got null", what)
	}
	return m, nil
}

// printRecords writes records either as an indented JSON array (--json) or
// one compact line per record.
func printRecords(recs []types.Record) error {
	if flagJSON {
		out, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	for i, rec := range recs {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		fmt.Printf("Record %d: %s\n", i+1, line)
	}
	return nil
}
