// Export command snapshots the database into a SQLite file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <sqlite-file>",
	Short: "Export the database to a SQLite snapshot",
	Long: `Export writes every table into a SQLite database for inspection with
external tooling. Each record is stored as one row of JSON text alongside
its insertion position. The snapshot is a copy; the JSON file remains the
source of truth.

Example:
  pantry export snapshot.db`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	snap := store.Snapshot()
	if err := export.SQLite(snap, args[0]); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("Exported %d table(s) to %s\n", len(snap), args[0])
	return nil
}
