// Init command creates the config directory and an empty database file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the pantry database",
	Long: `Init creates the configuration directory with a default config.yaml
(done on every run) and writes an empty database file at the resolved
location if one does not already exist. An existing database file is
validated and left as-is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Opening validates an existing file; saving creates a missing one.
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Save(); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		dbFile, err := resolveDBFile()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized pantry database at %s\n", dbFile)
		return nil
	},
}
