// Save command rewrites the database file from the in-memory state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite the database file",
	Long: `Save loads the database and writes it back atomically, normalizing the
file's JSON encoding. Mutating commands already persist implicitly unless
sync mode is manual.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		fmt.Println("Database saved")
		return nil
	},
}
