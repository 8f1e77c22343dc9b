// Update command merges new field values into matching records.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <table> <query-json> <updates-json>",
	Short: "Update records matching a query",
	Long: `Update merges the updates object into every record matching the query.
Fields listed in updates are overwritten or added; other fields are left
untouched. A missing table is a no-op.

Example:
  pantry update users '{"id": 1}' '{"email": "j@x.com"}'`,
	Args: cobra.ExactArgs(3),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	table := args[0]

	query, err := parseMapArg("query", args[1])
	if err != nil {
		return err
	}
	updates, err := parseMapArg("updates", args[2])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	matched, err := store.Update(table, query, updates)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if err := finishMutation(store); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("Updated %d record(s) in %q\n", matched, table)
	return nil
}
