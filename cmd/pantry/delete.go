// Delete command removes records matching a query.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

var flagDeleteAll bool

var deleteCmd = &cobra.Command{
	Use:   "delete <table> [query-json]",
	Short: "Delete records matching a query",
	Long: `Delete removes every record matching the query, preserving the order of
the remaining records. Without a query every record in the table is removed;
--all is required to confirm that. The table itself stays present.

Example:
  pantry delete users '{"id": 2}'
  pantry delete users --all`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&flagDeleteAll, "all", false, "confirm deleting every record in the table")
}

func runDelete(cmd *cobra.Command, args []string) error {
	table := args[0]

	var query types.Query
	if len(args) == 2 {
		q, err := parseMapArg("query", args[1])
		if err != nil {
			return err
		}
		query = q
	}
	if len(query) == 0 && !flagDeleteAll {
		return fmt.Errorf("refusing to delete every record in %q without --all", table)
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	removed, err := store.Delete(table, query)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := finishMutation(store); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("Deleted %d record(s) from %q\n", removed, table)
	return nil
}
