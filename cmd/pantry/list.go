// List command retrieves records from a table, optionally filtered.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <table> [query-json]",
	Short: "List records in a table, optionally filtered",
	Long: `List returns the table's records in insertion order. With a query, only
records whose fields exactly equal every query field are returned. A missing
table yields an empty result.

Example:
  pantry list users
  pantry list users '{"name": "Jane"}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	table := args[0]

	var query types.Query
	if len(args) == 2 {
		q, err := parseMapArg("query", args[1])
		if err != nil {
			return err
		}
		query = q
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	recs, err := store.Retrieve(table, query)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if !flagJSON && len(recs) == 0 {
		fmt.Printf("No records in %q\n", table)
		return nil
	}
	return printRecords(recs)
}
