// Insert command appends a record to a table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

var flagInsertID bool

var insertCmd = &cobra.Command{
	Use:   "insert <table> <record-json>",
	Short: "Insert a record into a table",
	Long: `Insert appends a record to the named table, creating the table if it
does not exist. The record is an arbitrary JSON object; no schema is
enforced and duplicate records are permitted.

Example:
  pantry insert users '{"id": 1, "name": "John Doe", "email": "john@example.com"}'`,
	Args: cobra.ExactArgs(2),
	RunE: runInsert,
}

func init() {
	insertCmd.Flags().BoolVar(&flagInsertID, "id", false, "add a generated _id field to the record")
}

func runInsert(cmd *cobra.Command, args []string) error {
	table := args[0]

	rec, err := parseMapArg("record", args[1])
	if err != nil {
		return err
	}
	if flagInsertID {
		if _, ok := rec["_id"]; !ok {
			rec["_id"] = types.NewRecordID()
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Insert(table, rec); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	if err := finishMutation(store); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if flagJSON {
		return printRecords([]types.Record{rec})
	}
	fmt.Printf("Inserted 1 record into %q\n", table)
	return nil
}
