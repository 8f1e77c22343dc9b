// Show command renders one table or the whole database.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [table]",
	Short: "Display a table or the whole database",
	Long: `Show prints a human-readable rendering of the named table, or of every
table when no name is given. With --json the raw database structure is
printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if flagJSON {
		snap := store.Snapshot()
		if len(args) == 1 {
			recs, ok := snap[args[0]]
			if !ok {
				recs = nil
			}
			out, err := json.MarshalIndent(recs, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal table: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}
		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal database: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(args) == 1 {
		fmt.Print(store.Render(args[0]))
		return nil
	}
	fmt.Print(store.RenderAll())
	return nil
}
