// Package main provides the pantry CLI, a thin wrapper over the flat-file
// JSON record store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies a failure: environment problems (an unreadable or
// corrupt backing file, a failed write) are system errors; everything else,
// bad arguments included, is a user error.
func exitCode(err error) int {
	if errors.Is(err, types.ErrLoad) || errors.Is(err, types.ErrPersist) {
		return exitSysError
	}
	return exitUserError
}
