// Root command for the pantry CLI.
package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/logging"
	"github.com/mesh-intelligence/pantry/internal/paths"
	"github.com/mesh-intelligence/pantry/pkg/pantry"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDBFile    string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml. Set by PersistentPreRunE so all
// subcommands can use them.
var (
	configDBFile string
	configSync   string
)

// logger is the process logger; set up by PersistentPreRunE.
var (
	logger     = slog.New(slog.DiscardHandler)
	logCleanup = func() {}
)

var rootCmd = &cobra.Command{
	Use:     "pantry",
	Short:   "Pantry is a flat-file JSON record store",
	Version: pantry.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, logCleanup = logging.Setup(flagVerbose)

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDBFile = cfg.GetString(cfgKeyDBFile)
		configSync = cfg.GetString(cfgKeySync)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logCleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDBFile, "db", "", "database file (default: $(CWD)/data.json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > PANTRY_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDBFile returns the database file path following the precedence:
// --db flag > config.yaml db_file > PANTRY_DB_FILE env > $(CWD)/data.json.
func resolveDBFile() (string, error) {
	return paths.ResolveDBFile(flagDBFile, configDBFile)
}
