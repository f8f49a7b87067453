package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accphys/madview/internal/config"
	"github.com/accphys/madview/internal/logger"
)

const version = "0.1.0"

// Exit codes returned by Run.
const (
	ExitSuccess     = 0
	ExitConfigError = 1
	ExitUsageError  = 2
)

var rootCmd = &cobra.Command{
	Use:   "madview",
	Short: "Inspect and validate madview configuration",
	Long: "Madview loads the bundled default configuration, merges the user override\n" +
		"file on top of it, and exposes the effective document for inspection.",
}

var (
	flagConfig  string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "user override file (default: resolved from MADVIEW_CONFIG or the per-user path)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "emit diagnostic logs")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(knobsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Run executes the root command and returns an exit code.
func Run() int {
	exitCode = ExitSuccess

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		if exitCode != ExitSuccess {
			return exitCode
		}
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print madview version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "madview version %s\n", version)
	},
}

// newLogger returns the command logger: a real logger with --verbose,
// otherwise a no-op one so command output stays clean.
func newLogger() *logger.Logger {
	if flagVerbose {
		return logger.NewLogger("cli")
	}
	return logger.Nop()
}

// loadConfig loads the effective configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	log := newLogger()
	if flagConfig != "" {
		return config.GetConfigFromFile(flagConfig, log)
	}
	return config.GetConfig(log)
}
