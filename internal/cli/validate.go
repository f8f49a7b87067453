package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accphys/madview/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the configuration and report schema problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			exitCode = ExitConfigError
			return err
		}

		source := "defaults only"
		if cfg.UserFileLoaded {
			source = "defaults + " + cfg.UserFile
		}
		fmt.Fprintf(os.Stdout, "OK (%s): %d engine units, %d display units, %d matchable quantities\n",
			source,
			len(cfg.Document.MadxUnits),
			len(cfg.Document.LineView.Unit),
			len(cfg.Document.Matching))
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user override file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			var err error
			path, err = config.ResolveUserFile()
			if err != nil {
				exitCode = ExitConfigError
				return err
			}
		}

		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "present"
		}
		fmt.Fprintf(os.Stdout, "%s (%s)\n", path, status)
		return nil
	},
}
