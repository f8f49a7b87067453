package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective merged configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			exitCode = ExitConfigError
			return err
		}

		out, err := yaml.Marshal(cfg.Raw())
		if err != nil {
			exitCode = ExitConfigError
			return fmt.Errorf("encoding configuration: %w", err)
		}

		_, err = os.Stdout.Write(out)
		return err
	},
}
