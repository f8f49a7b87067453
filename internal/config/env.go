package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envParams holds the loader settings that can be supplied through the
// environment.
type envParams struct {
	// UserFile overrides the location of the user override document.
	// Env: MADVIEW_CONFIG
	UserFile string `env:"MADVIEW_CONFIG"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *envParams) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
