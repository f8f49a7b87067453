package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// UserConfigPath returns the platform-appropriate location of the user
// override file: ~/.madgui/config.yml on Unix-like systems, the equivalent
// under %APPDATA% on Windows.
func UserConfigPath() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "madgui", "config.yml"), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".madgui", "config.yml"), nil
}
