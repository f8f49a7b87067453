// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The madview authors

package config

import (
	_ "embed"

	"github.com/accphys/madview/internal/logger"
	"github.com/accphys/madview/models"
)

//go:embed default.yml
var defaultYAML []byte

// Config is the effective application configuration: the typed document
// decoded from the merge of defaults and user override, plus loading
// metadata. It is immutable after loading and safe for concurrent readers.
type Config struct {
	// Document is the validated, typed configuration document.
	Document models.Document

	// UserFile is the override file path that was considered, whether or
	// not it existed.
	UserFile string

	// UserFileLoaded reports whether the override file existed and was
	// merged onto the defaults.
	UserFileLoaded bool

	// raw is the merged untyped tree, kept for lossless re-emission.
	raw document
}

// Raw returns a copy of the merged untyped document tree. The copy may be
// freely modified, e.g. for serialization with custom post-processing.
func (c *Config) Raw() map[string]any {
	return deepCopy(c.raw)
}

// GetConfig loads, merges, and validates the application configuration from
// the bundled defaults and the user override file. The override location is
// resolved from the MADVIEW_CONFIG environment variable, falling back to the
// per-user default path. A missing override file is not an error; the
// defaults apply unchanged.
//
// Returns a fully populated *Config, or an error that matches ErrParse or
// ErrSchema via errors.Is.
func GetConfig(log *logger.Logger) (*Config, error) {
	return newConfigBuilder(log).
		withDefaults().
		withUserFile("").
		build()
}

// GetConfigFromFile is GetConfig with an explicit override file path,
// bypassing environment and default path resolution. Unlike the resolved
// path, an explicitly named file must exist.
func GetConfigFromFile(path string, log *logger.Logger) (*Config, error) {
	return newConfigBuilder(log).
		withDefaults().
		withUserFile(path).
		build()
}
