// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The madview authors

package config

import (
	"errors"
	"sort"

	"github.com/accphys/madview/internal/unit"
	"github.com/accphys/madview/models"
)

// validate checks that the merged document satisfies the schema invariants
// before it is handed to the application.
//
// Enforced rules:
//   - every unit entry in madx_units resolves in the unit registry, each
//     element independently for sequence-valued entries;
//   - every unit entry in line_view.unit resolves in the unit registry.
//
// Labels, titles, and style attributes are deliberately not validated: label
// keys are only advisory, and style attributes are opaque to this layer.
//
// Failing fast here keeps unit errors out of rendering and matching code,
// where they would surface far from their cause.
func (cfg *Config) validate() error {
	registry := unit.Default()

	var errs []error
	errs = append(errs, validateUnits(registry, "madx_units", cfg.Document.MadxUnits)...)
	errs = append(errs, validateUnits(registry, "line_view.unit", cfg.Document.LineView.Unit)...)

	return errors.Join(errs...)
}

func validateUnits(registry *unit.Registry, section string, specs map[string]models.UnitSpec) []error {
	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		if _, err := registry.FromSpec(specs[key]); err != nil {
			errs = append(errs, &SchemaError{Section: section, Key: key, Err: err})
		}
	}
	return errs
}
