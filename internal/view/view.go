// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The madview authors

// Package view resolves display settings for plot views out of the
// configuration document: tab titles, axis labels with unit annotation, and
// curve/element/constraint styling.
package view

import (
	"fmt"
	"strings"

	"github.com/accphys/madview/internal/unit"
	"github.com/accphys/madview/models"
)

// Resolver answers display-setting lookups against a loaded line_view
// section. It performs no validation; the document has been validated during
// loading. Resolver is read-only and safe for concurrent use.
type Resolver struct {
	conf     models.LineView
	registry *unit.Registry
}

// NewResolver builds a Resolver over the given line_view section.
func NewResolver(conf models.LineView) *Resolver {
	return &Resolver{conf: conf, registry: unit.Default()}
}

// Title returns the tab title for a curve base name. Keys of the title map
// are matched as prefixes of basename, longest match first; the empty-string
// key is the catch-all fallback. Returns the base name itself when nothing
// matches at all.
func (r *Resolver) Title(basename string) string {
	best, bestLen := "", -1
	for prefix, title := range r.conf.Title {
		if len(prefix) > bestLen && strings.HasPrefix(basename, prefix) {
			best, bestLen = title, len(prefix)
		}
	}
	if bestLen < 0 {
		return basename
	}
	return best
}

// DisplayUnit returns the display unit configured for a quantity. Quantities
// without a configured unit display dimensionless.
func (r *Resolver) DisplayUnit(name string) (unit.Unit, error) {
	spec, ok := r.conf.Unit[name]
	if !ok {
		return unit.Unit{}, nil
	}
	units, err := r.registry.FromSpec(spec)
	if err != nil {
		return unit.Unit{}, fmt.Errorf("display unit of %q: %w", name, err)
	}
	return units[0], nil
}

// AxisLabel returns the axis annotation for a quantity: its label text
// followed by the bracketed unit label, e.g. "$\Delta x$ [mm]". Quantities
// without a label entry fall back to their name.
func (r *Resolver) AxisLabel(name string) (string, error) {
	label, ok := r.conf.Label[name]
	if !ok {
		label = name
	}

	u, err := r.DisplayUnit(name)
	if err != nil {
		return "", err
	}
	if ul := u.AxisLabel(); ul != "" {
		label += " " + ul
	}
	return label, nil
}

// CurveStyle returns the plot attributes for a TWISS curve. Styles are keyed
// by the trailing axis letter of the quantity name, so "envx" and "posx"
// share the "x" style.
func (r *Resolver) CurveStyle(name string) models.Style {
	if name == "" {
		return nil
	}
	return r.conf.CurveStyle[name[len(name)-1:]]
}

// ElementStyle returns the drawing attributes for an element category, or
// nil when the category has no styling (such elements are not drawn).
func (r *Resolver) ElementStyle(category string) models.Style {
	return r.conf.ElementStyle[category]
}

// ConstraintStyle returns the marker attributes for matching constraints.
func (r *Resolver) ConstraintStyle() models.Style {
	return r.conf.ConstraintStyle
}

// SelectStyle returns the line attributes for the element selection
// indicator.
func (r *Resolver) SelectStyle() models.Style {
	return r.conf.SelectStyle
}

// CurvePair expands a curve base name into its x/y quantity pair, e.g.
// "env" -> ("envx", "envy"). Every view plots such a conjugate pair into
// two stacked subplots sharing the s axis.
func CurvePair(basename string) (xname, yname string) {
	return basename + "x", basename + "y"
}
