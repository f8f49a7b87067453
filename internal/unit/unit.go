// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The madview authors

// Package unit implements the physical-unit registry the configuration is
// validated against, plus unit parsing, label rendering, and scalar
// conversion between engine units and display units.
package unit

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/accphys/madview/models"
)

// Dimension classifies a base unit. Units are convertible only within the
// same dimension.
type Dimension string

const (
	Length        Dimension = "length"
	Angle         Dimension = "angle"
	Time          Dimension = "time"
	Energy        Dimension = "energy"
	Mass          Dimension = "mass"
	Charge        Dimension = "charge"
	MagneticField Dimension = "magnetic field"
	Dimensionless Dimension = "1"
)

// ErrUnknownUnit indicates a unit name that does not resolve in the registry.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrIncompatible indicates a conversion between units of different
// dimensions.
var ErrIncompatible = errors.New("incompatible units")

// term is one base symbol raised to an integer power.
type term struct {
	symbol   string
	exponent int
	scale    float64 // SI factor of one unit of symbol
	dim      Dimension
}

// Unit is a product of registered base symbols raised to integer powers,
// e.g. "mm", "m^-2" or a composite like {T: 1, m: -1}. The zero value is
// the dimensionless unit.
type Unit struct {
	terms []term
}

// Label returns the plain-text rendering of the unit, e.g. "mm" or "m^-2".
// Composite units are rendered space-separated in symbol order.
func (u Unit) Label() string {
	if len(u.terms) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(u.terms))
	for _, t := range u.terms {
		if t.exponent == 1 {
			parts = append(parts, t.symbol)
		} else {
			parts = append(parts, t.symbol+"^"+strconv.Itoa(t.exponent))
		}
	}
	return strings.Join(parts, " ")
}

// AxisLabel returns the unit label wrapped in brackets for axis annotation,
// e.g. "[mm]". The dimensionless unit yields an empty string.
func (u Unit) AxisLabel() string {
	if u.IsDimensionless() {
		return ""
	}
	return "[" + u.Label() + "]"
}

// Scale returns the factor converting one of this unit into SI base units.
func (u Unit) Scale() float64 {
	scale := 1.0
	for _, t := range u.terms {
		scale *= math.Pow(t.scale, float64(t.exponent))
	}
	return scale
}

// IsDimensionless reports whether the unit reduces to a pure number.
func (u Unit) IsDimensionless() bool {
	for _, t := range u.terms {
		if t.dim != Dimensionless {
			return false
		}
	}
	return true
}

// dims returns the dimension vector of the unit.
func (u Unit) dims() map[Dimension]int {
	out := make(map[Dimension]int, len(u.terms))
	for _, t := range u.terms {
		if t.dim == Dimensionless {
			continue
		}
		out[t.dim] += t.exponent
	}
	for d, e := range out {
		if e == 0 {
			delete(out, d)
		}
	}
	return out
}

// Compatible reports whether values can be converted between u and v.
func (u Unit) Compatible(v Unit) bool {
	ud, vd := u.dims(), v.dims()
	if len(ud) != len(vd) {
		return false
	}
	for d, e := range ud {
		if vd[d] != e {
			return false
		}
	}
	return true
}

// Convert converts value from u into v. Returns ErrIncompatible when the
// units do not share a dimension vector.
func (u Unit) Convert(value float64, v Unit) (float64, error) {
	if !u.Compatible(v) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIncompatible, u.Label(), v.Label())
	}
	return value * u.Scale() / v.Scale(), nil
}

// base is one registered unit symbol.
type base struct {
	scale float64
	dim   Dimension
}

// Registry resolves unit names to Units. It is immutable after construction
// and safe for concurrent use.
type Registry struct {
	symbols map[string]base
}

// Default returns the built-in registry covering the unit vocabulary of the
// configuration: lengths, angles, energies, the atomic mass unit "u", the
// elementary charge "e", magnetic field, and the dimensionless "1".
func Default() *Registry {
	return &Registry{symbols: map[string]base{
		"m":  {1, Length},
		"cm": {1e-2, Length},
		"mm": {1e-3, Length},
		"um": {1e-6, Length},

		"rad":  {1, Angle},
		"mrad": {1e-3, Angle},
		"deg":  {math.Pi / 180, Angle},

		"s":  {1, Time},
		"ms": {1e-3, Time},
		"ns": {1e-9, Time},

		"eV":  {1, Energy},
		"keV": {1e3, Energy},
		"MeV": {1e6, Energy},
		"GeV": {1e9, Energy},

		"u": {1, Mass},
		"e": {1, Charge},
		"T": {1, MagneticField},

		"1": {1, Dimensionless},
	}}
}

// Parse resolves a unit name with an optional integer exponent suffix
// ("m", "m^-2"). Returns ErrUnknownUnit for unregistered symbols.
func (r *Registry) Parse(name string) (Unit, error) {
	symbol, exponent := name, 1
	if i := strings.IndexByte(name, '^'); i >= 0 {
		symbol = name[:i]
		var err error
		exponent, err = strconv.Atoi(name[i+1:])
		if err != nil {
			return Unit{}, fmt.Errorf("bad exponent in unit %q: %w", name, err)
		}
	}
	b, ok := r.symbols[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return Unit{terms: []term{{symbol, exponent, b.scale, b.dim}}}, nil
}

// FromPowers builds a composite unit from a name -> exponent map, the
// mapping shape of a unit spec. Symbols are ordered alphabetically so the
// rendered label is deterministic.
func (r *Registry) FromPowers(powers map[string]int) (Unit, error) {
	names := make([]string, 0, len(powers))
	for name := range powers {
		names = append(names, name)
	}
	sort.Strings(names)

	var u Unit
	for _, name := range names {
		b, ok := r.symbols[name]
		if !ok {
			return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
		}
		u.terms = append(u.terms, term{name, powers[name], b.scale, b.dim})
	}
	return u, nil
}

// FromSpec resolves a unit spec into a slice of units. Scalar and mapping
// specs yield one unit; the positional sequence shape yields one unit per
// coefficient order. A zero spec yields the dimensionless unit.
func (r *Registry) FromSpec(spec models.UnitSpec) ([]Unit, error) {
	switch {
	case len(spec.Names) > 0:
		units := make([]Unit, 0, len(spec.Names))
		for i, name := range spec.Names {
			u, err := r.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("order %d: %w", i, err)
			}
			units = append(units, u)
		}
		return units, nil
	case len(spec.Powers) > 0:
		u, err := r.FromPowers(spec.Powers)
		if err != nil {
			return nil, err
		}
		return []Unit{u}, nil
	case spec.Name != "":
		u, err := r.Parse(spec.Name)
		if err != nil {
			return nil, err
		}
		return []Unit{u}, nil
	default:
		return []Unit{{}}, nil
	}
}
