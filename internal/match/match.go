// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The madview authors

// Package match implements the bookkeeping side of beam matching: which
// element parameters are eligible for adjustment per target quantity, and
// the set of constraints the user has placed before a matching run.
//
// The numeric optimization itself is performed by the simulation engine and
// is out of scope here.
package match

import (
	"sort"

	"github.com/accphys/madview/models"
)

// Table answers knob-eligibility lookups against the matching section of the
// configuration document. It is read-only and safe for concurrent use.
type Table struct {
	rules models.MatchingRules
}

// NewTable builds a Table over the given matching rules.
func NewTable(rules models.MatchingRules) *Table {
	return &Table{rules: rules}
}

// Knobs returns the parameter names a matching run may vary on elements of
// the given category to influence the given quantity. Returns nil when the
// quantity is not matchable or the category is not adjustable for it.
func (t *Table) Knobs(quantity, category string) []string {
	return t.rules[quantity][category]
}

// Quantities returns all matchable target quantities in sorted order.
func (t *Table) Quantities() []string {
	out := make([]string, 0, len(t.rules))
	for quantity := range t.rules {
		out = append(out, quantity)
	}
	sort.Strings(out)
	return out
}

// Categories returns the adjustable element categories for a quantity in
// sorted order.
func (t *Table) Categories(quantity string) []string {
	rules := t.rules[quantity]
	out := make([]string, 0, len(rules))
	for category := range rules {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Conjugate returns the quantity for the orthogonal axis: "envx" <-> "envy",
// "x" <-> "y". Quantities not ending in an axis letter are returned
// unchanged.
func Conjugate(quantity string) string {
	if quantity == "" {
		return quantity
	}
	switch quantity[len(quantity)-1] {
	case 'x':
		return quantity[:len(quantity)-1] + "y"
	case 'y':
		return quantity[:len(quantity)-1] + "x"
	default:
		return quantity
	}
}

// Constraint pins a target quantity to a value at one beam line element.
type Constraint struct {
	// Quantity is the constrained target quantity, e.g. "envx".
	Quantity string
	// Element is the name of the element the constraint is placed at.
	Element string
	// Category is the element's category tag, used to look up eligible
	// knobs.
	Category string
	// Value is the desired value in engine units.
	Value float64
}

// Session collects the constraints of one interactive matching run. Placing
// a second constraint for the same quantity on the same element replaces the
// first, mirroring how constraints are picked in the plot view.
//
// Session is not safe for concurrent use; a run belongs to a single view.
type Session struct {
	table       *Table
	constraints []Constraint
}

// NewSession starts an empty matching session over the given table.
func NewSession(table *Table) *Session {
	return &Session{table: table}
}

// AddConstraint records a constraint, replacing any existing constraint for
// the same quantity on the same element.
func (s *Session) AddConstraint(c Constraint) {
	s.RemoveConstraint(c.Quantity, c.Element)
	s.constraints = append(s.constraints, c)
}

// RemoveConstraint drops the constraint for quantity on element, if any.
// Returns whether a constraint was removed.
func (s *Session) RemoveConstraint(quantity, element string) bool {
	for i, c := range s.constraints {
		if c.Quantity == quantity && c.Element == element {
			s.constraints = append(s.constraints[:i], s.constraints[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops all constraints.
func (s *Session) Clear() {
	s.constraints = nil
}

// Constraints returns the recorded constraints in insertion order.
func (s *Session) Constraints() []Constraint {
	out := make([]Constraint, len(s.constraints))
	copy(out, s.constraints)
	return out
}

// Variables returns the sorted union of knobs that the current constraints
// make available: for every constraint, the parameters its element category
// may vary for its quantity. This is the variable set handed to the solver.
func (s *Session) Variables() []string {
	seen := make(map[string]struct{})
	for _, c := range s.constraints {
		for _, knob := range s.table.Knobs(c.Quantity, c.Category) {
			seen[knob] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for knob := range seen {
		out = append(out, knob)
	}
	sort.Strings(out)
	return out
}
