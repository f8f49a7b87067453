package models

// Document is the effective configuration document of the application.
// It is assembled once at startup by deep-merging the bundled defaults with
// the optional user override file and is treated as read-only afterwards, so
// it may be shared freely between goroutines.
type Document struct {
	// LineView groups all settings consumed by the plot views: display
	// units, axis labels, tab titles, and curve/element styling.
	LineView LineView `yaml:"line_view"`

	// MadxUnits maps engine quantity names (element attributes, TWISS
	// columns, beam parameters) to the physical units the simulation
	// engine expresses them in.
	MadxUnits map[string]UnitSpec `yaml:"madx_units"`

	// Matching lists, per target quantity, which element parameters are
	// eligible for adjustment during a matching run, grouped by element
	// category.
	Matching MatchingRules `yaml:"matching"`
}

// LineView holds the per-view display configuration.
type LineView struct {
	// Unit maps a quantity name to the unit it is displayed in.
	// Display units may differ from the engine units in MadxUnits
	// (e.g. envelopes are computed in "m" but shown in "mm").
	Unit map[string]UnitSpec `yaml:"unit"`

	// Label maps a quantity name to its axis label text. Labels may
	// contain TeX-style math markup and are passed through to the
	// renderer unchanged.
	Label map[string]string `yaml:"label"`

	// Title maps a curve-name prefix to a tab title. Consumers resolve
	// titles by prefix match on the curve base name ("env" matches
	// "envx"/"envy"); the empty-string key is the catch-all fallback.
	Title map[string]string `yaml:"title"`

	// CurveStyle maps an axis letter ("x" or "y") to the plot
	// attributes of the corresponding TWISS curve.
	CurveStyle map[string]Style `yaml:"curve_style"`

	// ElementStyle maps an element category tag (e.g. "f-quadrupole")
	// to the attributes used when drawing that element into the figure.
	ElementStyle map[string]Style `yaml:"element_style"`

	// ConstraintStyle holds the marker attributes for drawn matching
	// constraints.
	ConstraintStyle Style `yaml:"constraint_style"`

	// SelectStyle holds the line attributes for the element selection
	// indicator.
	SelectStyle Style `yaml:"select_style"`
}

// Style is an opaque bag of plot attributes (colors, markers, line styles,
// numeric ranges). Attribute names are not validated here; unknown names are
// the renderer's concern.
type Style map[string]any

// MatchingRules maps a target quantity to the element parameters that a
// matching run may vary, grouped by element category:
//
//	quantity -> element category -> parameter names
type MatchingRules map[string]map[string][]string
