package models

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// UnitSpec is one unit entry from madx_units or line_view.unit. The YAML
// value takes one of three shapes, and exactly one of the fields is set:
//
//	energy: MeV              -> Name
//	knl: [rad, m^-1, m^-2]   -> Names (positional, e.g. multipole orders)
//	k1: {m: -2}              -> Powers (compound unit as name -> exponent)
type UnitSpec struct {
	// Name is the unit name for scalar-valued entries.
	Name string

	// Names holds positional unit names for sequence-valued entries.
	// Element i applies to coefficient order i.
	Names []string

	// Powers holds a compound unit as a unit name -> exponent map.
	Powers map[string]int
}

// UnmarshalYAML decodes any of the three supported YAML shapes.
// It implements yaml.Unmarshaler.
func (s *UnitSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = UnitSpec{Name: value.Value}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("unit sequence: %w", err)
		}
		*s = UnitSpec{Names: names}
		return nil
	case yaml.MappingNode:
		var powers map[string]int
		if err := value.Decode(&powers); err != nil {
			return fmt.Errorf("unit mapping: %w", err)
		}
		*s = UnitSpec{Powers: powers}
		return nil
	default:
		return fmt.Errorf("unsupported unit value on line %d", value.Line)
	}
}

// MarshalYAML re-emits the spec in its original shape.
// It implements yaml.Marshaler.
func (s UnitSpec) MarshalYAML() (any, error) {
	switch {
	case len(s.Names) > 0:
		return s.Names, nil
	case len(s.Powers) > 0:
		return s.Powers, nil
	default:
		return s.Name, nil
	}
}

// IsZero reports whether the spec carries no unit information.
// An entry missing from the document decodes to a zero spec.
func (s UnitSpec) IsZero() bool {
	return s.Name == "" && len(s.Names) == 0 && len(s.Powers) == 0
}

// IsSequence reports whether the spec uses the positional sequence shape.
func (s UnitSpec) IsSequence() bool {
	return len(s.Names) > 0
}

// String returns a compact human-readable form, e.g. "MeV",
// "[rad m^-1 m^-2]" or "m^-2".
func (s UnitSpec) String() string {
	switch {
	case len(s.Names) > 0:
		out := "["
		for i, n := range s.Names {
			if i > 0 {
				out += " "
			}
			out += n
		}
		return out + "]"
	case len(s.Powers) > 0:
		names := make([]string, 0, len(s.Powers))
		for name := range s.Powers {
			names = append(names, name)
		}
		sort.Strings(names)
		out := ""
		for _, name := range names {
			if out != "" {
				out += " "
			}
			if exp := s.Powers[name]; exp == 1 {
				out += name
			} else {
				out += fmt.Sprintf("%s^%d", name, exp)
			}
		}
		return out
	default:
		return s.Name
	}
}
