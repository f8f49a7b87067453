package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure classes of configuration loading.
var (
	// ErrParse indicates that a configuration file is not well-formed YAML.
	ErrParse = errors.New("configuration parse error")
	// ErrSchema indicates that a well-formed document violates the schema,
	// e.g. a unit name that does not resolve in the unit registry.
	ErrSchema = errors.New("configuration schema error")
)

// ParseError reports a configuration file that could not be read or parsed.
// It wraps ErrParse so callers can classify it with errors.Is.
type ParseError struct {
	// Path is the file the error originated from. Empty for the bundled
	// default document.
	Path string
	// Err is the underlying read or YAML error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("bundled configuration: %v", e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// SchemaError reports a document value that violates the configuration
// schema. It wraps ErrSchema so callers can classify it with errors.Is.
type SchemaError struct {
	// Section is the document section the value lives in,
	// e.g. "madx_units" or "line_view.unit".
	Section string
	// Key is the offending quantity key within the section.
	Key string
	// Err is the underlying validation error.
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Section, e.Key, e.Err)
}

func (e *SchemaError) Unwrap() []error {
	return []error{ErrSchema, e.Err}
}
