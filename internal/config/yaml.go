package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/accphys/madview/models"
)

// document is the untyped tree form of a configuration document. Merging
// happens on this form; the typed models.Document is decoded from the merge
// result.
type document = map[string]any

// parseYAML decodes raw YAML bytes into an untyped document. An empty or
// comments-only input yields an empty document.
func parseYAML(raw []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}
	if doc == nil {
		doc = document{}
	}
	return doc, nil
}

// parseYAMLFile reads and decodes one configuration file. Errors carry the
// file path via *ParseError.
func parseYAMLFile(path string) (document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("error reading a yaml file: %w", err)}
	}

	doc, err := parseYAML(raw)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// decodeDocument converts the merged untyped tree into the typed document.
// Going through a marshal/unmarshal round trip keeps all custom unmarshalers
// (e.g. the polymorphic unit specs) on the single YAML decode path.
func decodeDocument(doc document) (models.Document, error) {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return models.Document{}, &ParseError{Err: fmt.Errorf("error re-encoding merged configs: %w", err)}
	}

	var typed models.Document
	if err := yaml.Unmarshal(raw, &typed); err != nil {
		return models.Document{}, &ParseError{Err: fmt.Errorf("error decoding merged configs: %w", err)}
	}
	return typed, nil
}
