package config

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"

	"github.com/accphys/madview/internal/logger"
)

// mergeDocs deep-merges override onto base and returns the result. Nested
// mappings merge recursively per key; scalars and sequences from the
// override replace the base value wholesale. Neither input is modified.
//
// When base and override disagree on the shape of a key (mapping on one
// side, scalar or sequence on the other) the override wins wholesale and a
// schema-mismatch warning is logged.
func mergeDocs(base, override document, log *logger.Logger) (document, error) {
	warnShapeMismatches(base, override, "", log)

	merged := deepCopy(base)
	if err := mergo.Merge(&merged, override, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}
	return merged, nil
}

// warnShapeMismatches walks both trees in parallel and logs every key where
// the default and the override carry structurally different value kinds.
func warnShapeMismatches(base, override document, prefix string, log *logger.Logger) {
	for key, overrideVal := range override {
		baseVal, ok := base[key]
		if !ok || baseVal == nil || overrideVal == nil {
			continue
		}

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		baseMap, baseIsMap := baseVal.(document)
		overrideMap, overrideIsMap := overrideVal.(document)
		switch {
		case baseIsMap && overrideIsMap:
			warnShapeMismatches(baseMap, overrideMap, path, log)
		case baseIsMap != overrideIsMap:
			log.Warn().
				Str("key", path).
				Str("default_shape", shapeOf(baseVal)).
				Str("override_shape", shapeOf(overrideVal)).
				Msg("override changes value shape; replacing default wholesale")
		}
	}
}

func shapeOf(v any) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map:
		return "mapping"
	case reflect.Slice:
		return "sequence"
	default:
		return "scalar"
	}
}

// deepCopy clones a document so merging never aliases the original trees.
func deepCopy(doc document) document {
	out := make(document, len(doc))
	for key, val := range doc {
		out[key] = deepCopyValue(val)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case document:
		return deepCopy(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
