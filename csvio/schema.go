package csvio

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/framelab/framed/frame"
)

// Schema forces column kinds when loading CSV data, overriding per-cell
// inference. Columns not listed in the schema are still inferred.
type Schema struct {
	// Columns maps column name to kind: "string", "float", "int", or "bool".
	Columns map[string]string `yaml:"columns"`
}

// LoadSchema parses a YAML column schema from r.
func LoadSchema(r io.Reader) (*Schema, error) {
	var s Schema
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	for column, kind := range s.Columns {
		switch kind {
		case "string", "float", "int", "bool":
		default:
			return nil, fmt.Errorf("schema column %q has unknown kind %q", column, kind)
		}
	}

	return &s, nil
}

// LoadSchemaFile parses a YAML column schema from a file.
func LoadSchemaFile(path string) (*Schema, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadSchema(file)
}

// coerce converts a raw CSV cell to the schema kind. Missing tokens become
// nil regardless of kind.
func (s *Schema) coerce(column, raw string) (frame.Value, error) {
	if frame.IsMissing(raw) {
		return nil, nil
	}

	switch s.Columns[column] {
	case "string":
		return raw, nil
	case "float":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: cannot parse %q as float: %w", column, raw, err)
		}

		return v, nil
	case "int":
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: cannot parse %q as int: %w", column, raw, err)
		}

		return v, nil
	case "bool":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("column %q: cannot parse %q as bool: %w", column, raw, err)
		}

		return v, nil
	default:
		// Not in the schema: fall back to inference.
		return inferValue(raw), nil
	}
}
