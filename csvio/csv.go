package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/framelab/framed/errs"
	"github.com/framelab/framed/frame"
)

type config struct {
	schema *Schema
}

// Option configures Load.
type Option func(*config) error

// WithSchema forces column kinds per the given schema instead of per-cell
// inference. Schema columns must exist in the CSV header.
func WithSchema(schema *Schema) Option {
	return func(cfg *config) error {
		cfg.schema = schema
		return nil
	}
}

// Load reads CSV data into a frame.
//
// The first record is the header and supplies column names. Cell kinds are
// inferred unless a schema overrides them; missing tokens ("", "NA", "NaN")
// load as nil.
//
// Returns:
//   - *frame.Frame: The loaded frame.
//   - error: Read/parse failure, errs.ErrUnknownSchemaColumn if the schema
//     names a column the header lacks.
func Load(r io.Reader, opts ...Option) (*frame.Frame, error) {
	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header row", errs.ErrEmptyFrame)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if cfg.schema != nil {
		known := make(map[string]struct{}, len(header))
		for _, name := range header {
			known[name] = struct{}{}
		}
		for column := range cfg.schema.Columns {
			if _, ok := known[column]; !ok {
				return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSchemaColumn, column)
			}
		}
	}

	columns := make([][]frame.Value, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		for i, raw := range record {
			var v frame.Value
			if cfg.schema != nil {
				v, err = cfg.schema.coerce(header[i], raw)
				if err != nil {
					return nil, err
				}
			} else {
				v = inferValue(raw)
			}
			columns[i] = append(columns[i], v)
		}
	}

	cols := make([]frame.Column, len(header))
	for i, name := range header {
		cols[i] = frame.Column{Name: name, Values: columns[i]}
	}

	return frame.New(cols...)
}

// LoadFile reads a CSV file into a frame.
func LoadFile(path string, opts ...Option) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file, opts...)
}

// Save writes a frame as CSV: header row first, then one record per row with
// each cell's display string. nil cells are written as "NA".
func Save(w io.Writer, f *frame.Frame) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(f.Names()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, f.NumCols())
	for r := 0; r < f.NumRows(); r++ {
		for i, v := range f.Row(r) {
			record[i] = frame.FormatValue(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r, err)
		}
	}
	writer.Flush()

	return writer.Error()
}

// SaveFile writes a frame to a CSV file, creating or truncating it.
func SaveFile(path string, f *frame.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Save(file, f); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// inferValue guesses a cell's kind: missing tokens load as nil, numbers as
// float64, "true"/"false" as bool, anything else as a string.
func inferValue(raw string) frame.Value {
	if frame.IsMissing(raw) {
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	if raw == "true" || raw == "false" {
		return raw == "true"
	}

	return raw
}
