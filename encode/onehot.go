package encode

import (
	"github.com/framelab/framed/frame"
)

// OneHot replaces the named column with one float64 indicator column per
// distinct value observed in it.
//
// Distinct values are discovered in first-occurrence order and identified by
// their display string (frame.FormatValue), which is also what the generated
// column names embed: the indicator for value v in column c is named "c_v".
// A nil cell is its own category and produces the column "c_NA".
//
// Before encoding, any existing columns whose names collide with the generated
// category names are removed silently. This makes repeated encoding of the
// same column safe: a frame that was already encoded can be encoded again
// without duplicating columns or erroring.
//
// The source column is consumed by the encoding. All other columns keep their
// relative order; indicator columns are appended at the end in discovery
// order, holding 1.0 where the row's original value matches the category and
// 0.0 everywhere else. Indicators are always float64, never bool or int.
//
// Parameters:
//   - f: Input frame. Never modified.
//   - column: Name of the categorical column to encode.
//
// Returns:
//   - *frame.Frame: New frame with the column replaced by indicators.
//   - []string: Generated indicator column names in discovery order, for
//     later cleanup or feature-selection bookkeeping.
//   - error: errs.ErrColumnNotFound if the column is absent.
func OneHot(f *frame.Frame, column string) (*frame.Frame, []string, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, nil, err
	}

	values := discover(col.Values)

	categories := make([]string, len(values))
	for i, v := range values {
		categories[i] = column + "_" + v
	}

	// Remove indicators left over from a previous encoding pass, then the
	// source column itself.
	out := f.DropColumnsIfPresent(categories...)
	out, err = out.DropColumns(column)
	if err != nil {
		return nil, nil, err
	}

	for i, v := range values {
		indicator := make([]frame.Value, len(col.Values))
		for r, cell := range col.Values {
			if frame.FormatValue(cell) == v {
				indicator[r] = 1.0
			} else {
				indicator[r] = 0.0
			}
		}
		out, err = out.AddColumn(categories[i], indicator)
		if err != nil {
			return nil, nil, err
		}
	}

	return out, categories, nil
}

// discover returns the distinct display strings of values in order of first
// appearance.
func discover(values []frame.Value) []string {
	seen := make(map[string]struct{}, len(values))
	var distinct []string
	for _, v := range values {
		s := frame.FormatValue(v)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		distinct = append(distinct, s)
	}

	return distinct
}
