package frame

import (
	"fmt"

	"github.com/framelab/framed/errs"
)

// Column is a named vector of values.
//
// The Values slice is owned by the enclosing Frame; callers that need to keep
// a modified copy should work on a Clone of the frame instead.
type Column struct {
	Name   string
	Values []Value
}

// Col is a convenience constructor for building columns inline:
//
//	frame.Col("color", "red", "blue", "red")
func Col(name string, values ...Value) Column {
	return Column{Name: name, Values: values}
}

// Frame is an ordered collection of named columns aligned by row index.
//
// The zero value is not usable; construct frames with New. All methods that
// change the column set return a new Frame and leave the receiver untouched.
type Frame struct {
	cols  []Column
	index map[string]int
}

// New creates a frame from the given columns.
//
// Column order is preserved as given. All columns must have the same length,
// and column names must be unique.
//
// Returns:
//   - *Frame: The created frame.
//   - error: errs.ErrLengthMismatch for ragged columns, errs.ErrColumnExists
//     for duplicate names.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}

	rows := -1
	for _, col := range cols {
		if rows == -1 {
			rows = len(col.Values)
		} else if len(col.Values) != rows {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d",
				errs.ErrLengthMismatch, col.Name, len(col.Values), rows)
		}

		if _, ok := f.index[col.Name]; ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrColumnExists, col.Name)
		}

		f.index[col.Name] = len(f.cols)
		f.cols = append(f.cols, Column{Name: col.Name, Values: cloneValues(col.Values)})
	}

	return f, nil
}

// NumRows returns the number of rows. A frame with no columns has zero rows.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}

	return len(f.cols[0].Values)
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.cols)
}

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, col := range f.cols {
		names[i] = col.Name
	}

	return names
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the column with the given name.
//
// The returned Column shares its Values slice with the frame; treat it as
// read-only.
//
// Returns:
//   - Column: The named column.
//   - error: errs.ErrColumnNotFound if the name is absent.
func (f *Frame) Column(name string) (Column, error) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}

	return f.cols[i], nil
}

// AddColumn returns a new frame with the named column set to values.
//
// If the column already exists it is replaced in place, keeping its position;
// otherwise the column is appended after the existing columns. The values
// length must match the frame's row count unless the frame is empty.
func (f *Frame) AddColumn(name string, values []Value) (*Frame, error) {
	if len(f.cols) > 0 && len(values) != f.NumRows() {
		return nil, fmt.Errorf("%w: column %q has %d values, want %d",
			errs.ErrLengthMismatch, name, len(values), f.NumRows())
	}

	out := f.Clone()
	if i, ok := out.index[name]; ok {
		out.cols[i].Values = cloneValues(values)
		return out, nil
	}

	out.index[name] = len(out.cols)
	out.cols = append(out.cols, Column{Name: name, Values: cloneValues(values)})

	return out, nil
}

// DropColumns returns a new frame without the named columns.
//
// Returns errs.ErrColumnNotFound if any name is absent; the receiver is
// unchanged in that case.
func (f *Frame) DropColumns(names ...string) (*Frame, error) {
	for _, name := range names {
		if !f.Has(name) {
			return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
		}
	}

	return f.DropColumnsIfPresent(names...), nil
}

// DropColumnsIfPresent returns a new frame without the named columns,
// silently ignoring names that do not exist.
//
// This is the re-encode safety hook used by the encode package: category
// columns left over from a previous encoding pass are removed by name before
// fresh ones are generated.
func (f *Frame) DropColumnsIfPresent(names ...string) *Frame {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}

	out := &Frame{
		cols:  make([]Column, 0, len(f.cols)),
		index: make(map[string]int, len(f.cols)),
	}
	for _, col := range f.cols {
		if _, ok := drop[col.Name]; ok {
			continue
		}
		out.index[col.Name] = len(out.cols)
		out.cols = append(out.cols, Column{Name: col.Name, Values: cloneValues(col.Values)})
	}

	return out
}

// Clone returns a deep copy of the frame. Cell values themselves are scalars
// and copied by assignment.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		cols:  make([]Column, len(f.cols)),
		index: make(map[string]int, len(f.index)),
	}
	for i, col := range f.cols {
		out.cols[i] = Column{Name: col.Name, Values: cloneValues(col.Values)}
		out.index[col.Name] = i
	}

	return out
}

// Row returns the values of row i in column order.
// Panics if i is out of range, matching slice indexing semantics.
func (f *Frame) Row(i int) []Value {
	row := make([]Value, len(f.cols))
	for j, col := range f.cols {
		row[j] = col.Values[i]
	}

	return row
}

// Equal reports whether two frames have identical column names, order, and
// cell values. Cell comparison uses == on the dynamic values.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || len(f.cols) != len(other.cols) {
		return false
	}
	for i, col := range f.cols {
		o := other.cols[i]
		if col.Name != o.Name || len(col.Values) != len(o.Values) {
			return false
		}
		for r, v := range col.Values {
			if v != o.Values[r] {
				return false
			}
		}
	}

	return true
}

func cloneValues(values []Value) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = normalizeValue(v)
	}

	return out
}
