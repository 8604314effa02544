// Package framed provides a small in-memory dataframe with categorical
// encoding, data preparation, CSV i/o, and a compressed binary snapshot
// format.
//
// The core operation is one-hot encoding: replacing a categorical column
// with one 0.0/1.0 indicator column per distinct value, while reporting the
// generated column names so callers can track or remove them later.
//
// # Basic Usage
//
// Building a frame and one-hot encoding a column:
//
//	import "github.com/framelab/framed"
//
//	f, err := framed.New(
//	    framed.Col("id", 1, 2, 3),
//	    framed.Col("color", "red", "blue", "red"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	encoded, categories, err := framed.OneHot(f, "color")
//	// encoded columns: id, color_red, color_blue
//	// categories:      [color_red color_blue]
//
// Persisting a frame as a compressed snapshot:
//
//	data, _ := framed.Marshal(encoded, snapshot.WithCompression(format.CompressionZstd))
//	restored, _ := framed.Unmarshal(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the frame,
// encode, and snapshot packages, simplifying the most common use cases. For
// imputation and scaling use the prep package, for CSV files the csvio
// package, and for fine-grained control use the subpackages directly.
package framed

import (
	"github.com/framelab/framed/encode"
	"github.com/framelab/framed/frame"
	"github.com/framelab/framed/internal/hash"
	"github.com/framelab/framed/snapshot"
)

// Col builds a column inline for New. See frame.Col.
func Col(name string, values ...frame.Value) frame.Column {
	return frame.Col(name, values...)
}

// New creates a frame from the given columns. See frame.New.
func New(cols ...frame.Column) (*frame.Frame, error) {
	return frame.New(cols...)
}

// OneHot replaces the named column with one float64 indicator column per
// distinct value, in first-occurrence order, and returns the generated
// column names.
//
// Calling OneHot on an already-encoded frame is safe: stale indicator
// columns from a previous pass are removed by name before fresh ones are
// built. See encode.OneHot for the full contract.
//
// Example:
//
//	encoded, categories, err := framed.OneHot(f, "color")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// remove the indicators again later:
//	trimmed := encoded.DropColumnsIfPresent(categories...)
func OneHot(f *frame.Frame, column string) (*frame.Frame, []string, error) {
	return encode.OneHot(f, column)
}

// Marshal encodes a frame into a snapshot blob. See snapshot.Marshal for the
// available options.
func Marshal(f *frame.Frame, opts ...snapshot.Option) ([]byte, error) {
	return snapshot.Marshal(f, opts...)
}

// Unmarshal decodes a snapshot blob back into a frame. See snapshot.Unmarshal.
func Unmarshal(data []byte) (*frame.Frame, error) {
	return snapshot.Unmarshal(data)
}

// ColumnID converts a column name to its 64-bit xxHash64 identifier, the same
// id stored in snapshot column directories.
//
// Use it to match snapshot directory entries against known column names
// without decoding the whole payload.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}
