// Package encode provides categorical encoders that turn string-like columns
// into numeric feature columns.
//
// Three encoders are available:
//
//   - OneHot: replaces a column with one 0.0/1.0 indicator column per distinct
//     value, the standard representation for unordered categories.
//   - Label: replaces a column with integer codes assigned by first occurrence.
//   - Frequency: replaces a column with each value's relative frequency.
//
// All encoders are pure functions from (frame, column name) to a new frame;
// the input frame is never modified. Distinct values are discovered fresh on
// every call, in order of first appearance in the column (not sorted order),
// so generated column order is deterministic for a given input.
//
// # One-hot example
//
//	f, _ := frame.New(
//	    frame.Col("id", 1, 2, 3),
//	    frame.Col("color", "red", "blue", "red"),
//	)
//	out, categories, err := encode.OneHot(f, "color")
//	// out columns: id, color_red, color_blue
//	// categories:  [color_red color_blue]
//
// Calling OneHot again on an already-encoded frame is safe: stale indicator
// columns from a previous pass are removed by name before new ones are built.
package encode
