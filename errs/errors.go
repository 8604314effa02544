// Package errs defines the sentinel errors shared across framed packages.
//
// Callers can match these with errors.Is after unwrapping, e.g.:
//
//	_, _, err := encode.OneHot(f, "size")
//	if errors.Is(err, errs.ErrColumnNotFound) {
//	    // referenced column is absent from the frame
//	}
package errs

import "errors"

var (
	// ErrColumnNotFound is returned when a referenced column is absent from the frame.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnExists is returned when adding a column whose name is already taken
	// and replacement was not requested.
	ErrColumnExists = errors.New("column already exists")

	// ErrLengthMismatch is returned when a column's length does not match the
	// frame's row count.
	ErrLengthMismatch = errors.New("column length mismatch")

	// ErrNotNumeric is returned when an operation requires numeric values and the
	// column holds something else.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrEmptyFrame is returned when an operation requires at least one column.
	ErrEmptyFrame = errors.New("frame has no columns")

	// ErrInvalidMagic is returned when snapshot data does not start with the
	// expected magic number.
	ErrInvalidMagic = errors.New("invalid snapshot magic")

	// ErrUnsupportedVersion is returned when snapshot data was written by an
	// unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrChecksumMismatch is returned when the snapshot payload checksum does not
	// match the stored value.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrTruncatedData is returned when snapshot data ends before the decoder
	// expects it to.
	ErrTruncatedData = errors.New("truncated snapshot data")

	// ErrUnknownSchemaColumn is returned when a schema names a column that the
	// CSV input does not have.
	ErrUnknownSchemaColumn = errors.New("schema references unknown column")
)
