package encode

import (
	"github.com/framelab/framed/frame"
)

// Label replaces the named column with integer codes assigned by first
// occurrence: the first distinct value becomes 0, the next 1, and so on.
//
// Codes are stored as float64 to keep a uniform numeric type with the other
// encoders. The column keeps its position in the frame.
//
// Returns the new frame and the display-string to code mapping, or
// errs.ErrColumnNotFound if the column is absent.
func Label(f *frame.Frame, column string) (*frame.Frame, map[string]int, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, nil, err
	}

	codes := make(map[string]int, len(col.Values))
	encoded := make([]frame.Value, len(col.Values))
	for i, cell := range col.Values {
		s := frame.FormatValue(cell)
		code, ok := codes[s]
		if !ok {
			code = len(codes)
			codes[s] = code
		}
		encoded[i] = float64(code)
	}

	out, err := f.AddColumn(column, encoded)
	if err != nil {
		return nil, nil, err
	}

	return out, codes, nil
}

// Frequency replaces the named column with each value's relative frequency,
// i.e. count of the value divided by the row count.
//
// The column keeps its position in the frame. Returns the new frame and the
// display-string to frequency mapping, or errs.ErrColumnNotFound if the
// column is absent.
func Frequency(f *frame.Frame, column string) (*frame.Frame, map[string]float64, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[string]float64, len(col.Values))
	for _, cell := range col.Values {
		counts[frame.FormatValue(cell)]++
	}

	freqs := make(map[string]float64, len(counts))
	total := float64(len(col.Values))
	for s, n := range counts {
		freqs[s] = n / total
	}

	encoded := make([]frame.Value, len(col.Values))
	for i, cell := range col.Values {
		encoded[i] = freqs[frame.FormatValue(cell)]
	}

	out, err := f.AddColumn(column, encoded)
	if err != nil {
		return nil, nil, err
	}

	return out, freqs, nil
}
