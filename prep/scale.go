package prep

import (
	"fmt"

	"github.com/framelab/framed/errs"
	"github.com/framelab/framed/frame"
	"github.com/framelab/framed/internal/stats"
)

// Standardize scales the named columns to zero mean and unit variance.
//
// Every cell in a target column must be numeric (frame.AsFloat); the scaled
// column holds float64 values. A zero-variance column scales to all zeros.
// Returns errs.ErrColumnNotFound for unknown columns and errs.ErrNotNumeric
// for non-numeric cells.
func Standardize(f *frame.Frame, columns ...string) (*frame.Frame, error) {
	return scale(f, columns, func(nums []float64) []float64 {
		mean := stats.Mean(nums)
		std := stats.Std(nums)

		out := make([]float64, len(nums))
		if std == 0 {
			return out
		}
		for i, v := range nums {
			out[i] = (v - mean) / std
		}

		return out
	})
}

// MinMax scales the named columns to the [0, 1] range.
//
// Same contracts as Standardize; a constant column scales to all zeros.
func MinMax(f *frame.Frame, columns ...string) (*frame.Frame, error) {
	return scale(f, columns, func(nums []float64) []float64 {
		lo, hi := stats.MinMax(nums)

		out := make([]float64, len(nums))
		if hi == lo {
			return out
		}
		for i, v := range nums {
			out[i] = (v - lo) / (hi - lo)
		}

		return out
	})
}

func scale(f *frame.Frame, columns []string, fn func([]float64) []float64) (*frame.Frame, error) {
	out := f
	for _, column := range columns {
		col, err := out.Column(column)
		if err != nil {
			return nil, err
		}

		nums := make([]float64, len(col.Values))
		for i, v := range col.Values {
			num, ok := frame.AsFloat(v)
			if !ok {
				return nil, fmt.Errorf("%w: column %q row %d: %v",
					errs.ErrNotNumeric, column, i, v)
			}
			nums[i] = num
		}

		scaled := fn(nums)
		values := make([]frame.Value, len(scaled))
		for i, v := range scaled {
			values[i] = v
		}

		out, err = out.AddColumn(column, values)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
