package prep

import (
	"fmt"

	"github.com/framelab/framed/errs"
	"github.com/framelab/framed/frame"
	"github.com/framelab/framed/internal/stats"
)

// ImputeMean replaces missing values in the named column with the mean of the
// column's non-missing numeric values.
//
// Non-missing cells are kept as-is; replacements are stored as float64.
// Returns errs.ErrColumnNotFound if the column is absent, errs.ErrNotNumeric
// if the column has no numeric values to derive the statistic from.
func ImputeMean(f *frame.Frame, column string) (*frame.Frame, error) {
	return imputeStat(f, column, stats.Mean)
}

// ImputeMedian replaces missing values in the named column with the median of
// the column's non-missing numeric values.
func ImputeMedian(f *frame.Frame, column string) (*frame.Frame, error) {
	return imputeStat(f, column, stats.Median)
}

// ImputeMode replaces missing values in the named column with the mode of the
// column's non-missing numeric values.
func ImputeMode(f *frame.Frame, column string) (*frame.Frame, error) {
	return imputeStat(f, column, stats.Mode)
}

// ImputeConstant replaces missing values in the named column with a fixed
// value. Works for any value kind, not just numeric columns.
func ImputeConstant(f *frame.Frame, column string, constant frame.Value) (*frame.Frame, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, err
	}

	filled := make([]frame.Value, len(col.Values))
	for i, v := range col.Values {
		if frame.IsMissing(v) {
			filled[i] = constant
		} else {
			filled[i] = v
		}
	}

	return f.AddColumn(column, filled)
}

func imputeStat(f *frame.Frame, column string, stat func([]float64) float64) (*frame.Frame, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, err
	}

	var nums []float64
	for _, v := range col.Values {
		if frame.IsMissing(v) {
			continue
		}
		if num, ok := frame.AsFloat(v); ok {
			nums = append(nums, num)
		}
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("%w: column %q has no numeric values to impute from",
			errs.ErrNotNumeric, column)
	}

	fill := stat(nums)
	filled := make([]frame.Value, len(col.Values))
	for i, v := range col.Values {
		if frame.IsMissing(v) {
			filled[i] = fill
		} else {
			filled[i] = v
		}
	}

	return f.AddColumn(column, filled)
}
