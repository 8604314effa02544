package prep

import (
	"testing"

	"github.com/framelab/framed/errs"
	"github.com/framelab/framed/frame"
	"github.com/stretchr/testify/require"
)

func TestImputeMean(t *testing.T) {
	f, err := frame.New(
		frame.Col("age", 10.0, nil, 20.0, "NA"),
	)
	require.NoError(t, err)

	out, err := ImputeMean(f, "age")
	require.NoError(t, err)

	col, err := out.Column("age")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{10.0, 15.0, 20.0, 15.0}, col.Values)

	// Input is untouched.
	col, err = f.Column("age")
	require.NoError(t, err)
	require.Nil(t, col.Values[1])
}

func TestImputeMedian(t *testing.T) {
	f, err := frame.New(
		frame.Col("age", 1.0, 2.0, 100.0, nil),
	)
	require.NoError(t, err)

	out, err := ImputeMedian(f, "age")
	require.NoError(t, err)

	col, err := out.Column("age")
	require.NoError(t, err)
	require.Equal(t, 2.0, col.Values[3])
}

func TestImputeMode(t *testing.T) {
	f, err := frame.New(
		frame.Col("age", 5.0, 5.0, 7.0, "NaN"),
	)
	require.NoError(t, err)

	out, err := ImputeMode(f, "age")
	require.NoError(t, err)

	col, err := out.Column("age")
	require.NoError(t, err)
	require.Equal(t, 5.0, col.Values[3])
}

func TestImputeMean_NumericStrings(t *testing.T) {
	// Numeric strings contribute to the statistic, as in CSV-sourced frames.
	f, err := frame.New(
		frame.Col("age", "10", "", "30"),
	)
	require.NoError(t, err)

	out, err := ImputeMean(f, "age")
	require.NoError(t, err)

	col, err := out.Column("age")
	require.NoError(t, err)
	require.Equal(t, 20.0, col.Values[1])
	// Non-missing cells keep their original representation.
	require.Equal(t, "10", col.Values[0])
}

func TestImputeConstant(t *testing.T) {
	f, err := frame.New(
		frame.Col("color", "red", nil, ""),
	)
	require.NoError(t, err)

	out, err := ImputeConstant(f, "color", "unknown")
	require.NoError(t, err)

	col, err := out.Column("color")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{"red", "unknown", "unknown"}, col.Values)
}

func TestImpute_Errors(t *testing.T) {
	f, err := frame.New(
		frame.Col("color", "red", nil),
	)
	require.NoError(t, err)

	_, err = ImputeMean(f, "age")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)

	// All-categorical column cannot supply a numeric statistic.
	_, err = ImputeMean(f, "color")
	require.ErrorIs(t, err, errs.ErrNotNumeric)
}
