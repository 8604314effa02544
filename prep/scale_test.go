package prep

import (
	"testing"

	"github.com/framelab/framed/errs"
	"github.com/framelab/framed/frame"
	"github.com/stretchr/testify/require"
)

func TestStandardize(t *testing.T) {
	f, err := frame.New(
		frame.Col("x", 1.0, 2.0, 3.0),
		frame.Col("y", "a", "b", "c"),
	)
	require.NoError(t, err)

	out, err := Standardize(f, "x")
	require.NoError(t, err)

	col, err := out.Column("x")
	require.NoError(t, err)

	// Mean 2, population std sqrt(2/3).
	v0, ok := col.Values[0].(float64)
	require.True(t, ok)
	require.InDelta(t, -1.2247448, v0, 1e-6)
	require.InDelta(t, 0.0, col.Values[1].(float64), 1e-9)
	require.InDelta(t, 1.2247448, col.Values[2].(float64), 1e-6)

	// Untouched column keeps its values and position.
	y, err := out.Column("y")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{"a", "b", "c"}, y.Values)
}

func TestStandardize_ZeroVariance(t *testing.T) {
	f, err := frame.New(frame.Col("x", 5.0, 5.0, 5.0))
	require.NoError(t, err)

	out, err := Standardize(f, "x")
	require.NoError(t, err)

	col, err := out.Column("x")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{0.0, 0.0, 0.0}, col.Values)
}

func TestMinMax(t *testing.T) {
	f, err := frame.New(frame.Col("x", 10.0, 20.0, 30.0))
	require.NoError(t, err)

	out, err := MinMax(f, "x")
	require.NoError(t, err)

	col, err := out.Column("x")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{0.0, 0.5, 1.0}, col.Values)
}

func TestMinMax_ConstantColumn(t *testing.T) {
	f, err := frame.New(frame.Col("x", 3.0, 3.0))
	require.NoError(t, err)

	out, err := MinMax(f, "x")
	require.NoError(t, err)

	col, err := out.Column("x")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{0.0, 0.0}, col.Values)
}

func TestScale_MultipleColumns(t *testing.T) {
	f, err := frame.New(
		frame.Col("x", 0.0, 10.0),
		frame.Col("y", 2, 4),
	)
	require.NoError(t, err)

	out, err := MinMax(f, "x", "y")
	require.NoError(t, err)

	x, err := out.Column("x")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{0.0, 1.0}, x.Values)

	y, err := out.Column("y")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{0.0, 1.0}, y.Values)
}

func TestScale_Errors(t *testing.T) {
	f, err := frame.New(
		frame.Col("x", 1.0, 2.0),
		frame.Col("color", "red", "blue"),
	)
	require.NoError(t, err)

	_, err = Standardize(f, "z")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)

	_, err = Standardize(f, "color")
	require.ErrorIs(t, err, errs.ErrNotNumeric)

	_, err = MinMax(f, "color")
	require.ErrorIs(t, err, errs.ErrNotNumeric)
}
