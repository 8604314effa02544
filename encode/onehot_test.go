package encode

import (
	"testing"

	"github.com/framelab/framed/errs"
	"github.com/framelab/framed/frame"
	"github.com/stretchr/testify/require"
)

func TestOneHot_Example(t *testing.T) {
	f, err := frame.New(
		frame.Col("id", 1, 2, 3),
		frame.Col("color", "red", "blue", "red"),
	)
	require.NoError(t, err)

	out, categories, err := OneHot(f, "color")
	require.NoError(t, err)

	// Category order follows first occurrence: red before blue.
	require.Equal(t, []string{"color_red", "color_blue"}, categories)
	require.Equal(t, []string{"id", "color_red", "color_blue"}, out.Names())

	require.Equal(t, []frame.Value{int64(1), 1.0, 0.0}, out.Row(0))
	require.Equal(t, []frame.Value{int64(2), 0.0, 1.0}, out.Row(1))
	require.Equal(t, []frame.Value{int64(3), 1.0, 0.0}, out.Row(2))
}

func TestOneHot_ColumnNotFound(t *testing.T) {
	f, err := frame.New(
		frame.Col("id", 1, 2),
		frame.Col("color", "red", "blue"),
	)
	require.NoError(t, err)

	_, _, err = OneHot(f, "size")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestOneHot_InputUnmodified(t *testing.T) {
	f, err := frame.New(
		frame.Col("id", 1, 2),
		frame.Col("color", "red", "blue"),
	)
	require.NoError(t, err)
	before := f.Clone()

	_, _, err = OneHot(f, "color")
	require.NoError(t, err)
	require.True(t, before.Equal(f))
}

func TestOneHot_RowCountAndExclusivity(t *testing.T) {
	f, err := frame.New(
		frame.Col("id", 1, 2, 3, 4, 5),
		frame.Col("size", "S", "M", "L", "M", "S"),
	)
	require.NoError(t, err)

	out, categories, err := OneHot(f, "size")
	require.NoError(t, err)
	require.Equal(t, f.NumRows(), out.NumRows())

	// Every indicator is 0.0 or 1.0 and exactly one per row is 1.0.
	for r := 0; r < out.NumRows(); r++ {
		ones := 0
		for _, name := range categories {
			col, err := out.Column(name)
			require.NoError(t, err)
			v, ok := col.Values[r].(float64)
			require.True(t, ok, "indicator must be float64")
			require.Contains(t, []float64{0.0, 1.0}, v)
			if v == 1.0 {
				ones++
			}
		}
		require.Equal(t, 1, ones, "row %d must be one-hot", r)
	}
}

func TestOneHot_Reencode(t *testing.T) {
	f, err := frame.New(
		frame.Col("id", 1, 2, 3),
		frame.Col("color", "red", "blue", "red"),
	)
	require.NoError(t, err)

	colorCol, err := f.Column("color")
	require.NoError(t, err)

	first, cats1, err := OneHot(f, "color")
	require.NoError(t, err)

	// Restore the source column alongside the stale indicators and encode
	// again; the result must match the single-pass encoding.
	restored, err := first.AddColumn("color", colorCol.Values)
	require.NoError(t, err)

	second, cats2, err := OneHot(restored, "color")
	require.NoError(t, err)

	require.Equal(t, cats1, cats2)
	for _, name := range cats1 {
		c1, err := first.Column(name)
		require.NoError(t, err)
		c2, err := second.Column(name)
		require.NoError(t, err)
		require.Equal(t, c1.Values, c2.Values)
	}
	require.True(t, first.Equal(second))
}

func TestOneHot_NilIsItsOwnCategory(t *testing.T) {
	f, err := frame.New(
		frame.Col("id", 1, 2, 3),
		frame.Col("color", "red", nil, "red"),
	)
	require.NoError(t, err)

	out, categories, err := OneHot(f, "color")
	require.NoError(t, err)
	require.Equal(t, []string{"color_red", "color_NA"}, categories)

	na, err := out.Column("color_NA")
	require.NoError(t, err)
	require.Equal(t, []frame.Value{0.0, 1.0, 0.0}, na.Values)
}

func TestOneHot_MixedValueKinds(t *testing.T) {
	f, err := frame.New(
		frame.Col("flag", true, false, true),
	)
	require.NoError(t, err)

	out, categories, err := OneHot(f, "flag")
	require.NoError(t, err)
	require.Equal(t, []string{"flag_true", "flag_false"}, categories)
	require.Equal(t, []frame.Value{1.0, 0.0}, out.Row(0))
}

func TestOneHot_SingleDistinctValue(t *testing.T) {
	// A constant column is valid input, not an error.
	f, err := frame.New(
		frame.Col("id", 1, 2),
		frame.Col("color", "red", "red"),
	)
	require.NoError(t, err)

	out, categories, err := OneHot(f, "color")
	require.NoError(t, err)
	require.Equal(t, []string{"color_red"}, categories)
	require.Equal(t, []frame.Value{int64(1), 1.0}, out.Row(0))
	require.Equal(t, []frame.Value{int64(2), 1.0}, out.Row(1))
}
