package frame

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a single dynamically typed cell. Supported kinds are string,
// float64, int64, bool, and nil for missing values; anything else is
// stringified via fmt.Sprint when a display string is needed.
//
// Frames normalize int and int32 cells to int64 on construction, so a frame
// built from untyped integer literals holds int64 values and compares equal
// to its snapshot round trip.
type Value = any

// MissingToken is the display string for missing (nil) values.
//
// It doubles as a recognized missing marker when reading external data, along
// with "" and "NaN".
const MissingToken = "NA"

// FormatValue returns the display string for a value.
//
// The display string is what category names embed and what CSV output writes:
//   - nil          -> "NA"
//   - string       -> the string itself
//   - float64      -> shortest round-trip decimal form
//   - bool         -> "true" / "false"
//   - int, int64   -> base-10 form
//   - anything else -> fmt.Sprint
func FormatValue(v Value) string {
	switch val := v.(type) {
	case nil:
		return MissingToken
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}

// IsMissing reports whether a value counts as missing: nil, an empty or
// "NA"/"NaN" string, or a float64 NaN.
func IsMissing(v Value) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == "" || val == "NA" || val == "NaN"
	case float64:
		return math.IsNaN(val)
	default:
		return false
	}
}

// normalizeValue widens machine-sized integers to int64, the integer kind
// the snapshot wire format stores. Applied to every cell entering a frame.
func normalizeValue(v Value) Value {
	switch val := v.(type) {
	case int:
		return int64(val)
	case int32:
		return int64(val)
	default:
		return v
	}
}

// AsFloat attempts to interpret a value as a float64.
//
// Numeric kinds convert directly; numeric strings are parsed. Missing values
// and everything else report false.
func AsFloat(v Value) (float64, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) {
			return 0, false
		}

		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		if IsMissing(val) {
			return 0, false
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}
