package snapshot

import (
	"fmt"
	"math"

	"github.com/framelab/framed/format"
	"github.com/framelab/framed/frame"
	"github.com/framelab/framed/internal/pool"
)

// writeCell appends one type-tagged cell to the payload buffer.
//
// Cell layout: a format.ColumnKind tag byte followed by the value:
//   - KindNull:   nothing
//   - KindString: uint16 length + UTF-8 bytes
//   - KindFloat:  8-byte IEEE 754 bits
//   - KindBool:   1 byte (0 or 1)
//   - KindInt:    8-byte two's complement
//
// Frames normalize integer cells to int64 on construction, so KindInt cells
// decode to the same kind they were written from. Values of kinds the frame
// does not natively support are stored as strings via their display form.
func writeCell(buf *pool.ByteBuffer, v frame.Value, cfg config) error {
	switch val := v.(type) {
	case nil:
		buf.MustWrite([]byte{byte(format.KindNull)})
	case string:
		return writeStringCell(buf, val, cfg)
	case float64:
		buf.MustWrite([]byte{byte(format.KindFloat)})
		buf.B = cfg.engine.AppendUint64(buf.B, math.Float64bits(val))
	case bool:
		b := byte(0)
		if val {
			b = 1
		}
		buf.MustWrite([]byte{byte(format.KindBool), b})
	case int:
		buf.MustWrite([]byte{byte(format.KindInt)})
		buf.B = cfg.engine.AppendUint64(buf.B, uint64(val)) //nolint:gosec
	case int64:
		buf.MustWrite([]byte{byte(format.KindInt)})
		buf.B = cfg.engine.AppendUint64(buf.B, uint64(val)) //nolint:gosec
	default:
		return writeStringCell(buf, frame.FormatValue(v), cfg)
	}

	return nil
}

func writeStringCell(buf *pool.ByteBuffer, s string, cfg config) error {
	if len(s) > maxNameLength {
		return fmt.Errorf("string cell length %d exceeds maximum %d", len(s), maxNameLength)
	}

	buf.Grow(3 + len(s))
	buf.MustWrite([]byte{byte(format.KindString)})
	buf.B = cfg.engine.AppendUint16(buf.B, uint16(len(s))) //nolint:gosec
	buf.MustWrite([]byte(s))

	return nil
}

// columnKind reports the uniform kind of a column's non-missing cells, or
// KindNull when the column is empty, all-missing, or mixed.
func columnKind(values []frame.Value) format.ColumnKind {
	kind := format.KindNull
	for _, v := range values {
		var k format.ColumnKind
		switch v.(type) {
		case nil:
			continue
		case string:
			k = format.KindString
		case float64:
			k = format.KindFloat
		case bool:
			k = format.KindBool
		case int, int64:
			k = format.KindInt
		default:
			k = format.KindString
		}

		if kind == format.KindNull {
			kind = k
		} else if kind != k {
			return format.KindNull
		}
	}

	return kind
}
