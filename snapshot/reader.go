package snapshot

import (
	"fmt"
	"math"

	"github.com/framelab/framed/compress"
	"github.com/framelab/framed/endian"
	"github.com/framelab/framed/errs"
	"github.com/framelab/framed/format"
	"github.com/framelab/framed/frame"
	"github.com/framelab/framed/internal/hash"
)

// Unmarshal decodes a snapshot blob back into a frame.
//
// The blob's endianness and compression are read from the header, so no
// options are needed. The payload checksum is verified after decompression;
// a mismatch means the blob was corrupted in storage or transit.
//
// Returns:
//   - *frame.Frame: The reconstructed frame.
//   - error: errs.ErrInvalidMagic, errs.ErrUnsupportedVersion,
//     errs.ErrTruncatedData, errs.ErrChecksumMismatch, or a codec failure.
func Unmarshal(data []byte) (*frame.Frame, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than the %d byte header",
			errs.ErrTruncatedData, len(data), headerSize)
	}

	if data[0] != magicByte0 || data[1] != magicByte1 || data[2] != magicByte2 || data[3] != magicByte3 {
		return nil, errs.ErrInvalidMagic
	}
	if data[4] != formatVersion {
		return nil, fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, data[4])
	}

	engine := endian.GetLittleEndianEngine()
	if data[5]&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}
	compression := format.CompressionType(data[6])

	numCols := int(engine.Uint32(data[8:12]))
	numRows := int(engine.Uint32(data[12:16]))
	checksum := engine.Uint64(data[16:24])

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompression codec: %w", err)
	}
	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot payload: %w", err)
	}

	if hash.Sum(payload) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	r := &payloadReader{payload: payload, engine: engine}

	names, err := r.readDirectory(numCols)
	if err != nil {
		return nil, err
	}

	cols := make([]frame.Column, numCols)
	for i, name := range names {
		values := make([]frame.Value, numRows)
		for row := 0; row < numRows; row++ {
			values[row], err = r.readCell()
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", name, row, err)
			}
		}
		cols[i] = frame.Column{Name: name, Values: values}
	}

	return frame.New(cols...)
}

// payloadReader walks the decompressed payload sequentially, decoding
// multi-byte fields with the header's declared byte order.
type payloadReader struct {
	payload []byte
	pos     int
	engine  endian.EndianEngine
}

func (r *payloadReader) readDirectory(numCols int) ([]string, error) {
	names := make([]string, numCols)
	for i := 0; i < numCols; i++ {
		idBytes, err := r.take(8)
		if err != nil {
			return nil, err
		}
		id := r.engine.Uint64(idBytes)

		nameLen, err := r.readUint16()
		if err != nil {
			return nil, err
		}
		nameBytes, err := r.take(int(nameLen))
		if err != nil {
			return nil, err
		}
		name := string(nameBytes)

		if hash.ID(name) != id {
			return nil, fmt.Errorf("%w: column %d name hash mismatch", errs.ErrChecksumMismatch, i)
		}

		// Column kind byte is informational; cells are individually tagged.
		if _, err := r.take(1); err != nil {
			return nil, err
		}

		names[i] = name
	}

	return names, nil
}

func (r *payloadReader) readCell() (frame.Value, error) {
	tag, err := r.take(1)
	if err != nil {
		return nil, err
	}

	switch format.ColumnKind(tag[0]) {
	case format.KindNull:
		return nil, nil
	case format.KindString:
		length, err := r.readUint16()
		if err != nil {
			return nil, err
		}
		data, err := r.take(int(length))
		if err != nil {
			return nil, err
		}

		return string(data), nil
	case format.KindFloat:
		data, err := r.take(8)
		if err != nil {
			return nil, err
		}

		return math.Float64frombits(r.engine.Uint64(data)), nil
	case format.KindBool:
		data, err := r.take(1)
		if err != nil {
			return nil, err
		}

		return data[0] != 0, nil
	case format.KindInt:
		data, err := r.take(8)
		if err != nil {
			return nil, err
		}

		return int64(r.engine.Uint64(data)), nil //nolint:gosec
	default:
		return nil, fmt.Errorf("unknown cell tag: 0x%02x", tag[0])
	}
}

func (r *payloadReader) readUint16() (uint16, error) {
	data, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(data), nil
}

func (r *payloadReader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.payload) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrTruncatedData, n, r.pos, len(r.payload)-r.pos)
	}
	data := r.payload[r.pos : r.pos+n]
	r.pos += n

	return data, nil
}
