package snapshot

import (
	"fmt"
	"math"

	"github.com/framelab/framed/compress"
	"github.com/framelab/framed/frame"
	"github.com/framelab/framed/internal/hash"
	"github.com/framelab/framed/internal/pool"
)

// Snapshot format constants. The magic spells "FRMD".
const (
	magicByte0 = 0x46
	magicByte1 = 0x52
	magicByte2 = 0x4D
	magicByte3 = 0x44

	formatVersion = 1

	flagBigEndian = 0x01

	// headerSize is magic(4) + version(1) + flags(1) + compression(1) +
	// reserved(1) + numCols(4) + numRows(4) + checksum(8).
	headerSize = 24

	// maxNameLength bounds column names to what a uint16 length prefix can
	// describe.
	maxNameLength = math.MaxUint16
)

// Marshal encodes a frame into a snapshot blob.
//
// The payload is built column-major: a directory entry per column (xxHash64
// id, length-prefixed name, column kind) followed by the type-tagged cell
// data of every column. The payload is checksummed before compression so
// Unmarshal can detect corruption after decompressing.
//
// Parameters:
//   - f: Frame to encode.
//   - opts: Optional configuration (WithCompression, WithBigEndian).
//
// Returns:
//   - []byte: The snapshot blob, owned by the caller.
//   - error: Invalid option, oversized column name, or codec failure.
func Marshal(f *frame.Frame, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	payloadBuf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(payloadBuf)

	if err := writePayload(payloadBuf, f, cfg); err != nil {
		return nil, err
	}
	payload := payloadBuf.Bytes()
	checksum := hash.Sum(payload)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	blob := make([]byte, 0, headerSize+len(compressed))
	blob = append(blob, magicByte0, magicByte1, magicByte2, magicByte3)
	blob = append(blob, formatVersion)

	var flags byte
	if cfg.bigEndian {
		flags |= flagBigEndian
	}
	blob = append(blob, flags, byte(cfg.compression), 0)

	blob = cfg.engine.AppendUint32(blob, uint32(f.NumCols())) //nolint:gosec
	blob = cfg.engine.AppendUint32(blob, uint32(f.NumRows())) //nolint:gosec
	blob = cfg.engine.AppendUint64(blob, checksum)
	blob = append(blob, compressed...)

	return blob, nil
}

func writePayload(buf *pool.ByteBuffer, f *frame.Frame, cfg config) error {
	// Column directory.
	for _, name := range f.Names() {
		if len(name) > maxNameLength {
			return fmt.Errorf("column name length %d exceeds maximum %d", len(name), maxNameLength)
		}

		col, err := f.Column(name)
		if err != nil {
			return err
		}

		buf.B = cfg.engine.AppendUint64(buf.B, hash.ID(name))
		buf.B = cfg.engine.AppendUint16(buf.B, uint16(len(name))) //nolint:gosec
		buf.MustWrite([]byte(name))
		buf.MustWrite([]byte{byte(columnKind(col.Values))})
	}

	// Cells, column-major.
	for _, name := range f.Names() {
		col, err := f.Column(name)
		if err != nil {
			return err
		}
		for _, v := range col.Values {
			if err := writeCell(buf, v, cfg); err != nil {
				return fmt.Errorf("column %q: %w", name, err)
			}
		}
	}

	return nil
}
