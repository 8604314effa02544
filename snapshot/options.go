package snapshot

import (
	"fmt"

	"github.com/framelab/framed/compress"
	"github.com/framelab/framed/endian"
	"github.com/framelab/framed/format"
)

type config struct {
	engine      endian.EndianEngine
	bigEndian   bool
	compression format.CompressionType
}

// Option configures Marshal.
type Option func(*config) error

// WithCompression selects the payload compression codec.
//
// Valid types are format.CompressionNone (default), CompressionZstd,
// CompressionS2 and CompressionLZ4.
func WithCompression(compression format.CompressionType) Option {
	return func(cfg *config) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return fmt.Errorf("invalid snapshot compression: %w", err)
		}
		cfg.compression = compression

		return nil
	}
}

// WithLittleEndian selects little-endian byte order (the default).
func WithLittleEndian() Option {
	return func(cfg *config) error {
		cfg.engine = endian.GetLittleEndianEngine()
		cfg.bigEndian = false

		return nil
	}
}

// WithBigEndian selects big-endian byte order, for interoperability with
// big-endian consumers.
func WithBigEndian() Option {
	return func(cfg *config) error {
		cfg.engine = endian.GetBigEndianEngine()
		cfg.bigEndian = true

		return nil
	}
}

func defaultConfig() config {
	return config{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
	}
}
