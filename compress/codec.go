package compress

import (
	"fmt"

	"github.com/framelab/framed/format"
)

// Compressor compresses frame snapshot payloads.
//
// A payload is the concatenated cell data of a snapshot, typically a few KB
// to a few MB of type-tagged values with highly repetitive structure, which
// compresses well under every supported algorithm.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller (except
	// for the no-op codec, which returns the input as-is). The input slice is
	// not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores frame snapshot payloads.
//
// The input must have been produced by the matching Compressor. Corrupted or
// mismatched data yields an error.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The returned slice is newly allocated and owned by the caller (except
	// for the no-op codec). The input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// All built-in codecs are stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns an error for compression types the snapshot format does not know.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
