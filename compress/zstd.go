package compress

// ZstdCompressor provides Zstandard compression, the best-ratio codec of the
// supported set. Recommended for snapshots kept at rest.
//
// The implementation is selected at build time: the cgo-backed gozstd library
// when cgo is available, the pure-Go klauspost implementation otherwise. Both
// produce standard Zstd frames and are wire compatible.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
