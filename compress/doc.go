// Package compress provides the compression codecs used for frame snapshot
// payloads.
//
// Four codecs are available, selected via format.CompressionType:
//
//   - None: pass-through, for payloads that are small or already compact
//   - Zstd: best ratio, recommended for snapshots kept at rest
//   - S2: fastest, good default for snapshots passed between processes
//   - LZ4: balanced speed and ratio
//
// The Zstd codec uses the cgo-backed gozstd implementation when cgo is
// available and falls back to the pure-Go klauspost implementation otherwise;
// the two produce interchangeable output.
package compress
