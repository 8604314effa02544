// Package snapshot implements a compact binary format for persisting frames.
//
// A snapshot is a single self-describing byte blob:
//
//	┌────────────────────────────────────────────────┐
//	│ header: magic, version, flags, compression,    │
//	│         column count, row count, checksum      │
//	├────────────────────────────────────────────────┤
//	│ payload (optionally compressed):               │
//	│   column directory: per column an xxHash64 id, │
//	│   length-prefixed name, and column kind        │
//	│   cells: column-major, type-tagged values      │
//	└────────────────────────────────────────────────┘
//
// The payload checksum (xxHash64 of the uncompressed payload) is verified on
// read, so corruption is detected before a frame is reconstructed.
//
// # Basic Usage
//
//	data, err := snapshot.Marshal(f,
//	    snapshot.WithCompression(format.CompressionZstd),
//	)
//	...
//	restored, err := snapshot.Unmarshal(data)
//
// The default is little-endian byte order and no compression. Zstd is
// recommended for snapshots kept at rest, S2 for snapshots passed between
// processes.
package snapshot
