// Package endian provides byte order utilities for snapshot encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single EndianEngine interface so snapshot writers can use the faster
// append-style operations throughout.
//
// Most users should use GetLittleEndianEngine, the default for framed snapshots:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, value)
//
// All functions in this package are safe for concurrent use; the returned
// engines are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian from the
// standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
