package format

type (
	ColumnKind      uint8
	CompressionType uint8
)

const (
	KindNull   ColumnKind = 0x0 // KindNull represents a missing value.
	KindString ColumnKind = 0x1 // KindString represents a string value.
	KindFloat  ColumnKind = 0x2 // KindFloat represents a float64 value.
	KindBool   ColumnKind = 0x3 // KindBool represents a boolean value.
	KindInt    ColumnKind = 0x4 // KindInt represents an int64 value.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k ColumnKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindString:
		return "String"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
