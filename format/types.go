// Package format defines the small set of enums shared between the pixel
// configuration, the column writer factory, and the chunk encoding
// metadata: the value category a column holds, the encoding level a
// writer is configured with, and the cascade-capable encoding kind
// recorded for a finished chunk.
package format

// Category identifies the logical value type a column holds. It is the
// dispatch key for ColumnWriterFactory.
type Category uint8

const (
	BOOLEAN Category = iota
	BYTE
	SHORT
	INT
	LONG
	FLOAT
	DOUBLE
	DECIMAL
	STRING
	CHAR
	VARCHAR
	BINARY
	VARBINARY
	DATE
	TIME
	TIMESTAMP
	VECTOR
)

// String renders the category name for diagnostics.
func (c Category) String() string {
	switch c {
	case BOOLEAN:
		return "BOOLEAN"
	case BYTE:
		return "BYTE"
	case SHORT:
		return "SHORT"
	case INT:
		return "INT"
	case LONG:
		return "LONG"
	case FLOAT:
		return "FLOAT"
	case DOUBLE:
		return "DOUBLE"
	case DECIMAL:
		return "DECIMAL"
	case STRING:
		return "STRING"
	case CHAR:
		return "CHAR"
	case VARCHAR:
		return "VARCHAR"
	case BINARY:
		return "BINARY"
	case VARBINARY:
		return "VARBINARY"
	case DATE:
		return "DATE"
	case TIME:
		return "TIME"
	case TIMESTAMP:
		return "TIMESTAMP"
	case VECTOR:
		return "VECTOR"
	default:
		return "UNKNOWN"
	}
}

// EncodingLevel controls how aggressively a column writer cascades into
// dictionary and run-length encodings.
type EncodingLevel uint8

const (
	// EL0 is raw: no dictionary, no run-length.
	EL0 EncodingLevel = iota
	// EL1 adds dictionary encoding for string-family columns.
	EL1
	// EL2 adds run-length, cascaded over dictionary codes for strings and
	// applied directly for the integer family.
	EL2
)

// EncodingKind is the encoding actually applied to a finished chunk,
// recorded in ColumnEncoding.
type EncodingKind uint8

const (
	NONE EncodingKind = iota
	RUNLENGTH
	DICTIONARY
)

func (k EncodingKind) String() string {
	switch k {
	case NONE:
		return "NONE"
	case RUNLENGTH:
		return "RUNLENGTH"
	case DICTIONARY:
		return "DICTIONARY"
	default:
		return "UNKNOWN"
	}
}

// TypeDescriptor is the external, immutable type metadata a column writer
// is constructed from. It is treated as an opaque descriptor per spec.md
// §1 ("schema/type registry... out of scope"); only the fields the encode
// pipeline actually reads are modeled here.
type TypeDescriptor struct {
	Category Category

	// Precision and Scale apply to DECIMAL only.
	Precision int
	Scale     int

	// MaxLength applies to VARCHAR, CHAR, BINARY, VARBINARY.
	MaxLength int

	// VectorDim applies to VECTOR only.
	VectorDim int
}

// ShortDecimalMaxPrecision is the precision boundary between the
// short-decimal (single int64) and long-decimal (two-word Int128)
// physical representations.
const ShortDecimalMaxPrecision = 18

// IsShortDecimal reports whether a DECIMAL TypeDescriptor should use the
// single-word physical representation.
func (d TypeDescriptor) IsShortDecimal() bool {
	return d.Precision <= ShortDecimalMaxPrecision
}
