package column

import (
	"github.com/gengdy1545/pixels/errs"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
)

// NewWriter dispatches on desc.Category to construct the Writer that
// implements a column's physical encoding, per spec.md §4.8. DECIMAL
// further dispatches on desc.IsShortDecimal, and VARCHAR/CHAR/BINARY on
// desc.MaxLength, and VECTOR on desc.VectorDim.
func NewWriter(desc format.TypeDescriptor, cfg pixel.Config) (Writer, error) {
	switch desc.Category {
	case format.BOOLEAN:
		return NewBooleanWriter(cfg), nil
	case format.BYTE:
		return NewByteWriter(cfg), nil
	case format.SHORT, format.INT, format.LONG:
		return NewIntegerWriter(desc.Category, cfg), nil
	case format.FLOAT, format.DOUBLE:
		return NewFloatWriter(desc.Category, cfg), nil
	case format.DECIMAL:
		if desc.IsShortDecimal() {
			return NewDecimalWriter(cfg), nil
		}

		return NewLongDecimalWriter(cfg), nil
	case format.STRING:
		return NewStringWriter(desc.Category, 0, cfg), nil
	case format.VARCHAR, format.CHAR:
		return NewStringWriter(desc.Category, desc.MaxLength, cfg), nil
	case format.BINARY:
		return NewBinaryWriter(desc.Category, desc.MaxLength, cfg), nil
	case format.VARBINARY:
		return NewBinaryWriter(desc.Category, 0, cfg), nil
	case format.DATE, format.TIME, format.TIMESTAMP:
		return NewDateTimeWriter(desc.Category, cfg), nil
	case format.VECTOR:
		return NewVectorWriter(desc.VectorDim, cfg), nil
	default:
		return nil, errs.ErrInvalidType
	}
}
