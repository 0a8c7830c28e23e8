package rle

import "encoding/binary"

// IntDecoder decodes the framing produced by IntEncoder. It is stateless
// and safe for concurrent use.
type IntDecoder struct {
	signed bool
}

// NewIntDecoder creates a new IntDecoder matching the signed configuration
// of the IntEncoder that produced data.
func NewIntDecoder(signed bool) IntDecoder {
	return IntDecoder{signed: signed}
}

// Decode decodes data into a freshly allocated []int64 of length n.
func (d IntDecoder) Decode(data []byte, n int) []int64 {
	out := make([]int64, 0, n)
	offset := 0

	for len(out) < n && offset < len(data) {
		m := mode(data[offset])
		offset++

		count64, sz := binary.Uvarint(data[offset:])
		offset += sz
		count := int(count64)

		switch m {
		case modeShortRepeat:
			v, n2 := d.readValue(data[offset:])
			offset += n2
			for i := 0; i < count; i++ {
				out = append(out, v)
			}
		case modeDelta:
			first, n2 := d.readValue(data[offset:])
			offset += n2
			delta, n3 := readSignedVarint(data[offset:])
			offset += n3
			cur := first
			for i := 0; i < count; i++ {
				out = append(out, cur)
				cur += delta
			}
		case modeDirect:
			for i := 0; i < count; i++ {
				v, n2 := d.readValue(data[offset:])
				offset += n2
				out = append(out, v)
			}
		}
	}

	return out
}

func (d IntDecoder) readValue(data []byte) (int64, int) {
	if d.signed {
		return readSignedVarint(data)
	}

	u, n := binary.Uvarint(data)

	return int64(u), n //nolint:gosec
}

func readSignedVarint(data []byte) (int64, int) {
	u, n := binary.Uvarint(data)
	v := int64(u>>1) ^ -(int64(u) & 1)

	return v, n
}
