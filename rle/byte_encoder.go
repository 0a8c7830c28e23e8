package rle

import (
	"github.com/gengdy1545/pixels/internal/pool"
)

// MinRepeat is the shortest run length that is worth encoding as a repeat.
// MaxLiteral is the longest literal run emitted in one frame.
// MaxRepeat is the longest repeat run emitted in one frame.
const (
	MinRepeat  = 3
	MaxLiteral = 128
	MaxRepeat  = MinRepeat + 127 // 130
)

// ByteEncoder is a streaming literal/repeat run-length encoder for byte
// streams, used by ByteColumnWriter under encoding level EL2.
//
// ByteEncoder holds state between calls to Encode; a single encoder
// instance is meant to be fed one pixel's worth of input and then Flush'd.
type ByteEncoder struct {
	out *pool.ByteBuffer

	literals [MaxLiteral]byte
	numLits  int
	tailRun  int
	repeat   bool
}

// NewByteEncoder creates a new ByteEncoder with a pooled output buffer.
func NewByteEncoder() *ByteEncoder {
	return &ByteEncoder{out: pool.GetIndexBuffer()}
}

// Encode appends every byte of in to the pending run-length stream and
// flushes any pending run. It returns the number of bytes written to the
// encoder's output buffer during this call.
func (e *ByteEncoder) Encode(in []byte) int {
	before := e.out.Len()
	for _, b := range in {
		e.write(b)
	}
	e.Flush()

	return e.out.Len() - before
}

func (e *ByteEncoder) write(value byte) {
	switch {
	case e.numLits == 0:
		e.literals[0] = value
		e.tailRun = 1
		e.numLits = 1
	case e.repeat:
		if value == e.literals[0] {
			e.numLits++
			if e.numLits == MaxRepeat {
				e.writeValues()
			}
		} else {
			e.writeValues()
			e.literals[0] = value
			e.tailRun = 1
			e.numLits = 1
		}
	default:
		if value == e.literals[e.numLits-1] {
			e.tailRun++
		} else {
			e.tailRun = 1
		}

		if e.tailRun == MinRepeat {
			if e.numLits+1 == MinRepeat {
				// The whole pending buffer, plus this value, is a repeat.
				e.repeat = true
				e.numLits++
			} else {
				// Detach the last MinRepeat-1 bytes (the run just
				// detected) from the literal buffer; flush the prefix as
				// a literal run, then start a repeat run with them.
				e.numLits -= MinRepeat - 1
				e.writeValues()
				e.literals[0] = value
				e.numLits = MinRepeat
				e.repeat = true
			}
		} else {
			e.literals[e.numLits] = value
			e.numLits++
			if e.numLits == MaxLiteral {
				e.writeValues()
			}
		}
	}
}

// writeValues flushes whatever run is currently pending (literal or
// repeat) to the output buffer and resets the encoder's run state.
func (e *ByteEncoder) writeValues() {
	if e.numLits == 0 {
		return
	}

	if e.repeat {
		e.out.MustWrite([]byte{byte(e.numLits - MinRepeat), e.literals[0]})
	} else {
		e.out.MustWrite([]byte{byte(-int8(e.numLits))}) //nolint:gosec
		e.out.MustWrite(e.literals[:e.numLits])
	}

	e.numLits = 0
	e.tailRun = 0
	e.repeat = false
}

// Flush emits any pending literal or repeat run.
func (e *ByteEncoder) Flush() {
	e.writeValues()
}

// Bytes returns the bytes written so far. The returned slice is valid
// until the next call to Encode or Close.
func (e *ByteEncoder) Bytes() []byte {
	return e.out.Bytes()
}

// Close releases the encoder's output buffer back to the pool.
func (e *ByteEncoder) Close() {
	if e.out != nil {
		pool.PutIndexBuffer(e.out)
		e.out = nil
	}
}
