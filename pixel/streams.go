package pixel

import "github.com/gengdy1545/pixels/internal/pool"

// OutputStream is the append-only byte buffer a column writer encodes
// pixel content into, per spec.md §3's OutputStream entity. It borrows
// its backing buffer from the pooled chunk-buffer pool, sized for a
// single column chunk's pixel body.
type OutputStream struct {
	buf *pool.ByteBuffer
}

// NewOutputStream returns an OutputStream backed by a pooled buffer.
func NewOutputStream() *OutputStream {
	return &OutputStream{buf: pool.GetChunkBuffer()}
}

// Write appends data to the stream.
func (s *OutputStream) Write(data []byte) {
	s.buf.MustWrite(data)
}

// Position returns the current write position, i.e. the number of bytes
// written so far.
func (s *OutputStream) Position() int {
	return s.buf.Len()
}

// Bytes returns the stream's content without copying.
func (s *OutputStream) Bytes() []byte {
	return s.buf.Bytes()
}

// Reset empties the stream, retaining its backing buffer for reuse.
func (s *OutputStream) Reset() {
	s.buf.Reset()
}

// Close returns the backing buffer to the pool. The stream must not be
// used afterward.
func (s *OutputStream) Close() {
	pool.PutChunkBuffer(s.buf)
	s.buf = nil
}

// IsNullStream is the append-only buffer the compacted per-pixel null
// bitmap is written into, one pixel at a time, per spec.md §4.6's
// newPixel step ("appends the compacted null bitmap ... only if the
// pixel contained any null"). It borrows from the pooled index-buffer
// pool, sized for bookkeeping rather than pixel bodies.
type IsNullStream struct {
	buf *pool.ByteBuffer
}

// NewIsNullStream returns an IsNullStream backed by a pooled buffer.
func NewIsNullStream() *IsNullStream {
	return &IsNullStream{buf: pool.GetIndexBuffer()}
}

// Write appends data to the stream.
func (s *IsNullStream) Write(data []byte) {
	s.buf.MustWrite(data)
}

// Position returns the current write position.
func (s *IsNullStream) Position() int {
	return s.buf.Len()
}

// Bytes returns the stream's content without copying.
func (s *IsNullStream) Bytes() []byte {
	return s.buf.Bytes()
}

// Reset empties the stream, retaining its backing buffer for reuse.
func (s *IsNullStream) Reset() {
	s.buf.Reset()
}

// Close returns the backing buffer to the pool. The stream must not be
// used afterward.
func (s *IsNullStream) Close() {
	pool.PutIndexBuffer(s.buf)
	s.buf = nil
}
