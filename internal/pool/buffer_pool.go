// Package pool provides sync.Pool-backed scratch buffers for the decoder
// and encoder: a growable byte buffer for encoder output, and typed slice
// pools for the three array tag kinds the decoder reads (ByteArray,
// IntArray, LongArray).
package pool

import (
	"io"
	"sync"
)

// Default and maximum sizes for the document buffer pool. NBT documents
// are typically small — player data, chunk metadata, item tags — so
// these defaults favor quick reuse over accommodating large outliers.
const (
	DocumentBufferDefaultSize  = 1024 * 4   // 4KiB
	DocumentBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a growable []byte with pool-friendly Reset/Grow semantics.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer, retaining its capacity for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without a
// further reallocation.
//
// Growth strategy: small buffers grow by DocumentBufferDefaultSize to
// minimize reallocations; once a buffer is already several times that
// size, it grows by 25% of its current capacity instead.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DocumentBufferDefaultSize
	if cap(bb.B) > 4*DocumentBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers, discarding ones that grew past
// maxThreshold rather than retaining them indefinitely.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded (not retained) once they exceed maxThreshold capacity. A
// maxThreshold of 0 means no limit.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var documentPool = NewByteBufferPool(DocumentBufferDefaultSize, DocumentBufferMaxThreshold)

// GetDocumentBuffer retrieves a ByteBuffer from the default encoder
// output pool.
func GetDocumentBuffer() *ByteBuffer { return documentPool.Get() }

// PutDocumentBuffer returns a ByteBuffer to the default encoder output
// pool.
func PutDocumentBuffer(bb *ByteBuffer) { documentPool.Put(bb) }
