package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(bb.Bytes()))

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap(), 100)

	bb.MustWrite([]byte("abc"))
	require.Equal(t, "abc", string(bb.Bytes()))
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("payload"))

	var sink []byte
	w := &sliceWriter{dst: &sink}
	n, err := bb.WriteTo(w)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", string(sink))
}

func TestByteBufferPool_ReuseAndDiscard(t *testing.T) {
	p := NewByteBufferPool(8, 32)

	bb := p.Get()
	bb.MustWrite([]byte("x"))
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())

	again.Grow(64)
	again.MustWrite(make([]byte, 64))
	p.Put(again)
}

func TestGetPutDocumentBuffer(t *testing.T) {
	bb := GetDocumentBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte{0x0A, 0x00, 0x00})
	PutDocumentBuffer(bb)
}

type sliceWriter struct {
	dst *[]byte
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.dst = append(*w.dst, p...)
	return len(p), nil
}
