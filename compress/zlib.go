package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCompressor wraps klauspost/compress/zlib, the RFC 1950 container
// that is the second wire-mandated compression format for NBT documents.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor returns a ZlibCompressor.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress zlib-compresses data at the library's default level.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: zlib write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: zlib close failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress: zlib header invalid: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: zlib decompression failed: %w", err)
	}

	return out, nil
}
