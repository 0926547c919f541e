package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCompressor wraps klauspost/compress/gzip, the RFC 1952 container
// that is one of the two wire-mandated compression formats for NBT
// documents.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor returns a GzipCompressor.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress gzip-compresses data at the library's default level.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: gzip write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: gzip close failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress: gzip header invalid: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: gzip decompression failed: %w", err)
	}

	return out, nil
}
