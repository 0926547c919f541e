package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances: each carries an
// internal hash table that is expensive to zero on every small NBT
// document compressed, so reuse matters more here than the allocation
// itself.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor wraps pierrec/lz4's raw block codec — unframed LZ4, one
// of the optional interchange formats an NBT document can be stored in
// alongside the wire-mandated gzip/zlib pair.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor returns an LZ4Compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress LZ4-compresses data using a pooled block compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress reverses Compress.
//
// Raw LZ4 blocks carry no decompressed-size header, so the destination
// buffer is grown and retried until UncompressBlock stops reporting it
// as too small: start at 4x the compressed size (a typical NBT
// compression ratio), double on ErrInvalidSourceShortBuffer, and give
// up past a 128MB ceiling rather than let a corrupt or adversarial
// payload grow the buffer without bound.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}
			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
