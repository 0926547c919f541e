package compress

import "github.com/klauspost/compress/s2"

// S2Compressor wraps klauspost/compress/s2, a Snappy-compatible codec
// offered as a fast optional interchange format for NBT documents next
// to the slower but wire-mandated gzip/zlib pair.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns an S2Compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress S2-compresses data at the library's default level.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
