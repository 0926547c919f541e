package compress

// ZstdCompressor wraps klauspost/compress/zstd behind the Codec
// interface, backed by pooled encoders/decoders (see zstd_pure.go) so
// repeated small NBT documents don't pay warmup cost per call.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor returns a ZstdCompressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
