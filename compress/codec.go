package compress

import "fmt"

// Compressor compresses a complete byte payload and returns the
// compressed result as a single, self-contained buffer.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same Format.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Format identifies a compression container.
type Format uint8

const (
	// None passes data through unmodified.
	None Format = iota
	// Gzip is the RFC 1952 container, magic bytes 1F 8B.
	Gzip
	// Zlib is the RFC 1950 container, header bytes 78 01/9C/DA.
	Zlib
	// Zstd is the Zstandard frame format.
	Zstd
	// S2 is Klaus Post's Snappy-compatible S2 block format.
	S2
	// LZ4 is raw (unframed) LZ4 block compression.
	LZ4
)

func (f Format) String() string {
	switch f {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// CompressionStats reports the effect of a single compress operation, for
// CLI diagnostics and benchmarking.
type CompressionStats struct {
	Format         Format
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns CompressedSize/OriginalSize (0 if OriginalSize
// is 0). Values under 1.0 indicate the data shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the percentage of bytes saved, 0-100.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec builds a fresh Codec for the given Format. target names the
// caller's use site, folded into the error message when format is
// unrecognized.
func CreateCodec(format Format, target string) (Codec, error) {
	switch format {
	case None:
		return NewNoOpCompressor(), nil
	case Gzip:
		return NewGzipCompressor(), nil
	case Zlib:
		return NewZlibCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("compress: invalid %s compression: %s", target, format)
	}
}

var builtinCodecs = map[Format]func() Codec{
	None: func() Codec { return NewNoOpCompressor() },
	Gzip: func() Codec { return NewGzipCompressor() },
	Zlib: func() Codec { return NewZlibCompressor() },
	Zstd: func() Codec { return NewZstdCompressor() },
	S2:   func() Codec { return NewS2Compressor() },
	LZ4:  func() Codec { return NewLZ4Compressor() },
}

// GetCodec retrieves a fresh built-in Codec for format.
func GetCodec(format Format) (Codec, error) {
	if newCodec, ok := builtinCodecs[format]; ok {
		return newCodec(), nil
	}

	return nil, fmt.Errorf("compress: unsupported compression type: %s", format)
}

// Sniff identifies the compression Format of a buffer from its leading
// bytes: 1F 8B is gzip; a zlib RFC1950 header (a 0x78 CMF byte followed
// by one of the four standard FLG bytes) is zlib; anything else is
// treated as None (raw, uncompressed NBT). Unlike some NBT forks, this
// never treats the ZIP local-file-header marker "PK\x03\x04" as a zlib
// signature.
func Sniff(peek []byte) (Format, error) {
	if len(peek) < 5 {
		return None, &ErrShortPeek{Available: len(peek)}
	}

	if peek[0] == 0x1F && peek[1] == 0x8B {
		return Gzip, nil
	}

	if peek[0] == 0x78 {
		switch peek[1] {
		case 0x01, 0x5E, 0x9C, 0xDA:
			return Zlib, nil
		}
	}

	return None, nil
}

// ErrShortPeek is returned by Sniff when fewer than 5 bytes are
// available to identify the container.
type ErrShortPeek struct {
	Available int
}

func (e *ErrShortPeek) Error() string {
	return fmt.Sprintf("compress: need at least 5 bytes to sniff format, got %d", e.Available)
}
