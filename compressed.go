package nbt

import (
	"bytes"
	"io"

	"github.com/sculkbyte/nbt/compress"
)

func readCompressed(r io.Reader, format compress.Format, opts ...DecoderOption) (*CompoundTag, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	codec, err := compress.GetCodec(format)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	plain, err := codec.Decompress(raw)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	return ReadNBT(bytes.NewReader(plain), opts...)
}

func writeCompressed(w io.Writer, root *CompoundTag, format compress.Format, opts ...EncoderOption) error {
	var buf bytes.Buffer
	if err := WriteNBT(&buf, root, opts...); err != nil {
		return err
	}

	codec, err := compress.GetCodec(format)
	if err != nil {
		return &IOError{Err: err}
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return &IOError{Err: err}
	}

	if _, err := w.Write(compressed); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// ReadGzipNBT decodes a gzip-compressed NBT document from r.
func ReadGzipNBT(r io.Reader, opts ...DecoderOption) (*CompoundTag, error) {
	return readCompressed(r, compress.Gzip, opts...)
}

// ReadZlibNBT decodes a zlib-compressed NBT document from r.
func ReadZlibNBT(r io.Reader, opts ...DecoderOption) (*CompoundTag, error) {
	return readCompressed(r, compress.Zlib, opts...)
}

// ReadZstdNBT decodes a zstd-compressed NBT document from r.
func ReadZstdNBT(r io.Reader, opts ...DecoderOption) (*CompoundTag, error) {
	return readCompressed(r, compress.Zstd, opts...)
}

// ReadLZ4NBT decodes an LZ4-compressed NBT document from r.
func ReadLZ4NBT(r io.Reader, opts ...DecoderOption) (*CompoundTag, error) {
	return readCompressed(r, compress.LZ4, opts...)
}

// ReadS2NBT decodes an S2-compressed NBT document from r.
func ReadS2NBT(r io.Reader, opts ...DecoderOption) (*CompoundTag, error) {
	return readCompressed(r, compress.S2, opts...)
}

// WriteGzipNBT encodes root and gzip-compresses it to w.
func WriteGzipNBT(w io.Writer, root *CompoundTag, opts ...EncoderOption) error {
	return writeCompressed(w, root, compress.Gzip, opts...)
}

// WriteZlibNBT encodes root and zlib-compresses it to w.
func WriteZlibNBT(w io.Writer, root *CompoundTag, opts ...EncoderOption) error {
	return writeCompressed(w, root, compress.Zlib, opts...)
}

// WriteZstdNBT encodes root and zstd-compresses it to w.
func WriteZstdNBT(w io.Writer, root *CompoundTag, opts ...EncoderOption) error {
	return writeCompressed(w, root, compress.Zstd, opts...)
}

// WriteLZ4NBT encodes root and LZ4-compresses it to w.
func WriteLZ4NBT(w io.Writer, root *CompoundTag, opts ...EncoderOption) error {
	return writeCompressed(w, root, compress.LZ4, opts...)
}

// WriteS2NBT encodes root and S2-compresses it to w.
func WriteS2NBT(w io.Writer, root *CompoundTag, opts ...EncoderOption) error {
	return writeCompressed(w, root, compress.S2, opts...)
}

// ReadAutoNBT sniffs peek's leading bytes to determine whether r holds a
// raw, gzip, or zlib NBT document and decodes it accordingly. peek must
// hold the first bytes of r (at least 5) without having consumed them
// from r, since r is decoded from its start; callers typically obtain it
// with a bufio.Reader's Peek. zstd/S2/LZ4 are never
// auto-detected — their frame headers are not reserved for NBT the way
// gzip and zlib's are, so callers that expect one of those formats must
// use its dedicated ReadXNBT function directly.
func ReadAutoNBT(peek []byte, r io.Reader, opts ...DecoderOption) (*CompoundTag, error) {
	format, err := compress.Sniff(peek)
	if err != nil {
		return nil, &BadFileFormatError{}
	}

	switch format {
	case compress.Gzip:
		return ReadGzipNBT(r, opts...)
	case compress.Zlib:
		return ReadZlibNBT(r, opts...)
	default:
		return ReadNBT(r, opts...)
	}
}
