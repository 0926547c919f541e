package main

import (
	"bufio"
	"io"

	"github.com/sculkbyte/nbt"
)

// writeSelectedFormat writes root as raw, gzip, or zlib NBT depending on
// the --gzip/--zlib flags.
func writeSelectedFormat(w io.Writer, root *nbt.CompoundTag) error {
	switch {
	case gzipFlag:
		return nbt.WriteGzipNBT(w, root)
	case zlibFlag:
		return nbt.WriteZlibNBT(w, root)
	default:
		return nbt.WriteNBT(w, root)
	}
}

// readSelectedFormat reads an NBT document from r. When neither --gzip
// nor --zlib is given it peeks the leading bytes and auto-detects
// between raw, gzip, and zlib framing.
func readSelectedFormat(r io.Reader) (*nbt.CompoundTag, error) {
	switch {
	case gzipFlag:
		return nbt.ReadGzipNBT(r)
	case zlibFlag:
		return nbt.ReadZlibNBT(r)
	default:
		br := bufio.NewReader(r)
		peek, err := br.Peek(5)
		if len(peek) == 0 && err != nil {
			return nil, err
		}
		return nbt.ReadAutoNBT(peek, br)
	}
}
