// Package compress adapts several general-purpose compression libraries
// to the narrow contract NBT's compression framing needs: take a
// complete, self-contained document and wrap or unwrap it in exactly one
// compressed container.
//
// Gzip and zlib are the two wire-mandated formats. Zstd, S2, and LZ4 are
// additional interchange formats the decoder and encoder also expose
// entry points for, useful when NBT documents move through a pipeline
// that already standardizes on one of them.
//
//	codec, _ := compress.CreateCodec(compress.Gzip, "nbt decode")
//	raw, _ := codec.Decompress(compressed)
//
// Sniff identifies which of these formats (or none) a buffer starts
// with, from its leading bytes alone — the mechanism nbt.ReadAutoNBT
// uses to accept raw, gzip, and zlib input through the same call.
//
// Every Codec implementation here is safe for concurrent use; the
// pooled encoders/decoders backing Zstd and LZ4 are internally
// synchronized.
package compress
