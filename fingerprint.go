package nbt

import (
	"github.com/sculkbyte/nbt/internal/hash"
	"github.com/sculkbyte/nbt/internal/pool"
)

// Fingerprint returns an xxHash64 digest of t's canonical encoded bytes.
// Two tags that are Equal always have the same Fingerprint; the converse
// is not guaranteed (hash collisions), so Fingerprint is a cheap
// pre-filter before a full Equal, not a replacement for it.
func (t Tag) Fingerprint() uint64 {
	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	// A bare Tag has no name of its own (only Compound entries and the
	// root carry one), so only its payload is encoded, with no tag-id or
	// name header in front of it.
	enc := &Encoder{w: buf, cfg: &EncoderConfig{}}
	if err := enc.writePayload(t); err != nil {
		// writePayload only fails on an io.Writer error or an invalid kind;
		// ByteBuffer.Write never errors and Tag.kind is always one DefaultFor
		// constructs, so this path is unreachable for any Tag built through
		// this package's API.
		return 0
	}

	return hash.Bytes(buf.Bytes())
}

// Fingerprint returns an xxHash64 digest of the root's canonical encoded
// bytes, including its name.
func (c *CompoundTag) Fingerprint() uint64 {
	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	enc := &Encoder{w: buf, cfg: &EncoderConfig{}}
	if err := enc.Encode(c); err != nil {
		return 0
	}

	return hash.Bytes(buf.Bytes())
}
