package nbt

import (
	"io"

	"github.com/sculkbyte/nbt/internal/options"
	"github.com/sculkbyte/nbt/rawio"
	"github.com/sculkbyte/nbt/tagtype"
)

// EncoderConfig holds Encoder behavior switches. Currently empty — it
// exists so Encoder's option surface mirrors Decoder's and can grow
// without breaking callers.
type EncoderConfig struct{}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig(opts ...EncoderOption) (*EncoderConfig, error) {
	cfg := &EncoderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encoder writes a single NBT document to an io.Writer, one primitive
// write at a time. It is not safe for concurrent use by multiple
// goroutines.
type Encoder struct {
	w   io.Writer
	cfg *EncoderConfig
}

// NewEncoder wraps w in an Encoder configured by opts.
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Encoder{w: w, cfg: cfg}, nil
}

// Encode writes root as the document's root Compound tag.
func (e *Encoder) Encode(root *CompoundTag) error {
	if err := rawio.WriteU8(e.w, uint8(tagtype.Compound)); err != nil {
		return &IOError{Err: err}
	}
	if err := e.writeName(root.Name); err != nil {
		return err
	}
	return e.writeCompoundBody(root)
}

func (e *Encoder) writeName(name string) error {
	if err := rawio.WriteString(e.w, name); err != nil {
		if err == rawio.ErrStringTooLong {
			return &StringTooLongError{Length: len(name)}
		}
		return &IOError{Err: err}
	}
	return nil
}

func (e *Encoder) writeCompoundBody(c *CompoundTag) error {
	var writeErr error
	c.Range(func(key string, value Tag) bool {
		if err := rawio.WriteU8(e.w, uint8(value.Type())); err != nil {
			writeErr = &IOError{Err: err}
			return false
		}
		if err := e.writeName(key); err != nil {
			writeErr = err
			return false
		}
		if err := e.writePayload(value); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}

	return rawio.WriteEnd(e.w)
}

func (e *Encoder) writePayload(t Tag) error {
	switch t.Type() {
	case tagtype.Byte:
		v, _ := t.Byte()
		return wrapIO(rawio.WriteI8(e.w, v))

	case tagtype.Short:
		v, _ := t.Short()
		return wrapIO(rawio.WriteI16(e.w, v))

	case tagtype.Int:
		v, _ := t.Int()
		return wrapIO(rawio.WriteI32(e.w, v))

	case tagtype.Long:
		v, _ := t.Long()
		return wrapIO(rawio.WriteI64(e.w, v))

	case tagtype.Float:
		v, _ := t.Float()
		return wrapIO(rawio.WriteF32(e.w, v))

	case tagtype.Double:
		v, _ := t.Double()
		return wrapIO(rawio.WriteF64(e.w, v))

	case tagtype.String:
		s, _ := t.Str()
		return e.writeName(s)

	case tagtype.ByteArray:
		v, _ := t.ByteArray()
		if err := wrapIO(rawio.WriteI32(e.w, int32(len(v)))); err != nil {
			return err
		}
		for _, b := range v {
			if err := wrapIO(rawio.WriteI8(e.w, b)); err != nil {
				return err
			}
		}
		return nil

	case tagtype.IntArray:
		v, _ := t.IntArray()
		if err := wrapIO(rawio.WriteI32(e.w, int32(len(v)))); err != nil {
			return err
		}
		for _, i32 := range v {
			if err := wrapIO(rawio.WriteI32(e.w, i32)); err != nil {
				return err
			}
		}
		return nil

	case tagtype.LongArray:
		v, _ := t.LongArray()
		if err := wrapIO(rawio.WriteI32(e.w, int32(len(v)))); err != nil {
			return err
		}
		for _, i64 := range v {
			if err := wrapIO(rawio.WriteI64(e.w, i64)); err != nil {
				return err
			}
		}
		return nil

	case tagtype.List:
		elemType, items, _ := t.List()
		if len(items) == 0 {
			// An empty list carries no element payloads to disambiguate, so
			// its declared elemType is encode-time bookkeeping only; the wire
			// form always writes TAG_End here regardless of what was recorded.
			elemType = tagtype.End
		}
		if err := wrapIO(rawio.WriteU8(e.w, uint8(elemType))); err != nil {
			return err
		}
		if err := wrapIO(rawio.WriteI32(e.w, int32(len(items)))); err != nil {
			return err
		}
		for _, item := range items {
			if err := e.writePayload(item); err != nil {
				return err
			}
		}
		return nil

	case tagtype.Compound:
		compound, _ := t.Compound()
		return e.writeCompoundBody(compound)

	default:
		return &UnknownTagTypeError{ID: uint8(t.Type())}
	}
}

func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Err: err}
}

// WriteNBT encodes root as an uncompressed root Compound tag to w.
func WriteNBT(w io.Writer, root *CompoundTag, opts ...EncoderOption) error {
	enc, err := NewEncoder(w, opts...)
	if err != nil {
		return err
	}
	return enc.Encode(root)
}
