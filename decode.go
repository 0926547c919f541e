package nbt

import (
	"io"

	"github.com/sculkbyte/nbt/internal/options"
	"github.com/sculkbyte/nbt/internal/pool"
	"github.com/sculkbyte/nbt/rawio"
	"github.com/sculkbyte/nbt/tagtype"
)

// DecoderConfig holds the guard-rail limits a Decoder enforces while
// walking a Compound body. A zero limit means unlimited, the default.
type DecoderConfig struct {
	maxDepth     int
	maxStringLen int
	maxArrayLen  int
}

// DecoderOption configures a Decoder via nbt/internal/options' generic
// functional-option mechanism.
type DecoderOption = options.Option[*DecoderConfig]

// WithMaxDepth rejects input nesting Compound/List values deeper than
// limit, guarding against stack-exhausting adversarial input.
func WithMaxDepth(limit int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.maxDepth = limit })
}

// WithMaxStringLength rejects String/name payloads longer than limit
// bytes, ahead of rawio's built-in 65535-byte wire ceiling.
func WithMaxStringLength(limit int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.maxStringLen = limit })
}

// WithMaxArrayLength rejects ByteArray/IntArray/LongArray/List length
// prefixes greater than limit elements.
func WithMaxArrayLength(limit int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.maxArrayLen = limit })
}

func newDecoderConfig(opts ...DecoderOption) (*DecoderConfig, error) {
	cfg := &DecoderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decoder reads a single NBT document from an io.Reader. It is strictly
// sequential: each call reads exactly as many bytes as the wire format
// demands and never buffers ahead. A Decoder is not safe for concurrent
// use by multiple goroutines.
type Decoder struct {
	r   io.Reader
	cfg *DecoderConfig
}

// NewDecoder wraps r in a Decoder configured by opts.
func NewDecoder(r io.Reader, opts ...DecoderOption) (*Decoder, error) {
	cfg, err := newDecoderConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Decoder{r: r, cfg: cfg}, nil
}

// Decode reads one root Compound tag. The root tag-id must be
// TAG_Compound; anything else is a RootMustBeCompoundError.
func (d *Decoder) Decode() (*CompoundTag, error) {
	idByte, err := rawio.ReadU8(d.r)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	if tagtype.TagID(idByte) != tagtype.Compound {
		return nil, &RootMustBeCompoundError{Found: idByte}
	}

	name, err := d.readName()
	if err != nil {
		return nil, err
	}

	root := NamedCompound(name)
	if err := d.readCompoundBody(root, 1); err != nil {
		return nil, err
	}
	return root, nil
}

func (d *Decoder) readName() (string, error) {
	name, err := rawio.ReadString(d.r)
	if err != nil {
		if err == rawio.ErrInvalidUTF8 {
			return "", &UTF8Error{Err: err}
		}
		return "", &IOError{Err: err}
	}
	if d.cfg.maxStringLen > 0 && len(name) > d.cfg.maxStringLen {
		return "", &MaxLengthExceededError{Kind: "string", Limit: d.cfg.maxStringLen}
	}
	return name, nil
}

func (d *Decoder) readCompoundBody(c *CompoundTag, depth int) error {
	if d.cfg.maxDepth > 0 && depth > d.cfg.maxDepth {
		return &MaxDepthExceededError{Limit: d.cfg.maxDepth}
	}

	for {
		idByte, err := rawio.ReadU8(d.r)
		if err != nil {
			return &IOError{Err: err}
		}
		id := tagtype.TagID(idByte)
		if id == tagtype.End {
			return nil
		}
		if !id.Valid() {
			return &UnknownTagTypeError{ID: idByte}
		}

		name, err := d.readName()
		if err != nil {
			return err
		}

		value, err := d.readPayload(id, depth)
		if err != nil {
			return err
		}
		c.Set(name, value)
	}
}

func (d *Decoder) readLength(kind string) (int32, error) {
	n, err := rawio.ReadI32(d.r)
	if err != nil {
		return 0, &IOError{Err: err}
	}
	if n < 0 {
		return 0, &NegativeLengthError{Kind: kind, Length: n}
	}
	if d.cfg.maxArrayLen > 0 && int(n) > d.cfg.maxArrayLen {
		return 0, &MaxLengthExceededError{Kind: kind, Limit: d.cfg.maxArrayLen}
	}
	return n, nil
}

func (d *Decoder) readPayload(id tagtype.TagID, depth int) (Tag, error) {
	switch id {
	case tagtype.Byte:
		v, err := rawio.ReadI8(d.r)
		if err != nil {
			return Tag{}, &IOError{Err: err}
		}
		return NewByte(v), nil

	case tagtype.Short:
		v, err := rawio.ReadI16(d.r)
		if err != nil {
			return Tag{}, &IOError{Err: err}
		}
		return NewShort(v), nil

	case tagtype.Int:
		v, err := rawio.ReadI32(d.r)
		if err != nil {
			return Tag{}, &IOError{Err: err}
		}
		return NewInt(v), nil

	case tagtype.Long:
		v, err := rawio.ReadI64(d.r)
		if err != nil {
			return Tag{}, &IOError{Err: err}
		}
		return NewLong(v), nil

	case tagtype.Float:
		v, err := rawio.ReadF32(d.r)
		if err != nil {
			return Tag{}, &IOError{Err: err}
		}
		return NewFloat(v), nil

	case tagtype.Double:
		v, err := rawio.ReadF64(d.r)
		if err != nil {
			return Tag{}, &IOError{Err: err}
		}
		return NewDouble(v), nil

	case tagtype.String:
		s, err := rawio.ReadString(d.r)
		if err != nil {
			if err == rawio.ErrInvalidUTF8 {
				return Tag{}, &UTF8Error{Err: err}
			}
			return Tag{}, &IOError{Err: err}
		}
		if d.cfg.maxStringLen > 0 && len(s) > d.cfg.maxStringLen {
			return Tag{}, &MaxLengthExceededError{Kind: "string", Limit: d.cfg.maxStringLen}
		}
		return NewString(s), nil

	case tagtype.ByteArray:
		n, err := d.readLength("byte array")
		if err != nil {
			return Tag{}, err
		}
		scratch, cleanup := pool.GetByteSlice(int(n))
		defer cleanup()
		for i := range scratch {
			v, err := rawio.ReadI8(d.r)
			if err != nil {
				return Tag{}, &IOError{Err: err}
			}
			scratch[i] = v
		}
		return NewByteArray(scratch), nil

	case tagtype.IntArray:
		n, err := d.readLength("int array")
		if err != nil {
			return Tag{}, err
		}
		scratch, cleanup := pool.GetInt32Slice(int(n))
		defer cleanup()
		for i := range scratch {
			v, err := rawio.ReadI32(d.r)
			if err != nil {
				return Tag{}, &IOError{Err: err}
			}
			scratch[i] = v
		}
		return NewIntArray(scratch), nil

	case tagtype.LongArray:
		n, err := d.readLength("long array")
		if err != nil {
			return Tag{}, err
		}
		scratch, cleanup := pool.GetInt64Slice(int(n))
		defer cleanup()
		for i := range scratch {
			v, err := rawio.ReadI64(d.r)
			if err != nil {
				return Tag{}, &IOError{Err: err}
			}
			scratch[i] = v
		}
		return NewLongArray(scratch), nil

	case tagtype.List:
		elemIDByte, err := rawio.ReadU8(d.r)
		if err != nil {
			return Tag{}, &IOError{Err: err}
		}
		elemID := tagtype.TagID(elemIDByte)

		n, err := d.readLength("list")
		if err != nil {
			return Tag{}, err
		}
		// An out-of-range element tag-id is only a problem once it would
		// actually be used to decode an element; a zero-length list accepts
		// any byte here, including ones with no corresponding tag kind.
		if n > 0 && !elemID.Valid() {
			return Tag{}, &UnknownTagTypeError{ID: elemIDByte}
		}
		if d.cfg.maxDepth > 0 && depth+1 > d.cfg.maxDepth {
			return Tag{}, &MaxDepthExceededError{Limit: d.cfg.maxDepth}
		}

		items := make([]Tag, 0, n)
		for i := int32(0); i < n; i++ {
			if elemID == tagtype.End {
				// A TAG_End element type with nonzero length never occurs on
				// a well-formed wire; treat it as an empty list body.
				break
			}
			v, err := d.readPayload(elemID, depth+1)
			if err != nil {
				return Tag{}, err
			}
			items = append(items, v)
		}
		return Tag{kind: tagtype.List, listElem: elemID, list: items}, nil

	case tagtype.Compound:
		nested := NewCompound()
		if err := d.readCompoundBody(nested, depth+1); err != nil {
			return Tag{}, err
		}
		return NewCompoundTag(nested), nil

	default:
		return Tag{}, &UnknownTagTypeError{ID: uint8(id)}
	}
}

// ReadNBT decodes an uncompressed root Compound tag from r.
func ReadNBT(r io.Reader, opts ...DecoderOption) (*CompoundTag, error) {
	dec, err := NewDecoder(r, opts...)
	if err != nil {
		return nil, err
	}
	return dec.Decode()
}
