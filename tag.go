// Package nbt implements the Named Binary Tag format: a compact,
// big-endian, self-describing tagged tree used to persist hierarchical
// game data. It provides a generic typed-value tree (Tag/CompoundTag) and
// a streaming binary codec (Decoder/Encoder) for it, plus a reflection-
// driven path for reading and writing user-defined Go structs directly.
//
// # Core Types
//
//   - Tag: a single typed value in the tree (one of 12 wire variants).
//   - CompoundTag: the named, ordered-map root of every NBT document.
//
// # Codec
//
//   - Decoder / ReadNBT, ReadGzipNBT, ReadZlibNBT, ReadZstdNBT, ReadLZ4NBT,
//     ReadS2NBT: materialize a CompoundTag from bytes.
//   - Encoder / WriteNBT, WriteGzipNBT, WriteZlibNBT, WriteZstdNBT,
//     WriteLZ4NBT, WriteS2NBT: serialize a CompoundTag to bytes.
//   - Marshal/Unmarshal: the same codec driven by a user struct's `nbt`
//     field tags instead of a generic Tag tree.
//
// # Thread Safety
//
// Decoder and Encoder are not safe for concurrent use by multiple
// goroutines. A fully-built Tag/CompoundTag is safe for concurrent reads;
// the codec never mutates a tree it is serializing.
package nbt

import (
	"math"

	"github.com/sculkbyte/nbt/tagtype"
)

// Tag is a single NBT value: a tagged union over the 12 wire variants of
// the format. The zero Tag is TAG_End and carries no payload; it is
// never a valid tree value, only a sentinel the decoder and encoder use
// internally.
//
// List, ByteArray, IntArray, and LongArray are kept as fully distinct
// variants. Nothing in this package ever promotes one into another —
// conversion is only ever explicit, via NewByteArrayFromList and its
// siblings.
type Tag struct {
	kind tagtype.TagID

	i8  int8
	i16 int16
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string

	byteArray []int8
	intArray  []int32
	longArray []int64

	listElem tagtype.TagID
	list     []Tag

	compound *CompoundTag
}

// Type returns the tag's wire variant.
func (t Tag) Type() tagtype.TagID { return t.kind }

// DefaultFor returns an empty value of the requested variant. It fails
// with UnknownTagTypeError for any id outside 1..=12 (TAG_End is not a
// constructible value).
func DefaultFor(id tagtype.TagID) (Tag, error) {
	switch id {
	case tagtype.Byte:
		return NewByte(0), nil
	case tagtype.Short:
		return NewShort(0), nil
	case tagtype.Int:
		return NewInt(0), nil
	case tagtype.Long:
		return NewLong(0), nil
	case tagtype.Float:
		return NewFloat(0), nil
	case tagtype.Double:
		return NewDouble(0), nil
	case tagtype.ByteArray:
		return NewByteArray(nil), nil
	case tagtype.String:
		return NewString(""), nil
	case tagtype.List:
		t, _ := NewList(tagtype.End, nil)
		return t, nil
	case tagtype.Compound:
		return NewCompoundTag(NewCompound()), nil
	case tagtype.IntArray:
		return NewIntArray(nil), nil
	case tagtype.LongArray:
		return NewLongArray(nil), nil
	default:
		return Tag{}, &UnknownTagTypeError{ID: uint8(id)}
	}
}

func NewByte(v int8) Tag    { return Tag{kind: tagtype.Byte, i8: v} }
func NewShort(v int16) Tag  { return Tag{kind: tagtype.Short, i16: v} }
func NewInt(v int32) Tag    { return Tag{kind: tagtype.Int, i32: v} }
func NewLong(v int64) Tag   { return Tag{kind: tagtype.Long, i64: v} }
func NewFloat(v float32) Tag { return Tag{kind: tagtype.Float, f32: v} }
func NewDouble(v float64) Tag { return Tag{kind: tagtype.Double, f64: v} }
func NewString(v string) Tag { return Tag{kind: tagtype.String, str: v} }

// NewByteArray builds a TAG_Byte_Array. The slice is copied.
func NewByteArray(v []int8) Tag {
	return Tag{kind: tagtype.ByteArray, byteArray: append([]int8(nil), v...)}
}

// NewIntArray builds a TAG_Int_Array. The slice is copied.
func NewIntArray(v []int32) Tag {
	return Tag{kind: tagtype.IntArray, intArray: append([]int32(nil), v...)}
}

// NewLongArray builds a TAG_Long_Array. The slice is copied.
func NewLongArray(v []int64) Tag {
	return Tag{kind: tagtype.LongArray, longArray: append([]int64(nil), v...)}
}

// NewCompoundTag wraps a *CompoundTag as a Tag value, for use as a nested
// Compound field or List element.
func NewCompoundTag(c *CompoundTag) Tag {
	return Tag{kind: tagtype.Compound, compound: c}
}

// NewList builds a TAG_List. elemType is the element tag-id recorded on
// the wire; items must all share that variant (an empty list accepts any
// elemType, including End). It fails with TagMismatchError on the first
// element whose type disagrees with elemType.
func NewList(elemType tagtype.TagID, items []Tag) (Tag, error) {
	for _, it := range items {
		if it.kind != elemType {
			return Tag{}, &TagMismatchError{Found: it.kind, Expected: elemType}
		}
	}

	return Tag{kind: tagtype.List, listElem: elemType, list: append([]Tag(nil), items...)}, nil
}

// Byte, Short, Int, Long, Float, Double, Str return the tag's scalar
// payload and whether t is actually that variant.
func (t Tag) Byte() (int8, bool)      { return t.i8, t.kind == tagtype.Byte }
func (t Tag) Short() (int16, bool)    { return t.i16, t.kind == tagtype.Short }
func (t Tag) Int() (int32, bool)      { return t.i32, t.kind == tagtype.Int }
func (t Tag) Long() (int64, bool)     { return t.i64, t.kind == tagtype.Long }
func (t Tag) Float() (float32, bool)  { return t.f32, t.kind == tagtype.Float }
func (t Tag) Double() (float64, bool) { return t.f64, t.kind == tagtype.Double }
func (t Tag) Str() (string, bool)     { return t.str, t.kind == tagtype.String }

// ByteArray, IntArray, LongArray return the tag's array payload (shared,
// not copied) and whether t is actually that variant.
func (t Tag) ByteArray() ([]int8, bool)  { return t.byteArray, t.kind == tagtype.ByteArray }
func (t Tag) IntArray() ([]int32, bool)  { return t.intArray, t.kind == tagtype.IntArray }
func (t Tag) LongArray() ([]int64, bool) { return t.longArray, t.kind == tagtype.LongArray }

// List returns the element tag-id and elements (shared, not copied) if t
// is TAG_List.
func (t Tag) List() (tagtype.TagID, []Tag, bool) {
	return t.listElem, t.list, t.kind == tagtype.List
}

// Compound returns the nested *CompoundTag if t is TAG_Compound.
func (t Tag) Compound() (*CompoundTag, bool) {
	return t.compound, t.kind == tagtype.Compound
}

// NewByteArrayFromList converts a homogeneous []Tag of TAG_Byte elements
// into a TAG_Byte_Array. This is the only sanctioned List→array
// conversion; it is never performed implicitly by the codec or by
// NewList. An empty list converts to an empty array.
func NewByteArrayFromList(elemType tagtype.TagID, items []Tag) (Tag, error) {
	if elemType != tagtype.Byte {
		return Tag{}, &TagMismatchError{Found: elemType, Expected: tagtype.Byte}
	}
	out := make([]int8, 0, len(items))
	for _, it := range items {
		v, ok := it.Byte()
		if !ok {
			return Tag{}, &TagMismatchError{Found: it.kind, Expected: tagtype.Byte}
		}
		out = append(out, v)
	}

	return NewByteArray(out), nil
}

// NewIntArrayFromList is NewByteArrayFromList's TAG_Int counterpart.
func NewIntArrayFromList(elemType tagtype.TagID, items []Tag) (Tag, error) {
	if elemType != tagtype.Int {
		return Tag{}, &TagMismatchError{Found: elemType, Expected: tagtype.Int}
	}
	out := make([]int32, 0, len(items))
	for _, it := range items {
		v, ok := it.Int()
		if !ok {
			return Tag{}, &TagMismatchError{Found: it.kind, Expected: tagtype.Int}
		}
		out = append(out, v)
	}

	return NewIntArray(out), nil
}

// NewLongArrayFromList is NewByteArrayFromList's TAG_Long counterpart.
func NewLongArrayFromList(elemType tagtype.TagID, items []Tag) (Tag, error) {
	if elemType != tagtype.Long {
		return Tag{}, &TagMismatchError{Found: elemType, Expected: tagtype.Long}
	}
	out := make([]int64, 0, len(items))
	for _, it := range items {
		v, ok := it.Long()
		if !ok {
			return Tag{}, &TagMismatchError{Found: it.kind, Expected: tagtype.Long}
		}
		out = append(out, v)
	}

	return NewLongArray(out), nil
}

// Clone returns a deep copy of t: array/list slices and any nested
// Compound are copied rather than shared.
func (t Tag) Clone() Tag {
	switch t.kind {
	case tagtype.ByteArray:
		return NewByteArray(t.byteArray)
	case tagtype.IntArray:
		return NewIntArray(t.intArray)
	case tagtype.LongArray:
		return NewLongArray(t.longArray)
	case tagtype.List:
		items := make([]Tag, len(t.list))
		for i, it := range t.list {
			items[i] = it.Clone()
		}
		return Tag{kind: tagtype.List, listElem: t.listElem, list: items}
	case tagtype.Compound:
		return NewCompoundTag(t.compound.Clone())
	default:
		return t
	}
}

// Equal reports whether t and other are structurally identical: same
// variant, same payload, same Compound key order, and (for Float/Double)
// the same IEEE-754 bit pattern — so two NaNs with identical bits compare
// equal even though NaN != NaN arithmetically.
func (t Tag) Equal(other Tag) bool {
	if t.kind != other.kind {
		return false
	}

	switch t.kind {
	case tagtype.End:
		return true
	case tagtype.Byte:
		return t.i8 == other.i8
	case tagtype.Short:
		return t.i16 == other.i16
	case tagtype.Int:
		return t.i32 == other.i32
	case tagtype.Long:
		return t.i64 == other.i64
	case tagtype.Float:
		return math.Float32bits(t.f32) == math.Float32bits(other.f32)
	case tagtype.Double:
		return math.Float64bits(t.f64) == math.Float64bits(other.f64)
	case tagtype.String:
		return t.str == other.str
	case tagtype.ByteArray:
		return equalSlice(t.byteArray, other.byteArray)
	case tagtype.IntArray:
		return equalSlice(t.intArray, other.intArray)
	case tagtype.LongArray:
		return equalSlice(t.longArray, other.longArray)
	case tagtype.List:
		if t.listElem != other.listElem || len(t.list) != len(other.list) {
			return false
		}
		for i := range t.list {
			if !t.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case tagtype.Compound:
		return t.compound.Equal(other.compound)
	default:
		return false
	}
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
