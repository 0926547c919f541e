package nbt

import (
	"bytes"
	"reflect"
	"strings"

	"github.com/sculkbyte/nbt/tagtype"
)

// The marker suffixes the encoder recognizes on a map[string]any key to
// force ByteArray/IntArray/LongArray encoding of
// a value that would otherwise be ambiguous with an ordinary List (for
// example a []any of boxed numbers decoded from JSON). A struct field's
// Go type never needs this — reflection already sees []int8/[]int32/
// []int64 unambiguously — so the markers only matter on the dynamic,
// map[string]any path. The encoder strips the suffix from the key it
// writes; decoding does not add it back.
const (
	ByteArrayMarkerSuffix = "__libnbt_i8_array__"
	IntArrayMarkerSuffix  = "__libnbt_i32_array__"
	LongArrayMarkerSuffix = "__libnbt_i64_array__"
)

// Marshal encodes v, a struct or map[string]V, as an uncompressed NBT
// document. v's top level becomes the unnamed root Compound.
func Marshal(v any) ([]byte, error) {
	root, err := MarshalCompound(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteNBT(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalCompound encodes v into a *CompoundTag without serializing it,
// for callers building a larger tree around it.
func MarshalCompound(v any) (*CompoundTag, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return NewCompound(), nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return encodeStruct(rv)
	case reflect.Map:
		return encodeMap(rv)
	default:
		return nil, &UnrepresentableError{Kind: rv.Kind().String()}
	}
}

func encodeStruct(rv reflect.Value) (*CompoundTag, error) {
	c := NewCompound()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}

		name, omitempty, skip := fieldTag(field)
		if skip {
			continue
		}

		fv := rv.Field(i)
		if omitempty && fv.IsZero() {
			continue
		}

		tag, err := encodeValue(fv)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			continue // nil pointer/interface field: omit entirely
		}
		c.Set(name, *tag)
	}

	return c, nil
}

// fieldTag reads the `nbt:"name,omitempty"` tag, defaulting name to the
// Go field name when absent. `nbt:"-"` skips the field.
func fieldTag(field reflect.StructField) (name string, omitempty bool, skip bool) {
	raw, ok := field.Tag.Lookup("nbt")
	name = field.Name
	if !ok {
		return name, false, false
	}
	if raw == "-" {
		return "", false, true
	}

	parts := strings.Split(raw, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

// encodeValue returns nil, nil for a nil pointer/interface, which the
// caller treats as "omit this field" rather than "encode null" — NBT has
// no null tag.
func encodeValue(fv reflect.Value) (*Tag, error) {
	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return nil, nil
		}
		return encodeValue(fv.Elem())

	case reflect.Interface:
		if fv.IsNil() {
			return nil, nil
		}
		return encodeValue(fv.Elem())

	case reflect.Bool:
		var b int8
		if fv.Bool() {
			b = 1
		}
		t := NewByte(b)
		return &t, nil

	case reflect.Int8:
		t := NewByte(int8(fv.Int()))
		return &t, nil

	case reflect.Int16:
		t := NewShort(int16(fv.Int()))
		return &t, nil

	case reflect.Int32, reflect.Int:
		t := NewInt(int32(fv.Int()))
		return &t, nil

	case reflect.Int64:
		t := NewLong(fv.Int())
		return &t, nil

	case reflect.Uint8:
		t := NewByte(int8(fv.Uint()))
		return &t, nil

	case reflect.Float32:
		t := NewFloat(float32(fv.Float()))
		return &t, nil

	case reflect.Float64:
		t := NewDouble(fv.Float())
		return &t, nil

	case reflect.String:
		t := NewString(fv.String())
		return &t, nil

	case reflect.Struct:
		nested, err := encodeStruct(fv)
		if err != nil {
			return nil, err
		}
		t := NewCompoundTag(nested)
		return &t, nil

	case reflect.Map:
		nested, err := encodeMap(fv)
		if err != nil {
			return nil, err
		}
		t := NewCompoundTag(nested)
		return &t, nil

	case reflect.Slice, reflect.Array:
		return encodeSlice(fv)

	default:
		return nil, &UnrepresentableError{Kind: fv.Kind().String()}
	}
}

func encodeSlice(fv reflect.Value) (*Tag, error) {
	elemKind := fv.Type().Elem().Kind()

	switch elemKind {
	case reflect.Int8, reflect.Uint8:
		out := make([]int8, fv.Len())
		for i := range out {
			out[i] = int8(sliceElemInt(fv.Index(i)))
		}
		t := NewByteArray(out)
		return &t, nil

	case reflect.Int32:
		out := make([]int32, fv.Len())
		for i := range out {
			out[i] = int32(fv.Index(i).Int())
		}
		t := NewIntArray(out)
		return &t, nil

	case reflect.Int64:
		out := make([]int64, fv.Len())
		for i := range out {
			out[i] = fv.Index(i).Int()
		}
		t := NewLongArray(out)
		return &t, nil

	default:
		n := fv.Len()
		items := make([]Tag, 0, n)
		elemType := tagtype.End
		for i := 0; i < n; i++ {
			item, err := encodeValue(fv.Index(i))
			if err != nil {
				return nil, err
			}
			if item == nil {
				return nil, &UnrepresentableError{Kind: "nil list element"}
			}
			if i == 0 {
				elemType = item.Type()
			} else if item.Type() != elemType {
				return nil, &TagMismatchError{Found: item.Type(), Expected: elemType}
			}
			items = append(items, *item)
		}
		list, err := NewList(elemType, items)
		if err != nil {
			return nil, err
		}
		return &list, nil
	}
}

func sliceElemInt(v reflect.Value) int64 {
	if v.Kind() == reflect.Uint8 {
		return int64(v.Uint())
	}
	return v.Int()
}

func encodeMap(rv reflect.Value) (*CompoundTag, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, &NonStringMapKeyError{KeyKind: rv.Type().Key().Kind().String()}
	}

	c := NewCompound()
	iter := rv.MapRange()
	for iter.Next() {
		rawKey := iter.Key().String()
		val := iter.Value()

		key, forced := stripArrayMarker(rawKey)
		if forced != tagtype.End {
			tag, err := forceTypedArray(forced, val)
			if err != nil {
				return nil, err
			}
			c.Set(key, tag)
			continue
		}

		tag, err := encodeValue(val)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			continue
		}
		c.Set(key, *tag)
	}

	return c, nil
}

func stripArrayMarker(key string) (string, tagtype.TagID) {
	switch {
	case strings.HasSuffix(key, ByteArrayMarkerSuffix):
		return strings.TrimSuffix(key, ByteArrayMarkerSuffix), tagtype.ByteArray
	case strings.HasSuffix(key, IntArrayMarkerSuffix):
		return strings.TrimSuffix(key, IntArrayMarkerSuffix), tagtype.IntArray
	case strings.HasSuffix(key, LongArrayMarkerSuffix):
		return strings.TrimSuffix(key, LongArrayMarkerSuffix), tagtype.LongArray
	default:
		return key, tagtype.End
	}
}

func forceTypedArray(kind tagtype.TagID, val reflect.Value) (Tag, error) {
	for val.Kind() == reflect.Interface {
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return Tag{}, &UnrepresentableError{Kind: "typed array marker on non-slice value"}
	}

	n := val.Len()
	switch kind {
	case tagtype.ByteArray:
		out := make([]int8, n)
		for i := 0; i < n; i++ {
			v, err := elemAsInt64(val.Index(i))
			if err != nil {
				return Tag{}, err
			}
			out[i] = int8(v)
		}
		return NewByteArray(out), nil

	case tagtype.IntArray:
		out := make([]int32, n)
		for i := 0; i < n; i++ {
			v, err := elemAsInt64(val.Index(i))
			if err != nil {
				return Tag{}, err
			}
			out[i] = int32(v)
		}
		return NewIntArray(out), nil

	case tagtype.LongArray:
		out := make([]int64, n)
		for i := 0; i < n; i++ {
			v, err := elemAsInt64(val.Index(i))
			if err != nil {
				return Tag{}, err
			}
			out[i] = v
		}
		return NewLongArray(out), nil

	default:
		return Tag{}, &UnrepresentableError{Kind: "unsupported marker kind"}
	}
}

func elemAsInt64(v reflect.Value) (int64, error) {
	for v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	default:
		return 0, &UnrepresentableError{Kind: v.Kind().String()}
	}
}
