package nbt

import (
	"bytes"
	"reflect"

	"github.com/sculkbyte/nbt/tagtype"
)

// Unmarshal decodes an uncompressed NBT document into v, a pointer to a
// struct or map[string]V.
func Unmarshal(data []byte, v any) error {
	root, err := ReadNBT(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return UnmarshalCompound(root, v)
}

// UnmarshalCompound populates v, a pointer to a struct or map[string]V,
// from an already-decoded CompoundTag.
func UnmarshalCompound(root *CompoundTag, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnrepresentableError{Kind: "Unmarshal target must be a non-nil pointer"}
	}

	target := rv.Elem()
	switch target.Kind() {
	case reflect.Struct:
		return decodeIntoStruct(root, target)
	case reflect.Map:
		return decodeIntoMap(root, target)
	default:
		return &UnrepresentableError{Kind: target.Kind().String()}
	}
}

func decodeIntoStruct(c *CompoundTag, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name, _, skip := fieldTag(field)
		if skip {
			continue
		}

		tag, ok := c.Get(name)
		if !ok {
			continue
		}
		if err := decodeIntoValue(tag, rv.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeIntoMap(c *CompoundTag, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return &NonStringMapKeyError{KeyKind: rv.Type().Key().Kind().String()}
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(rv.Type(), c.Len()))
	}

	elemType := rv.Type().Elem()
	var decodeErr error
	c.Range(func(key string, value Tag) bool {
		elemVal := reflect.New(elemType).Elem()
		if err := decodeIntoValue(value, elemVal); err != nil {
			decodeErr = err
			return false
		}
		rv.SetMapIndex(reflect.ValueOf(key), elemVal)
		return true
	})
	return decodeErr
}

func decodeIntoValue(tag Tag, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeIntoValue(tag, rv.Elem())

	case reflect.Interface:
		val, err := tagToAny(tag)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(val))
		return nil

	case reflect.Bool:
		b, ok := tag.Byte()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Byte}
		}
		if b != 0 && b != 1 {
			return &NonBooleanByteError{Value: b}
		}
		rv.SetBool(b == 1)
		return nil

	case reflect.Int8:
		b, ok := tag.Byte()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Byte}
		}
		rv.SetInt(int64(b))
		return nil

	case reflect.Int16:
		s, ok := tag.Short()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Short}
		}
		rv.SetInt(int64(s))
		return nil

	case reflect.Int32, reflect.Int:
		n, ok := tag.Int()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Int}
		}
		rv.SetInt(int64(n))
		return nil

	case reflect.Int64:
		n, ok := tag.Long()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Long}
		}
		rv.SetInt(n)
		return nil

	case reflect.Uint8:
		b, ok := tag.Byte()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Byte}
		}
		rv.SetUint(uint64(uint8(b)))
		return nil

	case reflect.Float32:
		f, ok := tag.Float()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Float}
		}
		rv.SetFloat(float64(f))
		return nil

	case reflect.Float64:
		f, ok := tag.Double()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Double}
		}
		rv.SetFloat(f)
		return nil

	case reflect.String:
		s, ok := tag.Str()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.String}
		}
		rv.SetString(s)
		return nil

	case reflect.Struct:
		nested, ok := tag.Compound()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Compound}
		}
		return decodeIntoStruct(nested, rv)

	case reflect.Map:
		nested, ok := tag.Compound()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.Compound}
		}
		return decodeIntoMap(nested, rv)

	case reflect.Slice:
		return decodeIntoSlice(tag, rv)

	default:
		return &UnrepresentableError{Kind: rv.Kind().String()}
	}
}

func decodeIntoSlice(tag Tag, rv reflect.Value) error {
	elemKind := rv.Type().Elem().Kind()

	switch elemKind {
	case reflect.Int8, reflect.Uint8:
		arr, ok := tag.ByteArray()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.ByteArray}
		}
		out := reflect.MakeSlice(rv.Type(), len(arr), len(arr))
		for i, b := range arr {
			if elemKind == reflect.Uint8 {
				out.Index(i).SetUint(uint64(uint8(b)))
			} else {
				out.Index(i).SetInt(int64(b))
			}
		}
		rv.Set(out)
		return nil

	case reflect.Int32:
		arr, ok := tag.IntArray()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.IntArray}
		}
		out := reflect.MakeSlice(rv.Type(), len(arr), len(arr))
		for i, n := range arr {
			out.Index(i).SetInt(int64(n))
		}
		rv.Set(out)
		return nil

	case reflect.Int64:
		arr, ok := tag.LongArray()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.LongArray}
		}
		out := reflect.MakeSlice(rv.Type(), len(arr), len(arr))
		for i, n := range arr {
			out.Index(i).SetInt(n)
		}
		rv.Set(out)
		return nil

	default:
		_, items, ok := tag.List()
		if !ok {
			return &TagMismatchError{Found: tag.Type(), Expected: tagtype.List}
		}
		out := reflect.MakeSlice(rv.Type(), len(items), len(items))
		for i, item := range items {
			if err := decodeIntoValue(item, out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	}
}

// tagToAny converts tag into a plain Go value for an interface{}-typed
// destination: the scalar kinds map to their natural Go type, arrays map
// to their typed slice, List maps to []any, and Compound maps to
// map[string]any.
func tagToAny(tag Tag) (any, error) {
	switch tag.Type() {
	case tagtype.Byte:
		v, _ := tag.Byte()
		return v, nil
	case tagtype.Short:
		v, _ := tag.Short()
		return v, nil
	case tagtype.Int:
		v, _ := tag.Int()
		return v, nil
	case tagtype.Long:
		v, _ := tag.Long()
		return v, nil
	case tagtype.Float:
		v, _ := tag.Float()
		return v, nil
	case tagtype.Double:
		v, _ := tag.Double()
		return v, nil
	case tagtype.String:
		v, _ := tag.Str()
		return v, nil
	case tagtype.ByteArray:
		v, _ := tag.ByteArray()
		return append([]int8(nil), v...), nil
	case tagtype.IntArray:
		v, _ := tag.IntArray()
		return append([]int32(nil), v...), nil
	case tagtype.LongArray:
		v, _ := tag.LongArray()
		return append([]int64(nil), v...), nil
	case tagtype.List:
		_, items, _ := tag.List()
		out := make([]any, len(items))
		for i, item := range items {
			v, err := tagToAny(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case tagtype.Compound:
		nested, _ := tag.Compound()
		out := make(map[string]any, nested.Len())
		var err error
		nested.Range(func(key string, value Tag) bool {
			v, e := tagToAny(value)
			if e != nil {
				err = e
				return false
			}
			out[key] = v
			return true
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, &UnknownTagTypeError{ID: uint8(tag.Type())}
	}
}
