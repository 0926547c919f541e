// Package xmlbridge translates between an NBT CompoundTag and a textual
// XML form: one element per tag, named after its wire variant (byte,
// short, int, long, float, double, string, byte_array, int_array,
// long_array, list, compound), with a "name" attribute carrying a
// Compound entry's key. It exists for the cmd/nbtc CLI's compile and
// decompile subcommands, which read and write this form as a
// human-editable alternative to the binary wire format.
package xmlbridge

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sculkbyte/nbt"
	"github.com/sculkbyte/nbt/tagtype"
)

const nameAttr = "name"

var elementNames = map[tagtype.TagID]string{
	tagtype.Byte:      "byte",
	tagtype.Short:     "short",
	tagtype.Int:       "int",
	tagtype.Long:      "long",
	tagtype.Float:     "float",
	tagtype.Double:    "double",
	tagtype.String:    "string",
	tagtype.ByteArray: "byte_array",
	tagtype.IntArray:  "int_array",
	tagtype.LongArray: "long_array",
	tagtype.List:      "list",
	tagtype.Compound:  "compound",
}

var elementKinds = func() map[string]tagtype.TagID {
	m := make(map[string]tagtype.TagID, len(elementNames))
	for id, name := range elementNames {
		m[name] = id
	}
	return m
}()

// Encode writes root as an XML document, rooted at a single <compound>
// element.
func Encode(w io.Writer, root *nbt.CompoundTag) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := writeTag(enc, root.Name, true, nbt.NewCompoundTag(root)); err != nil {
		return err
	}
	return enc.Flush()
}

func writeTag(enc *xml.Encoder, name string, hasName bool, tag nbt.Tag) error {
	elemName, ok := elementNames[tag.Type()]
	if !ok {
		return fmt.Errorf("xmlbridge: cannot encode tag type %s", tag.Type())
	}

	start := xml.StartElement{Name: xml.Name{Local: elemName}}
	if hasName {
		start.Attr = []xml.Attr{{Name: xml.Name{Local: nameAttr}, Value: name}}
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if err := writeBody(enc, tag); err != nil {
		return err
	}

	return enc.EncodeToken(start.End())
}

func writeBody(enc *xml.Encoder, tag nbt.Tag) error {
	switch tag.Type() {
	case tagtype.Byte:
		v, _ := tag.Byte()
		return writeText(enc, strconv.FormatInt(int64(v), 10))
	case tagtype.Short:
		v, _ := tag.Short()
		return writeText(enc, strconv.FormatInt(int64(v), 10))
	case tagtype.Int:
		v, _ := tag.Int()
		return writeText(enc, strconv.FormatInt(int64(v), 10))
	case tagtype.Long:
		v, _ := tag.Long()
		return writeText(enc, strconv.FormatInt(v, 10))
	case tagtype.Float:
		v, _ := tag.Float()
		return writeText(enc, strconv.FormatFloat(float64(v), 'g', -1, 32))
	case tagtype.Double:
		v, _ := tag.Double()
		return writeText(enc, strconv.FormatFloat(v, 'g', -1, 64))
	case tagtype.String:
		v, _ := tag.Str()
		return writeText(enc, v)

	case tagtype.ByteArray:
		v, _ := tag.ByteArray()
		for _, b := range v {
			if err := writeTag(enc, "", false, nbt.NewByte(b)); err != nil {
				return err
			}
		}
		return nil

	case tagtype.IntArray:
		v, _ := tag.IntArray()
		for _, n := range v {
			if err := writeTag(enc, "", false, nbt.NewInt(n)); err != nil {
				return err
			}
		}
		return nil

	case tagtype.LongArray:
		v, _ := tag.LongArray()
		for _, n := range v {
			if err := writeTag(enc, "", false, nbt.NewLong(n)); err != nil {
				return err
			}
		}
		return nil

	case tagtype.List:
		_, items, _ := tag.List()
		for _, item := range items {
			if err := writeTag(enc, "", false, item); err != nil {
				return err
			}
		}
		return nil

	case tagtype.Compound:
		compound, _ := tag.Compound()
		var writeErr error
		compound.Range(func(key string, value nbt.Tag) bool {
			if err := writeTag(enc, key, true, value); err != nil {
				writeErr = err
				return false
			}
			return true
		})
		return writeErr

	default:
		return fmt.Errorf("xmlbridge: cannot encode tag type %s", tag.Type())
	}
}

func writeText(enc *xml.Encoder, text string) error {
	return enc.EncodeToken(xml.CharData(text))
}

// element is a tag under construction while its closing token hasn't
// been seen yet: scalars accumulate into text, arrays and lists
// accumulate finished children, and Compound accumulates named children
// directly into its CompoundTag.
type element struct {
	kind     tagtype.TagID
	name     string
	hasName  bool
	text     strings.Builder
	listElem tagtype.TagID
	list     []nbt.Tag
	byteArr  []int8
	intArr   []int32
	longArr  []int64
	compound *nbt.CompoundTag
}

func newElement(kind tagtype.TagID, name string, hasName bool) *element {
	e := &element{kind: kind, name: name, hasName: hasName}
	if kind == tagtype.Compound {
		e.compound = nbt.NewCompound()
	}
	return e
}

// addChild appends a finished child tag under e. It is never called for
// a Compound parent — Decode sets those directly by key instead.
func (e *element) addChild(child nbt.Tag) error {
	switch e.kind {
	case tagtype.List:
		e.list = append(e.list, child)
		return nil
	case tagtype.ByteArray:
		v, ok := child.Byte()
		if !ok {
			return &nbt.TagMismatchError{Found: child.Type(), Expected: tagtype.Byte}
		}
		e.byteArr = append(e.byteArr, v)
		return nil
	case tagtype.IntArray:
		v, ok := child.Int()
		if !ok {
			return &nbt.TagMismatchError{Found: child.Type(), Expected: tagtype.Int}
		}
		e.intArr = append(e.intArr, v)
		return nil
	case tagtype.LongArray:
		v, ok := child.Long()
		if !ok {
			return &nbt.TagMismatchError{Found: child.Type(), Expected: tagtype.Long}
		}
		e.longArr = append(e.longArr, v)
		return nil
	default:
		return fmt.Errorf("xmlbridge: unexpected child under <%s>", elementNames[e.kind])
	}
}

func (e *element) finalize() (nbt.Tag, error) {
	text := strings.TrimSpace(e.text.String())
	switch e.kind {
	case tagtype.Byte:
		n, err := strconv.ParseInt(text, 10, 8)
		if err != nil {
			return nbt.Tag{}, fmt.Errorf("xmlbridge: bad byte text %q: %w", text, err)
		}
		return nbt.NewByte(int8(n)), nil
	case tagtype.Short:
		n, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return nbt.Tag{}, fmt.Errorf("xmlbridge: bad short text %q: %w", text, err)
		}
		return nbt.NewShort(int16(n)), nil
	case tagtype.Int:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nbt.Tag{}, fmt.Errorf("xmlbridge: bad int text %q: %w", text, err)
		}
		return nbt.NewInt(int32(n)), nil
	case tagtype.Long:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nbt.Tag{}, fmt.Errorf("xmlbridge: bad long text %q: %w", text, err)
		}
		return nbt.NewLong(n), nil
	case tagtype.Float:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nbt.Tag{}, fmt.Errorf("xmlbridge: bad float text %q: %w", text, err)
		}
		return nbt.NewFloat(float32(f)), nil
	case tagtype.Double:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nbt.Tag{}, fmt.Errorf("xmlbridge: bad double text %q: %w", text, err)
		}
		return nbt.NewDouble(f), nil
	case tagtype.String:
		return nbt.NewString(text), nil
	case tagtype.ByteArray:
		return nbt.NewByteArray(e.byteArr), nil
	case tagtype.IntArray:
		return nbt.NewIntArray(e.intArr), nil
	case tagtype.LongArray:
		return nbt.NewLongArray(e.longArr), nil
	case tagtype.List:
		return nbt.NewList(e.listElem, e.list)
	case tagtype.Compound:
		return nbt.NewCompoundTag(e.compound), nil
	default:
		return nbt.Tag{}, fmt.Errorf("xmlbridge: unknown element kind %s", e.kind)
	}
}

// Decode reads an XML document of the form Encode produces and returns
// its root CompoundTag.
func Decode(r io.Reader) (*nbt.CompoundTag, error) {
	dec := xml.NewDecoder(r)

	var stack []*element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmlbridge: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			kind, ok := elementKinds[t.Name.Local]
			if !ok {
				return nil, fmt.Errorf("xmlbridge: unrecognized element <%s>", t.Name.Local)
			}
			name, hasName := attrValue(t.Attr, nameAttr)
			stack = append(stack, newElement(kind, name, hasName))

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].text.Write(t)

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			tag, err := top.finalize()
			if err != nil {
				return nil, err
			}

			if len(stack) == 0 {
				root, ok := tag.Compound()
				if !ok {
					return nil, &nbt.RootMustBeCompoundError{Found: uint8(tag.Type())}
				}
				root.Name = top.name
				return root, nil
			}

			parent := stack[len(stack)-1]
			switch parent.kind {
			case tagtype.Compound:
				parent.compound.Set(top.name, tag)
			case tagtype.List:
				if len(parent.list) == 0 {
					parent.listElem = tag.Type()
				}
				if err := parent.addChild(tag); err != nil {
					return nil, err
				}
			default:
				if err := parent.addChild(tag); err != nil {
					return nil, err
				}
			}
		}
	}

	return nil, fmt.Errorf("xmlbridge: unexpected end of document")
}

func attrValue(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
