package nbt

import (
	"fmt"

	"github.com/sculkbyte/nbt/tagtype"
)

// Every error the library returns implements error and renders with a
// "libnbt: " prefix. None of them ever cause the library to terminate
// the process — that is reserved for cmd/nbtc.

// IOError wraps a failure from the underlying byte source or sink.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("libnbt: io error: %v", e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// UnknownTagTypeError is returned when a tag-id byte outside 0..=12 is
// encountered where a value's type is expected.
type UnknownTagTypeError struct {
	ID byte
}

func (e *UnknownTagTypeError) Error() string {
	return fmt.Sprintf("libnbt: unknown tag type: %#02x", e.ID)
}

// RootMustBeCompoundError is returned when a root tag-id other than
// TAG_Compound is read, or when xmlbridge.Decode finds a root element
// other than <compound>.
type RootMustBeCompoundError struct {
	Found byte
}

func (e *RootMustBeCompoundError) Error() string {
	return fmt.Sprintf("libnbt: the root tag must be TAG_Compound, found %#02x", e.Found)
}

// TagMismatchError is returned when a typed-decode request does not match
// the tag actually present on the wire.
type TagMismatchError struct {
	Found, Expected tagtype.TagID
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("libnbt: expected %s but found %s", e.Expected, e.Found)
}

// NonBooleanByteError is returned when a boolean field is decoded from a
// Byte value outside {0, 1}.
type NonBooleanByteError struct {
	Value int8
}

func (e *NonBooleanByteError) Error() string {
	return fmt.Sprintf("libnbt: non boolean byte found: %#x", e.Value)
}

// UTF8Error wraps a string/key decode failure due to invalid UTF-8.
type UTF8Error struct {
	Err error
}

func (e *UTF8Error) Error() string { return fmt.Sprintf("libnbt: error while parsing text: %v", e.Err) }
func (e *UTF8Error) Unwrap() error { return e.Err }

// UnrepresentableError is returned when the encoder is handed a Go value
// kind NBT cannot express (unsigned integers, channels, funcs, ...).
type UnrepresentableError struct {
	Kind string
}

func (e *UnrepresentableError) Error() string {
	return fmt.Sprintf("libnbt: found unrepresentable type: %s", e.Kind)
}

// NonStringMapKeyError is returned when a map being encoded has a
// non-string key type.
type NonStringMapKeyError struct {
	KeyKind string
}

func (e *NonStringMapKeyError) Error() string {
	return fmt.Sprintf("libnbt: map key must be a string, found %s", e.KeyKind)
}

// StringTooLongError is returned when a string's UTF-8 encoding exceeds
// 65535 bytes.
type StringTooLongError struct {
	Length int
}

func (e *StringTooLongError) Error() string {
	return fmt.Sprintf("libnbt: string of length %d exceeds the 65535 byte limit", e.Length)
}

// BadFileFormatError is returned by ReadAutoNBT when fewer than 5 bytes
// are available to identify the input.
type BadFileFormatError struct{}

func (e *BadFileFormatError) Error() string {
	return "libnbt: could not identify file format from header bytes"
}

// MaxDepthExceededError is returned when a decoder configured with
// WithMaxDepth encounters nesting beyond the configured limit.
type MaxDepthExceededError struct {
	Limit int
}

func (e *MaxDepthExceededError) Error() string {
	return fmt.Sprintf("libnbt: nesting depth exceeds configured limit of %d", e.Limit)
}

// MaxLengthExceededError is returned when a decoder configured with
// WithMaxStringLength or WithMaxArrayLength encounters a length prefix
// beyond the configured limit.
type MaxLengthExceededError struct {
	Kind  string
	Limit int
}

func (e *MaxLengthExceededError) Error() string {
	return fmt.Sprintf("libnbt: %s length exceeds configured limit of %d", e.Kind, e.Limit)
}

// NegativeLengthError is returned when a ByteArray/IntArray/LongArray/List
// length prefix decodes to a negative int32 — the wire format has no
// representation for a negative count, so this always indicates a
// malformed or truncated stream rather than a legitimate empty value.
type NegativeLengthError struct {
	Kind   string
	Length int32
}

func (e *NegativeLengthError) Error() string {
	return fmt.Sprintf("libnbt: %s declares negative length %d", e.Kind, e.Length)
}
