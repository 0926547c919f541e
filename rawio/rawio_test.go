package rawio

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteI8(&buf, -5))
	require.NoError(t, WriteI16(&buf, -12345))
	require.NoError(t, WriteI32(&buf, 0x1B))
	require.NoError(t, WriteI64(&buf, 0x1B))
	require.NoError(t, WriteF32(&buf, 3.25))
	require.NoError(t, WriteF64(&buf, math.NaN()))

	i8, err := ReadI8(&buf)
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)

	i16, err := ReadI16(&buf)
	require.NoError(t, err)
	require.Equal(t, int16(-12345), i16)

	i32, err := ReadI32(&buf)
	require.NoError(t, err)
	require.Equal(t, int32(0x1B), i32)

	i64, err := ReadI64(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(0x1B), i64)

	f32, err := ReadF32(&buf)
	require.NoError(t, err)
	require.Equal(t, float32(3.25), f32)

	f64, err := ReadF64(&buf)
	require.NoError(t, err)
	require.True(t, math.IsNaN(f64))
	require.Equal(t, math.Float64bits(math.NaN()), math.Float64bits(f64))
}

func TestString_EmptyRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, ""))
	require.Equal(t, []byte{0x00, 0x00}, buf.Bytes())

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestString_MaxLengthRoundTrip(t *testing.T) {
	value := strings.Repeat("a", MaxStringLen)

	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, value))

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, value, s)
}

func TestString_TooLong(t *testing.T) {
	value := strings.Repeat("a", MaxStringLen+1)

	var buf bytes.Buffer
	err := WriteString(&buf, value)
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestString_InvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteU16(&buf, 3))
	buf.Write([]byte{0xff, 0xfe, 0xfd})

	_, err := ReadString(&buf)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestReadExhausted(t *testing.T) {
	_, err := ReadI32(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestWriteEnd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEnd(&buf))
	require.Equal(t, []byte{0x00}, buf.Bytes())
}
