package nbt_test

import (
	"bytes"
	"encoding/hex"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sculkbyte/nbt"
	"github.com/sculkbyte/nbt/tagtype"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

func TestRoundtrip_IntField(t *testing.T) {
	input := hexBytes(t, "0A 00 00 03 00 02 48 50 00 00 00 1B 00")

	root, err := nbt.ReadNBT(bytes.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "", root.Name)

	hp, ok := root.Get("HP")
	require.True(t, ok)
	v, ok := hp.Int()
	require.True(t, ok)
	require.Equal(t, int32(0x1B), v)

	var buf bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&buf, root))
	require.Equal(t, input, buf.Bytes())
}

func TestRoundtrip_LongField(t *testing.T) {
	input := hexBytes(t, "0A 00 00 04 00 02 48 50 00 00 00 00 00 00 00 1B 00")

	root, err := nbt.ReadNBT(bytes.NewReader(input))
	require.NoError(t, err)

	hp, ok := root.Get("HP")
	require.True(t, ok)
	v, ok := hp.Long()
	require.True(t, ok)
	require.Equal(t, int64(0x1B), v)

	var buf bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&buf, root))
	require.Equal(t, input, buf.Bytes())
}

func TestRoundtrip_ByteArray(t *testing.T) {
	input := hexBytes(t, "0A 00 00 07 00 03 62 75 66 00 00 00 04 00 00 1B 00 00")

	root, err := nbt.ReadNBT(bytes.NewReader(input))
	require.NoError(t, err)

	buf, ok := root.Get("buf")
	require.True(t, ok)
	arr, ok := buf.ByteArray()
	require.True(t, ok)
	require.Equal(t, []int8{0, 0, 27, 0}, arr)

	var out bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&out, root))
	require.Equal(t, input, out.Bytes())
}

func TestRoundtrip_EmptyByteArray(t *testing.T) {
	input := hexBytes(t, "0A 00 00 07 00 03 62 75 66 00 00 00 00 00")

	root, err := nbt.ReadNBT(bytes.NewReader(input))
	require.NoError(t, err)

	buf, ok := root.Get("buf")
	require.True(t, ok)
	arr, ok := buf.ByteArray()
	require.True(t, ok)
	require.Empty(t, arr)

	var out bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&out, root))
	require.Equal(t, input, out.Bytes())
}

func TestRoundtrip_ListOfShort(t *testing.T) {
	input := hexBytes(t, "0A 00 00 09 00 08 44 69 73 61 62 6C 65 64 02 00 00 00 03 00 01 00 02 00 03 00")

	root, err := nbt.ReadNBT(bytes.NewReader(input))
	require.NoError(t, err)

	disabled, ok := root.Get("Disabled")
	require.True(t, ok)
	elemType, items, ok := disabled.List()
	require.True(t, ok)
	require.Equal(t, tagtype.Short, elemType)
	require.Len(t, items, 3)
	for i, want := range []int16{1, 2, 3} {
		got, ok := items[i].Short()
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	var out bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&out, root))
	require.Equal(t, input, out.Bytes())
}

func TestRoundtrip_EmptyList(t *testing.T) {
	input := hexBytes(t, "0A 00 00 09 00 08 44 69 73 61 62 6C 65 64 00 00 00 00 00 00")

	root, err := nbt.ReadNBT(bytes.NewReader(input))
	require.NoError(t, err)

	disabled, ok := root.Get("Disabled")
	require.True(t, ok)
	elemType, items, ok := disabled.List()
	require.True(t, ok)
	require.Equal(t, tagtype.End, elemType)
	require.Empty(t, items)

	var out bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&out, root))
	require.Equal(t, input, out.Bytes())
}

func TestRoundtrip_EmptyRootName(t *testing.T) {
	root := nbt.NamedCompound("")
	root.Set("x", nbt.NewByte(1))

	var buf bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&buf, root))
	require.Equal(t, []byte{0x00, 0x00}, buf.Bytes()[1:3])

	decoded, err := nbt.ReadNBT(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "", decoded.Name)
	require.True(t, root.Equal(decoded))
}

func TestRoundtrip_StringBounds(t *testing.T) {
	empty := nbt.NewString("")
	maxLen := nbt.NewString(strings.Repeat("a", 65535))

	for _, tag := range []nbt.Tag{empty, maxLen} {
		root := nbt.NamedCompound("")
		root.Set("s", tag)

		var buf bytes.Buffer
		require.NoError(t, nbt.WriteNBT(&buf, root))

		decoded, err := nbt.ReadNBT(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.True(t, root.Equal(decoded))
	}

	tooLong := nbt.NamedCompound("")
	tooLong.Set("s", nbt.NewString(strings.Repeat("a", 65536)))
	var buf bytes.Buffer
	err := nbt.WriteNBT(&buf, tooLong)
	require.Error(t, err)
	var stringTooLong *nbt.StringTooLongError
	require.ErrorAs(t, err, &stringTooLong)
}

func TestRoundtrip_NaNBitPattern(t *testing.T) {
	root := nbt.NamedCompound("")
	root.Set("f", nbt.NewDouble(nanWithPayload()))

	var buf bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&buf, root))

	decoded, err := nbt.ReadNBT(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, root.Equal(decoded))
}

func TestRoundtrip_KeyOrderPreserved(t *testing.T) {
	root := nbt.NamedCompound("root")
	root.Set("a", nbt.NewByte(1))
	root.Set("b", nbt.NewByte(2))
	root.Set("c", nbt.NewByte(3))
	root.Set("a", nbt.NewByte(9)) // re-set moves "a" to the end

	require.Equal(t, []string{"b", "c", "a"}, root.Keys())

	var buf bytes.Buffer
	require.NoError(t, nbt.WriteNBT(&buf, root))

	decoded, err := nbt.ReadNBT(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "a"}, decoded.Keys())
	require.True(t, root.Equal(decoded))
}

func TestRoundtrip_FingerprintStability(t *testing.T) {
	a := nbt.NamedCompound("root")
	a.Set("x", nbt.NewInt(7))

	b := nbt.NamedCompound("root")
	b.Set("x", nbt.NewInt(7))

	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	c := a.Clone()
	c.Set("x", nbt.NewInt(8))
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func nanWithPayload() float64 {
	return math.NaN()
}
