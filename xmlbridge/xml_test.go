package xmlbridge_test

import (
	"bytes"
	"testing"

	"github.com/sculkbyte/nbt"
	"github.com/sculkbyte/nbt/xmlbridge"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_Roundtrip(t *testing.T) {
	root := nbt.NamedCompound("Data")
	root.Set("id", nbt.NewString("minecraft:zombie"))
	root.Set("Health", nbt.NewFloat(20))
	root.Set("Pos", mustList(t, doubleListItems()))
	root.Set("Tags", mustList(t, []nbt.Tag{nbt.NewString("a"), nbt.NewString("b")}))
	root.Set("Inventory", nbt.NewByteArray([]int8{1, 2, 3}))

	var buf bytes.Buffer
	require.NoError(t, xmlbridge.Encode(&buf, root))

	decoded, err := xmlbridge.Decode(&buf)
	require.NoError(t, err)

	require.True(t, nbt.NewCompoundTag(root).Equal(nbt.NewCompoundTag(decoded)))
	require.Equal(t, "Data", decoded.Name)
}

func TestDecode_UnrecognizedElementFails(t *testing.T) {
	_, err := xmlbridge.Decode(bytes.NewReader([]byte(`<widget name="root"></widget>`)))
	require.Error(t, err)
}

func TestDecode_RootMustBeCompound(t *testing.T) {
	_, err := xmlbridge.Decode(bytes.NewReader([]byte(`<int name="root">5</int>`)))
	require.Error(t, err)
}

func TestEncodeDecode_NestedCompound(t *testing.T) {
	inner := nbt.NewCompound()
	inner.Set("x", nbt.NewInt(1))
	root := nbt.NewCompound()
	root.Set("pos", nbt.NewCompoundTag(inner))

	var buf bytes.Buffer
	require.NoError(t, xmlbridge.Encode(&buf, root))

	decoded, err := xmlbridge.Decode(&buf)
	require.NoError(t, err)

	posTag, ok := decoded.Get("pos")
	require.True(t, ok)
	posCompound, ok := posTag.Compound()
	require.True(t, ok)
	xVal, ok := posCompound.Get("x")
	require.True(t, ok)
	n, ok := xVal.Int()
	require.True(t, ok)
	require.Equal(t, int32(1), n)
}

func mustList(t *testing.T, items []nbt.Tag) nbt.Tag {
	t.Helper()
	list, err := nbt.NewList(items[0].Type(), items)
	require.NoError(t, err)
	return list
}

func doubleListItems() []nbt.Tag {
	return []nbt.Tag{nbt.NewDouble(1.5), nbt.NewDouble(64), nbt.NewDouble(-30.25)}
}
