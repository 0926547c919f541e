package tagtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagID_String(t *testing.T) {
	cases := []struct {
		id   TagID
		want string
	}{
		{End, "TAG_End"},
		{Byte, "TAG_Byte"},
		{Short, "TAG_Short"},
		{Int, "TAG_Int"},
		{Long, "TAG_Long"},
		{Float, "TAG_Float"},
		{Double, "TAG_Double"},
		{ByteArray, "TAG_Byte_Array"},
		{String, "TAG_String"},
		{List, "TAG_List"},
		{Compound, "TAG_Compound"},
		{IntArray, "TAG_Int_Array"},
		{LongArray, "TAG_Long_Array"},
		{TagID(99), "TAG_Unknown(99)"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, c.id.String())
	}
}

func TestTagID_Valid(t *testing.T) {
	require.True(t, End.Valid())
	require.True(t, LongArray.Valid())
	require.False(t, TagID(13).Valid())
}

func TestTagID_IsScalar(t *testing.T) {
	require.True(t, Byte.IsScalar())
	require.True(t, Double.IsScalar())
	require.False(t, End.IsScalar())
	require.False(t, ByteArray.IsScalar())
	require.False(t, Compound.IsScalar())
}
