package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes_Deterministic(t *testing.T) {
	data := []byte{0x0A, 0x00, 0x00, 0x01, 0x00, 0x01, 'x', 0x05, 0x00}
	require.Equal(t, Bytes(data), Bytes(append([]byte(nil), data...)))
}

func TestBytes_DiffersOnChange(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03}
	b := []byte{0x01, 0x02, 0x04}
	require.NotEqual(t, Bytes(a), Bytes(b))
}

func TestString_MatchesKnownVector(t *testing.T) {
	require.Equal(t, uint64(0xef46db3751d8e999), String(""))
	require.Equal(t, uint64(0x4fdcca5ddb678139), String("test"))
}
