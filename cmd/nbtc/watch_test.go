package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sculkbyte/nbt"
	"github.com/sculkbyte/nbt/xmlbridge"
)

func TestCompileOnce_WritesNBT(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "in.xml")
	nbtPath := filepath.Join(dir, "out.nbt")

	root := nbt.NewCompound()
	root.Set("tick", nbt.NewInt(42))

	f, err := os.Create(xmlPath)
	require.NoError(t, err)
	require.NoError(t, xmlbridge.Encode(f, root))
	require.NoError(t, f.Close())

	outputFile = nbtPath
	defer func() { outputFile = "" }()

	require.NoError(t, compileOnce(xmlPath))

	out, err := os.Open(nbtPath)
	require.NoError(t, err)
	decoded, err := nbt.ReadNBT(out)
	require.NoError(t, out.Close())
	require.NoError(t, err)

	tick, ok := decoded.Get("tick")
	require.True(t, ok)
	n, ok := tick.Int()
	require.True(t, ok)
	require.Equal(t, int32(42), n)
}

func TestWatchAndCompile_RecompilesOnWrite(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "in.xml")
	nbtPath := filepath.Join(dir, "out.nbt")

	writeXML := func(value int32) {
		root := nbt.NewCompound()
		root.Set("v", nbt.NewInt(value))
		f, err := os.Create(xmlPath)
		require.NoError(t, err)
		require.NoError(t, xmlbridge.Encode(f, root))
		require.NoError(t, f.Close())
	}
	writeXML(1)

	outputFile = nbtPath
	defer func() { outputFile = "" }()

	done := make(chan error, 1)
	go func() { done <- watchAndCompile(xmlPath) }()

	// watchAndCompile compiles once synchronously before entering its
	// event loop; give it a moment to have done so, then trigger a
	// second compile via a write event.
	time.Sleep(100 * time.Millisecond)
	writeXML(2)
	time.Sleep(200 * time.Millisecond)

	out, err := os.Open(nbtPath)
	require.NoError(t, err)
	decoded, err := nbt.ReadNBT(out)
	require.NoError(t, out.Close())
	require.NoError(t, err)

	v, ok := decoded.Get("v")
	require.True(t, ok)
	n, ok := v.Int()
	require.True(t, ok)
	require.Equal(t, int32(2), n)

	select {
	case err := <-done:
		t.Fatalf("watchAndCompile returned early: %v", err)
	default:
	}
}
