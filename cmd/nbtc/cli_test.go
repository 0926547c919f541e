package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sculkbyte/nbt"
	"github.com/sculkbyte/nbt/xmlbridge"
)

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	defer func() {
		outputFile, gzipFlag, zlibFlag = "", false, false
	}()
	return rootCmd.Execute()
}

func TestCompileDecompile_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "in.xml")
	nbtPath := filepath.Join(dir, "out.nbt")
	xmlOutPath := filepath.Join(dir, "roundtrip.xml")

	root := nbt.NamedCompound("Data")
	root.Set("Name", nbt.NewString("Steve"))
	root.Set("Health", nbt.NewFloat(20))

	var xmlBuf bytes.Buffer
	require.NoError(t, xmlbridge.Encode(&xmlBuf, root))
	require.NoError(t, os.WriteFile(xmlPath, xmlBuf.Bytes(), 0o644))

	require.NoError(t, runCLI(t, "compile", "-f", nbtPath, xmlPath))

	f, err := os.Open(nbtPath)
	require.NoError(t, err)
	decoded, err := nbt.ReadNBT(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	require.True(t, nbt.NewCompoundTag(root).Equal(nbt.NewCompoundTag(decoded)))

	require.NoError(t, runCLI(t, "decompile", "-f", xmlOutPath, nbtPath))
	roundtripped, err := os.ReadFile(xmlOutPath)
	require.NoError(t, err)
	require.Contains(t, string(roundtripped), "Steve")
}

func TestCompile_GzipFlagRoundtrips(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "in.xml")
	nbtPath := filepath.Join(dir, "out.nbt.gz")

	root := nbt.NewCompound()
	root.Set("v", nbt.NewInt(7))

	var xmlBuf bytes.Buffer
	require.NoError(t, xmlbridge.Encode(&xmlBuf, root))
	require.NoError(t, os.WriteFile(xmlPath, xmlBuf.Bytes(), 0o644))

	require.NoError(t, runCLI(t, "compile", "-z", "-f", nbtPath, xmlPath))

	f, err := os.Open(nbtPath)
	require.NoError(t, err)
	decoded, err := nbt.ReadGzipNBT(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)

	v, ok := decoded.Get("v")
	require.True(t, ok)
	n, ok := v.Int()
	require.True(t, ok)
	require.Equal(t, int32(7), n)
}

func TestDecompile_AutoDetectsGzip(t *testing.T) {
	dir := t.TempDir()
	nbtPath := filepath.Join(dir, "out.nbt.gz")
	xmlOutPath := filepath.Join(dir, "out.xml")

	root := nbt.NewCompound()
	root.Set("v", nbt.NewInt(1))

	f, err := os.Create(nbtPath)
	require.NoError(t, err)
	require.NoError(t, nbt.WriteGzipNBT(f, root))
	require.NoError(t, f.Close())

	require.NoError(t, runCLI(t, "decompile", "-f", xmlOutPath, nbtPath))
	data, err := os.ReadFile(xmlOutPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "<int")
}

func TestRoot_UnknownCommandErrors(t *testing.T) {
	require.Error(t, runCLI(t, "bogus"))
}
