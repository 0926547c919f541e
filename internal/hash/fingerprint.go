// Package hash provides the xxHash64 fingerprint used to give a decoded
// Tag tree a cheap, stable identity without re-walking it structurally.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of a tag's canonical encoded payload.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// String computes the xxHash64 of a string.
func String(data string) uint64 {
	return xxhash.Sum64String(data)
}
