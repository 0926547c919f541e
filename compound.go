package nbt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CompoundTag is the only permitted NBT root: a name (empty when absent —
// the wire encodes both as a zero-length string) plus an insertion-ordered
// mapping from string keys to Tag values.
//
// The ordering is load-bearing: re-encoding a decoded CompoundTag must
// reproduce the original key order byte-for-byte, so the map is backed
// by orderedmap.OrderedMap rather than a plain Go map.
type CompoundTag struct {
	Name  string
	pairs *orderedmap.OrderedMap[string, Tag]
}

// NewCompound returns an empty, unnamed CompoundTag.
func NewCompound() *CompoundTag {
	return &CompoundTag{pairs: orderedmap.New[string, Tag]()}
}

// NamedCompound returns an empty CompoundTag with the given root name.
func NamedCompound(name string) *CompoundTag {
	c := NewCompound()
	c.Name = name
	return c
}

// Len returns the number of entries.
func (c *CompoundTag) Len() int {
	if c == nil || c.pairs == nil {
		return 0
	}
	return c.pairs.Len()
}

// Get returns the value stored under key, and whether it was present.
func (c *CompoundTag) Get(key string) (Tag, bool) {
	if c == nil || c.pairs == nil {
		return Tag{}, false
	}
	return c.pairs.Get(key)
}

// Set stores value under key.
//
// If key is already present, the entry is moved to the end of the
// iteration order before being updated — a re-set key appears where it
// was last written, matching what a human re-editing the source would
// expect of a re-encode.
func (c *CompoundTag) Set(key string, value Tag) {
	if c.pairs == nil {
		c.pairs = orderedmap.New[string, Tag]()
	}
	if _, present := c.pairs.Get(key); present {
		c.pairs.Delete(key)
	}
	c.pairs.Set(key, value)
}

// Delete removes key, returning its value and whether it was present.
func (c *CompoundTag) Delete(key string) (Tag, bool) {
	if c == nil || c.pairs == nil {
		return Tag{}, false
	}
	return c.pairs.Delete(key)
}

// Keys returns the entry keys in insertion order.
func (c *CompoundTag) Keys() []string {
	if c == nil || c.pairs == nil {
		return nil
	}
	keys := make([]string, 0, c.pairs.Len())
	for pair := c.pairs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Range calls fn for each entry in insertion order, stopping early if fn
// returns false.
func (c *CompoundTag) Range(fn func(key string, value Tag) bool) {
	if c == nil || c.pairs == nil {
		return
	}
	for pair := c.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Clone returns a deep copy: every contained Tag is cloned and the key
// order is preserved.
func (c *CompoundTag) Clone() *CompoundTag {
	if c == nil {
		return nil
	}
	out := NamedCompound(c.Name)
	c.Range(func(key string, value Tag) bool {
		out.Set(key, value.Clone())
		return true
	})
	return out
}

// Equal reports whether c and other have the same name and the same
// key→value pairs in the same order.
func (c *CompoundTag) Equal(other *CompoundTag) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Name != other.Name || c.Len() != other.Len() {
		return false
	}

	a, b := c.pairs.Oldest(), other.pairs.Oldest()
	for a != nil {
		if b == nil || a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return b == nil
}
