package pool

import "sync"

// Typed slice pools backing the decoder's array-payload scratch space:
// TAG_Byte_Array, TAG_Int_Array, and TAG_Long_Array each read a
// length-prefixed run of fixed-width values, and reuse of the backing
// slice across decodes avoids an allocation per array tag.
var (
	byteSlicePool = sync.Pool{
		New: func() any { return &[]int8{} },
	}
	int32SlicePool = sync.Pool{
		New: func() any { return &[]int32{} },
	}
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
)

// GetByteSlice retrieves an []int8 of exact length size from the pool.
// If the pooled slice has insufficient capacity, a new slice is
// allocated. The caller must call the returned cleanup function
// (typically via defer) to return the slice to the pool.
func GetByteSlice(size int) ([]int8, func()) {
	ptr, _ := byteSlicePool.Get().(*[]int8)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int8, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { byteSlicePool.Put(ptr) }
}

// GetInt32Slice retrieves an []int32 of exact length size from the pool.
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int32SlicePool.Put(ptr) }
}

// GetInt64Slice retrieves an []int64 of exact length size from the pool.
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int64SlicePool.Put(ptr) }
}
