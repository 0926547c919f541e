package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetByteSlice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetByteSlice(100)
		defer cleanup()

		require.Equal(t, 100, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("reuses pooled slice when capacity sufficient", func(t *testing.T) {
		slice1, cleanup1 := GetByteSlice(50)
		ptr1 := &slice1[0]
		cleanup1()

		slice2, cleanup2 := GetByteSlice(50)
		defer cleanup2()
		ptr2 := &slice2[0]

		require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetByteSlice(10)
		cleanup1()

		slice2, cleanup2 := GetByteSlice(1000)
		defer cleanup2()

		require.Equal(t, 1000, len(slice2))
	})
}

func TestGetInt32Slice(t *testing.T) {
	slice, cleanup := GetInt32Slice(256)
	defer cleanup()

	require.Equal(t, 256, len(slice))
	for i := range slice {
		slice[i] = int32(i)
	}
}

func TestGetInt64Slice(t *testing.T) {
	slice, cleanup := GetInt64Slice(256)
	defer cleanup()

	require.Equal(t, 256, len(slice))
	for i := range slice {
		slice[i] = int64(i)
	}
}

func TestSlicePoolConcurrency(t *testing.T) {
	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines * 3)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			slice, cleanup := GetByteSlice(32)
			defer cleanup()
			for j := range slice {
				slice[j] = int8(j)
			}
		}()
		go func() {
			defer wg.Done()
			slice, cleanup := GetInt32Slice(32)
			defer cleanup()
			for j := range slice {
				slice[j] = int32(j)
			}
		}()
		go func() {
			defer wg.Done()
			slice, cleanup := GetInt64Slice(32)
			defer cleanup()
			for j := range slice {
				slice[j] = int64(j)
			}
		}()
	}

	wg.Wait()
}
