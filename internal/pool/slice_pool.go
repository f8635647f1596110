package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of length size from the pool.
//
// The caller must call the returned cleanup function once the slice is no
// longer referenced, typically with defer.
//
// Example:
//
//	lats, cleanup := pool.GetFloat64Slice(len(points))
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
