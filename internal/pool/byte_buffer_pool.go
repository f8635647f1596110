package pool

import "sync"

const (
	WireBufferDefaultSize    = 1024 * 4        // 4KiB, enough for a few dozen clusters
	WireBufferMaxThreshold   = 1024 * 64       // 64KiB
	SetBufferDefaultSize     = 1024 * 64       // 64KiB
	SetBufferMaxThreshold    = 1024 * 1024 * 4 // 4MiB
	largeBufferGrowThreshold = 4 * WireBufferDefaultSize
)

// ByteBuffer is an append-only byte slice wrapper that can be recycled through a pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Truncate keeps the first n bytes. n beyond the current length is ignored.
func (bb *ByteBuffer) Truncate(n int) {
	if n >= 0 && n < len(bb.B) {
		bb.B = bb.B[:n]
	}
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by WireBufferDefaultSize; larger ones grow by 25% of their
// capacity so repeated appends stay amortized without doubling memory.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := WireBufferDefaultSize
	if cap(bb.B) > largeBufferGrowThreshold {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity grew past maxThreshold are dropped on Put instead of
// being retained, so one oversized cluster set cannot pin memory forever.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	wireDefaultPool = NewByteBufferPool(WireBufferDefaultSize, WireBufferMaxThreshold)
	setDefaultPool  = NewByteBufferPool(SetBufferDefaultSize, SetBufferMaxThreshold)
)

// GetWireBuffer retrieves a buffer sized for single-cluster encoding.
func GetWireBuffer() *ByteBuffer {
	return wireDefaultPool.Get()
}

// PutWireBuffer returns a buffer obtained from GetWireBuffer.
func PutWireBuffer(bb *ByteBuffer) {
	wireDefaultPool.Put(bb)
}

// GetSetBuffer retrieves a buffer sized for cluster-set encoding.
func GetSetBuffer() *ByteBuffer {
	return setDefaultPool.Get()
}

// PutSetBuffer returns a buffer obtained from GetSetBuffer.
func PutSetBuffer(bb *ByteBuffer) {
	setDefaultPool.Put(bb)
}
