package codec

import "sync"

// bufferPool holds []byte buffers used to render rows before they are copied
// into a string or written to a sink.
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

// GetBuffer gets a []byte buffer from the pool.
// The buffer is returned with length 0 but may have capacity.
func GetBuffer() []byte {
	p := bufferPool.Get().(*[]byte)
	return (*p)[:0]
}

// PutBuffer returns a []byte buffer to the pool.
func PutBuffer(buf []byte) {
	// Only return to pool if capacity is reasonable (avoid keeping huge buffers)
	const maxCapacity = 64 << 10
	if cap(buf) > maxCapacity {
		return
	}

	buf = buf[:0]
	bufferPool.Put(&buf)
}
