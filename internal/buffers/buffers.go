// Package buffers contains helpers to manage the reuse of scratch buffers.
package buffers

// Ensure returns a buffer of the requested size, reusing b if its capacity
// allows it. The content of the returned buffer is undefined.
func Ensure(b []byte, size int) []byte {
	if cap(b) < size {
		return make([]byte, size)
	}
	return b[:size]
}
