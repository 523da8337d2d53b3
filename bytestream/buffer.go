package bytestream

import (
	"io"
)

const (
	defaultSlabSize = 1024
	maxSlabSize     = 1024 * 1024
)

// Buffer is an append-only byte buffer which grows by allocating slabs of
// doubling size, so that growing never copies the bytes already written.
//
// The buffer supports being read (through Len, CopyTo, WriteTo, or a source
// created by FromBuffer) while an unrelated writer keeps appending to it;
// reads observe the bytes written before the call. It is not safe for
// concurrent use.
//
// The zero value is an empty buffer using the default initial slab size.
type Buffer struct {
	slabs    [][]byte
	size     int
	slabSize int
	initial  int
}

// NewBuffer returns an empty buffer whose first slab allocation will be
// initialSlabSize bytes. Slab sizes double on each allocation up to a fixed
// cap, so a small initial size only penalizes small payloads a little while
// keeping large payloads from over-allocating early.
func NewBuffer(initialSlabSize int) *Buffer {
	if initialSlabSize <= 0 {
		initialSlabSize = defaultSlabSize
	}
	return &Buffer{slabSize: initialSlabSize, initial: initialSlabSize}
}

// Len returns the number of bytes written to the buffer.
func (b *Buffer) Len() int {
	return b.size
}

// Write appends p to the buffer. It always returns len(p), nil.
func (b *Buffer) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		slab := b.writableSlab()
		i := len(b.slabs) - 1
		n := copy(slab[len(slab):cap(slab)], p)
		b.slabs[i] = slab[:len(slab)+n]
		b.size += n
		p = p[n:]
	}
	return written, nil
}

// WriteByte appends a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	slab := b.writableSlab()
	i := len(b.slabs) - 1
	b.slabs[i] = append(slab, c)
	b.size++
	return nil
}

func (b *Buffer) writableSlab() []byte {
	if n := len(b.slabs); n > 0 {
		if slab := b.slabs[n-1]; len(slab) < cap(slab) {
			return slab
		}
	}
	if b.slabSize == 0 {
		b.slabSize = defaultSlabSize
		b.initial = defaultSlabSize
	}
	slab := make([]byte, 0, b.slabSize)
	if b.slabSize < maxSlabSize {
		b.slabSize *= 2
	}
	b.slabs = append(b.slabs, slab)
	return slab
}

// WriteTo writes the content of the buffer to w. Unlike bytes.Buffer, the
// buffer is not consumed and may be written again.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	written := int64(0)
	for _, slab := range b.slabs {
		n, err := w.Write(slab)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// CopyTo copies min(len(dst), Len()) bytes from the start of the buffer into
// dst and returns the number of bytes copied.
func (b *Buffer) CopyTo(dst []byte) int {
	copied := 0
	for _, slab := range b.slabs {
		if copied == len(dst) {
			break
		}
		copied += copy(dst[copied:], slab)
	}
	return copied
}

// Reset discards the content of the buffer and returns slab sizing to its
// initial state. Sources previously created by FromBuffer observe the reset.
func (b *Buffer) Reset() {
	b.slabs = nil
	b.size = 0
	b.slabSize = b.initial
}
