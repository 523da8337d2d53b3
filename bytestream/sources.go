package bytestream

import (
	"encoding/binary"
	"fmt"
	"io"
)

var empty = emptySource{}

// Empty returns the source of zero bytes.
func Empty() Source {
	return empty
}

// FromBytes returns a source producing the content of data. The bytes are
// not copied; the caller must keep data unchanged until the source has been
// written.
func FromBytes(data []byte) Source {
	return byteArraySource{data: data}
}

// FromBytesRange returns a source producing length bytes of data starting at
// offset, without copying.
func FromBytesRange(data []byte, offset, length int) Source {
	return byteArraySource{data: data[offset : offset+length : offset+length]}
}

// FromInt32 returns a 4-byte source holding the little-endian encoding of v.
// The bytes materialize when the source is written.
func FromInt32(v int32) Source {
	return int32Source{value: v}
}

// FromReader returns a source producing the next byteCount bytes read from
// r. The source is single-use: writing it consumes the reader, and a stream
// holding fewer than byteCount bytes fails the write with a short read
// error.
func FromReader(r io.Reader, byteCount int) Source {
	return &streamSource{reader: r, byteCount: byteCount}
}

// FromBuffer returns a source producing the content of b. Size and content
// are read when the source is written, so the buffer may keep growing after
// the source was created and the bytes appended in the meantime are
// included.
func FromBuffer(b *Buffer) Source {
	return bufferSource{buffer: b}
}

// Concat returns a source producing the content of each source in order.
// The size of the concatenation is computed eagerly, so sources over a
// growable buffer are snapshotted at the time of the call.
func Concat(sources ...Source) Source {
	size := int64(0)
	for _, src := range sources {
		size += src.Size()
	}
	return sequenceSource{sources: sources, size: size}
}

type emptySource struct{}

func (emptySource) Size() int64 { return 0 }

func (emptySource) WriteAllTo(io.Writer) error { return nil }

func (emptySource) WriteTo([]byte, int, int) (Source, error) {
	return nil, ErrEmptySource
}

type byteArraySource struct {
	data []byte
}

func (s byteArraySource) Size() int64 {
	return int64(len(s.data))
}

func (s byteArraySource) WriteAllTo(w io.Writer) error {
	_, err := w.Write(s.data)
	return err
}

func (s byteArraySource) WriteTo(dst []byte, start, length int) (Source, error) {
	if err := checkWriteBounds(s.Size(), dst, start, length); err != nil {
		return nil, err
	}
	copy(dst[start:start+length], s.data)
	return FromBytesRange(dst, start, length), nil
}

type int32Source struct {
	value int32
}

func (s int32Source) Size() int64 { return 4 }

func (s int32Source) WriteAllTo(w io.Writer) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(s.value))
	_, err := w.Write(b[:])
	return err
}

func (s int32Source) WriteTo(dst []byte, start, length int) (Source, error) {
	if err := checkWriteBounds(s.Size(), dst, start, length); err != nil {
		return nil, err
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(s.value))
	copy(dst[start:start+length], b[:length])
	return FromBytesRange(dst, start, length), nil
}

type streamSource struct {
	reader    io.Reader
	byteCount int
}

func (s *streamSource) Size() int64 {
	return int64(s.byteCount)
}

func (s *streamSource) WriteAllTo(w io.Writer) error {
	n, err := io.CopyN(w, s.reader, int64(s.byteCount))
	if err == io.EOF {
		return fmt.Errorf("bytestream: short read: the stream held %d bytes out of the %d declared", n, s.byteCount)
	}
	return err
}

func (s *streamSource) WriteTo(dst []byte, start, length int) (Source, error) {
	if err := checkWriteBounds(s.Size(), dst, start, length); err != nil {
		return nil, err
	}
	n, err := io.ReadFull(s.reader, dst[start:start+length])
	if err != nil {
		return nil, fmt.Errorf("bytestream: short read: the stream held %d bytes out of the %d requested", n, length)
	}
	return FromReader(s.reader, s.byteCount-length), nil
}

type bufferSource struct {
	buffer *Buffer
}

func (s bufferSource) Size() int64 {
	return int64(s.buffer.Len())
}

func (s bufferSource) WriteAllTo(w io.Writer) error {
	_, err := s.buffer.WriteTo(w)
	return err
}

func (s bufferSource) WriteTo(dst []byte, start, length int) (Source, error) {
	if err := checkWriteBounds(s.Size(), dst, start, length); err != nil {
		return nil, err
	}
	s.buffer.CopyTo(dst[start : start+length])
	return FromBytesRange(dst, start, length), nil
}

type sequenceSource struct {
	sources []Source
	size    int64
}

func (s sequenceSource) Size() int64 {
	return s.size
}

func (s sequenceSource) WriteAllTo(w io.Writer) error {
	for _, src := range s.sources {
		if err := src.WriteAllTo(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo walks the children in order, writing min(remaining, child size)
// bytes from each until length bytes were produced, possibly stopping
// partway through a child. The returned source is a raw range over the bytes
// just written to dst, not a resumable remainder: the unconsumed tail of a
// partially written child cannot be recovered from it.
func (s sequenceSource) WriteTo(dst []byte, start, length int) (Source, error) {
	if err := checkWriteBounds(s.size, dst, start, length); err != nil {
		return nil, err
	}
	offset, remain := start, length
	for _, src := range s.sources {
		if remain == 0 {
			break
		}
		n := remain
		if size := src.Size(); int64(n) > size {
			n = int(size)
		}
		if n == 0 {
			continue
		}
		if _, err := src.WriteTo(dst, offset, n); err != nil {
			return nil, err
		}
		offset += n
		remain -= n
	}
	return FromBytesRange(dst, start, length), nil
}
