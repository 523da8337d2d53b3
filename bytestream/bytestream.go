// Package bytestream provides composable, lazily materialized byte sources
// used to assemble encoded column bytes and emit them without intermediate
// copies.
//
// A Source is a write-once description of a byte sequence: a raw range over
// an existing array, a little-endian integer, a view over a growable buffer,
// a bounded read from a stream, or the concatenation of other sources.
// Sources backed by a stream must be consumed right away; writing them
// advances the underlying reader, so a second write reads the wrong bytes.
// All other variants may be written any number of times.
package bytestream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrEmptySource is returned when a prefix write is requested from the empty
// source, which has no bytes to extract.
var ErrEmptySource = errors.New("bytestream: no bytes can be extracted from an empty source")

// Source is a sequence of bytes of known size which materializes lazily,
// when written to an output.
type Source interface {
	// Size returns the number of bytes the source produces when written.
	//
	// For sources over a growable buffer or a stream the size reflects the
	// current state of the underlying data and is not cached.
	Size() int64

	// WriteAllTo writes every byte of the source to w, in order. The number
	// of bytes written equals the value Size returned when the write began.
	WriteAllTo(w io.Writer) error

	// WriteTo writes length bytes, a prefix of the source's content, into
	// dst starting at start, and returns a source holding the content from
	// length onward: the unread remainder for a stream-backed source, and a
	// raw range over the bytes just written for every other variant.
	//
	// length must be in (0, Size()]; anything else is a programming error
	// and fails without writing.
	WriteTo(dst []byte, start, length int) (Source, error)
}

// Bytes materializes src into a freshly allocated byte array by driving
// WriteAllTo. A stream-backed source is fully drained by the call.
func Bytes(src Source) ([]byte, error) {
	b := bytes.NewBuffer(make([]byte, 0, src.Size()))
	if err := src.WriteAllTo(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Copy materializes src and returns a raw source over the copy. It is the
// way to retain the content of a single-use stream-backed source beyond its
// first write.
func Copy(src Source) (Source, error) {
	b, err := Bytes(src)
	if err != nil {
		return nil, err
	}
	return FromBytes(b), nil
}

// LengthPrefixed frames src with a 4-byte little-endian length prefix. The
// length is captured when the call is made.
func LengthPrefixed(src Source) Source {
	return Concat(FromInt32(int32(src.Size())), src)
}

func checkWriteBounds(size int64, dst []byte, start, length int) error {
	if length <= 0 || int64(length) > size {
		return fmt.Errorf("bytestream: write length %d is out of range for a source of %d bytes", length, size)
	}
	if start < 0 || start+length > len(dst) {
		return fmt.Errorf("bytestream: write range [%d:%d] is out of bounds of a buffer of %d bytes", start, start+length, len(dst))
	}
	return nil
}
