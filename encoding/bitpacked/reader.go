package bitpacked

import (
	"fmt"

	"github.com/columnkit/pagecodec/internal/bits"
	"github.com/columnkit/pagecodec/internal/debug"
)

// Reader decodes a section of bit-packed integers from a page buffer, one
// value at a time. It keeps a borrowed reference to the page, never copying
// it, and decodes forward-only in batches of 8; the page must stay valid and
// unchanged for the duration of the decode pass.
//
// The reader does not bound the number of reads to the value count the
// section was bound with: the caller drives it exactly numValues times per
// section, and reading further decodes whatever bytes follow in the page.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	bitWidth uint
	packer   Packer

	decoded         [BatchSize]int32
	decodedPosition int

	page       []byte
	offset     int
	nextOffset int
}

// NewReader returns a reader for values in [0, maxValue], using a packer
// obtained from packers for the derived bit width. A maxValue requiring more
// than 32 bits, or a negative one, is a configuration error reported here
// rather than at decode time.
func NewReader(maxValue int64, packers PackerFactory) (*Reader, error) {
	bitWidth, err := widthFromMax(maxValue)
	if err != nil {
		return nil, err
	}
	r := &Reader{bitWidth: bitWidth, decodedPosition: BatchSize - 1}
	if bitWidth != 0 {
		r.packer = packers.NewPacker(bitWidth)
	}
	return r, nil
}

// BitWidth returns the number of bits used to encode each value.
func (r *Reader) BitWidth() uint {
	return r.bitWidth
}

// Reset binds the reader to a section of numValues values starting at offset
// in page. The page is not copied. The section occupies exactly
// ceil(numValues*bitWidth/8) bytes; Reset fails if the page cannot hold
// them.
func (r *Reader) Reset(numValues int, page []byte, offset int) error {
	if numValues < 0 {
		return fmt.Errorf("bitpacked: the number of values must not be negative: %d", numValues)
	}
	if offset < 0 || offset > len(page) {
		return fmt.Errorf("bitpacked: the section offset %d is out of bounds of a page of %d bytes", offset, len(page))
	}
	length := bits.ByteCount(uint(numValues) * r.bitWidth)
	if offset+length > len(page) {
		return fmt.Errorf("bitpacked: %d values of %d bits need %d bytes at offset %d but the page holds %d", numValues, r.bitWidth, length, offset, len(page))
	}
	r.page = page
	r.offset = offset
	r.nextOffset = offset + length
	r.decodedPosition = BatchSize - 1
	return nil
}

// ReadInt32 returns the next value of the section.
//
// When the next batch of 8 values is only partially backed by page bytes
// (the value count of the section is not a multiple of 8 and the section
// ends at the page end), the available tail is unpacked from a zero-padded
// scratch buffer instead of reading past the page.
func (r *Reader) ReadInt32() int32 {
	if r.bitWidth == 0 {
		// The declared maximum was 0, so every value is 0 and the section
		// holds no bytes at all.
		return 0
	}
	r.decodedPosition++
	if r.decodedPosition == BatchSize {
		width := int(r.bitWidth)
		if r.offset >= r.nextOffset {
			debug.Format("bitpacked: decoding past the section ending at offset %d (cursor at %d)", r.nextOffset, r.offset)
		}
		if r.offset+width > len(r.page) {
			var scratch [maxBitWidth]byte
			copy(scratch[:width], r.page[r.offset:])
			r.packer.UnpackBatch(scratch[:width], 0, r.decoded[:], 0)
		} else {
			r.packer.UnpackBatch(r.page, r.offset, r.decoded[:], 0)
		}
		r.offset += width
		r.decodedPosition = 0
	}
	return r.decoded[r.decodedPosition]
}

// Skip discards the next value of the section. It goes through the same
// decode path as ReadInt32 so the cursor bookkeeping stays in one place.
func (r *Reader) Skip() {
	r.ReadInt32()
}

// NextOffset returns the offset of the first byte after the section in the
// page, where the next encoded section begins when several are laid out back
// to back.
func (r *Reader) NextOffset() int {
	return r.nextOffset
}
