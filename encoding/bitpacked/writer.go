package bitpacked

import (
	"fmt"

	"github.com/columnkit/pagecodec/bytestream"
	"github.com/columnkit/pagecodec/internal/bits"
	"github.com/columnkit/pagecodec/internal/buffers"
)

// Writer encodes a section of integers at a fixed bit width, accumulating
// the packed bytes in a growable buffer. The encoded section is exposed as a
// bytestream.Source so it composes with other sources into a page without
// being copied.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	bitWidth uint
	packer   Packer

	input     [BatchSize]int32
	inputSize int
	count     int

	buffer    *bytestream.Buffer
	scratch   []byte
	finalized bool
}

// NewWriter returns a writer for values in [0, maxValue], using a packer
// obtained from packers for the derived bit width.
func NewWriter(maxValue int64, packers PackerFactory) (*Writer, error) {
	bitWidth, err := widthFromMax(maxValue)
	if err != nil {
		return nil, err
	}
	w := &Writer{
		bitWidth: bitWidth,
		buffer:   bytestream.NewBuffer(bits.ByteCount(64 * bitWidth)),
	}
	if bitWidth != 0 {
		w.packer = packers.NewPacker(bitWidth)
		w.scratch = buffers.Ensure(nil, int(bitWidth))
	}
	return w, nil
}

// BitWidth returns the number of bits used to encode each value.
func (w *Writer) BitWidth() uint {
	return w.bitWidth
}

// NumValues returns the number of values written to the current section.
func (w *Writer) NumValues() int {
	return w.count
}

// WriteInt32 appends v to the section. Values above the declared maximum
// have their high bits discarded by the packer.
func (w *Writer) WriteInt32(v int32) error {
	if w.finalized {
		return fmt.Errorf("bitpacked: the writer must be reset before writing to it again after its encoded bytes were taken")
	}
	w.count++
	if w.bitWidth == 0 {
		return nil
	}
	w.input[w.inputSize] = v
	w.inputSize++
	if w.inputSize == BatchSize {
		w.packer.PackBatch(w.input[:], 0, w.scratch, 0)
		w.buffer.Write(w.scratch)
		w.inputSize = 0
	}
	return nil
}

// Bytes returns the encoded section, exactly ceil(numValues*bitWidth/8)
// bytes. The first call finalizes the section: a trailing partial batch is
// zero-padded, packed, and trimmed to the padded byte count, after which the
// writer accepts no further values until Reset.
func (w *Writer) Bytes() bytestream.Source {
	if !w.finalized {
		w.flush()
		w.finalized = true
	}
	return bytestream.FromBuffer(w.buffer)
}

func (w *Writer) flush() {
	if w.bitWidth == 0 || w.inputSize == 0 {
		return
	}
	for i := w.inputSize; i < BatchSize; i++ {
		w.input[i] = 0
	}
	w.packer.PackBatch(w.input[:], 0, w.scratch, 0)
	tail := bits.ByteCount(uint(w.count)*w.bitWidth) - w.buffer.Len()
	w.buffer.Write(w.scratch[:tail])
	w.inputSize = 0
}

// Reset discards the current section so the writer can encode a new one.
// Sources returned by earlier Bytes calls observe the reset and must not be
// written afterwards.
func (w *Writer) Reset() {
	w.buffer.Reset()
	w.inputSize = 0
	w.count = 0
	w.finalized = false
}
