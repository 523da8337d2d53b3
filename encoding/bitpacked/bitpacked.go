// Package bitpacked implements sequential readers and writers for sections
// of integers packed at a fixed bit width.
//
// Values are handled in batches of 8 because 8 values of w bits pack into
// exactly w bytes, which keeps every batch byte-aligned. The bit-level
// packing primitive is abstracted behind the Packer interface so the bit
// ordering convention is owned entirely by the packer implementation; the
// LittleEndian factory provides the portable reference packers.
package bitpacked

import (
	"fmt"

	"github.com/columnkit/pagecodec/internal/bits"
)

// BatchSize is the number of values packed and unpacked together.
const BatchSize = 8

// maxBitWidth bounds the supported widths; it is also the largest byte span
// a single batch can occupy.
const maxBitWidth = 32

// Packer packs and unpacks batches of 8 integers at a fixed bit width.
type Packer interface {
	// PackBatch packs the 8 values at src[srcOffset:] into the bit-width
	// bytes at dst[dstOffset:].
	PackBatch(src []int32, srcOffset int, dst []byte, dstOffset int)

	// UnpackBatch unpacks 8 values from the bit-width bytes at
	// src[srcOffset:] into dst[dstOffset:].
	UnpackBatch(src []byte, srcOffset int, dst []int32, dstOffset int)
}

// PackerFactory constructs packers configured for a given bit width in
// (0, 32].
type PackerFactory interface {
	NewPacker(bitWidth uint) Packer
}

// LittleEndian builds packers using the little-endian bit order: value i of
// a batch occupies bits [i*w, (i+1)*w) counted from the least significant
// bit of the first byte.
var LittleEndian PackerFactory = littleEndianPackers{}

type littleEndianPackers struct{}

func (littleEndianPackers) NewPacker(bitWidth uint) Packer {
	return littleEndianPacker{bitWidth: bitWidth}
}

type littleEndianPacker struct {
	bitWidth uint
}

func (p littleEndianPacker) PackBatch(src []int32, srcOffset int, dst []byte, dstOffset int) {
	for i := 0; i < int(p.bitWidth); i++ {
		dst[dstOffset+i] = 0
	}
	bitIndex := 8 * uint(dstOffset)
	for i := 0; i < BatchSize; i++ {
		bits.Store32(dst, bitIndex, p.bitWidth, uint32(src[srcOffset+i]))
		bitIndex += p.bitWidth
	}
}

func (p littleEndianPacker) UnpackBatch(src []byte, srcOffset int, dst []int32, dstOffset int) {
	bitIndex := 8 * uint(srcOffset)
	for i := 0; i < BatchSize; i++ {
		dst[dstOffset+i] = int32(bits.Load32(src, bitIndex, p.bitWidth))
		bitIndex += p.bitWidth
	}
}

// widthFromMax returns the number of bits needed to encode values in
// [0, maxValue]: ceil(log2(maxValue+1)), which is 0 when maxValue is 0.
func widthFromMax(maxValue int64) (uint, error) {
	if maxValue < 0 {
		return 0, fmt.Errorf("bitpacked: the maximum value must not be negative: %d", maxValue)
	}
	width := uint(bits.Len64(maxValue))
	if width > maxBitWidth {
		return 0, fmt.Errorf("bitpacked: a maximum value of %d needs %d bits to encode, which exceeds the %d bits limit", maxValue, width, maxBitWidth)
	}
	return width, nil
}
