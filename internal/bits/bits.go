// Package bits implements the bit-level arithmetic shared by the encoders and
// decoders of packed integer sections.
package bits

import (
	"math/bits"
)

// BitCount returns the number of bits held in a buffer of count bytes.
func BitCount(count int) uint {
	return 8 * uint(count)
}

// ByteCount returns the number of bytes needed to hold the given number of
// bits; the last byte is zero-padded when count is not a multiple of 8.
func ByteCount(count uint) int {
	return int((count + 7) / 8)
}

func Len32(i int32) int {
	return bits.Len32(uint32(i))
}

func Len64(i int64) int {
	return bits.Len64(uint64(i))
}
