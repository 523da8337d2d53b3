package bits

// Load32 reads a word of the given width (in bits, at most 32) starting at
// the absolute bit index i in src. Bits are taken in little-endian order,
// least significant bit of the lowest byte first.
func Load32(src []byte, i, width uint) uint32 {
	if width == 0 {
		return 0
	}

	j, shift := i/8, i%8
	mask := uint64(1)<<width - 1

	v := uint64(0)
	for n := uint(0); n < uint(ByteCount(shift+width)); n++ {
		v |= uint64(src[j+n]) << (8 * n)
	}

	return uint32((v >> shift) & mask)
}

// Store32 writes a word of the given width (in bits, at most 32) starting at
// the absolute bit index i in dst, using the same little-endian bit order as
// Load32. The destination bits must be zero prior to the call since the word
// is merged in with bitwise or.
func Store32(dst []byte, i, width uint, value uint32) {
	if width == 0 {
		return
	}

	j, shift := i/8, i%8
	mask := uint64(1)<<width - 1

	v := (uint64(value) & mask) << shift
	for n := uint(0); n < uint(ByteCount(shift+width)); n++ {
		dst[j+n] |= byte(v >> (8 * n))
	}
}
