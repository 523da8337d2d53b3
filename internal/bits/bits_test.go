package bits_test

import (
	"testing"

	"github.com/columnkit/pagecodec/internal/bits"
)

func TestByteCount(t *testing.T) {
	tests := [...]struct {
		bitCount  uint
		byteCount int
	}{
		{bitCount: 0, byteCount: 0},
		{bitCount: 1, byteCount: 1},
		{bitCount: 8, byteCount: 1},
		{bitCount: 9, byteCount: 2},
		{bitCount: 27, byteCount: 4},
		{bitCount: 64, byteCount: 8},
		{bitCount: 65, byteCount: 9},
	}

	for _, test := range tests {
		if n := bits.ByteCount(test.bitCount); n != test.byteCount {
			t.Errorf("wrong byte count for %d bits: want=%d got=%d", test.bitCount, test.byteCount, n)
		}
	}
}

func TestLen64(t *testing.T) {
	tests := [...]struct {
		value int64
		len   int
	}{
		{value: 0, len: 0},
		{value: 1, len: 1},
		{value: 3, len: 2},
		{value: 4, len: 3},
		{value: 255, len: 8},
		{value: 256, len: 9},
		{value: 65535, len: 16},
		{value: 1 << 31, len: 32},
	}

	for _, test := range tests {
		if n := bits.Len64(test.value); n != test.len {
			t.Errorf("wrong length for %d: want=%d got=%d", test.value, test.len, n)
		}
	}
}

func TestLoad32(t *testing.T) {
	tests := [...]struct {
		scenario string
		src      []byte
		bitIndex uint
		width    uint
		value    uint32
	}{
		{
			scenario: "one bit at the start",
			src:      []byte{0b00000001},
			bitIndex: 0,
			width:    1,
			value:    1,
		},

		{
			scenario: "three bits in the middle of a byte",
			src:      []byte{0b00101000},
			bitIndex: 3,
			width:    3,
			value:    0b101,
		},

		{
			scenario: "a word crossing a byte boundary",
			src:      []byte{0b11000000, 0b00000011},
			bitIndex: 6,
			width:    4,
			value:    0b1111,
		},

		{
			scenario: "a full 32 bits word at a misaligned index",
			src:      []byte{0b11110000, 0xFF, 0xFF, 0xFF, 0b00001111},
			bitIndex: 4,
			width:    32,
			value:    0xFFFFFFFF,
		},

		{
			scenario: "zero width",
			src:      nil,
			bitIndex: 0,
			width:    0,
			value:    0,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if v := bits.Load32(test.src, test.bitIndex, test.width); v != test.value {
				t.Errorf("wrong value: want=%032b got=%032b", test.value, v)
			}
		})
	}
}

func TestStore32(t *testing.T) {
	tests := [...]struct {
		scenario string
		bitIndex uint
		width    uint
		value    uint32
		dst      []byte
	}{
		{
			scenario: "one bit at the start",
			bitIndex: 0,
			width:    1,
			value:    1,
			dst:      []byte{0b00000001},
		},

		{
			scenario: "masked value wider than the width",
			bitIndex: 0,
			width:    3,
			value:    0xFF,
			dst:      []byte{0b00000111},
		},

		{
			scenario: "a word crossing a byte boundary",
			bitIndex: 6,
			width:    4,
			value:    0b1111,
			dst:      []byte{0b11000000, 0b00000011},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			buffer := make([]byte, len(test.dst))
			bits.Store32(buffer, test.bitIndex, test.width, test.value)

			for i := range buffer {
				if buffer[i] != test.dst[i] {
					t.Errorf("wrong byte at index %d: want=%08b got=%08b", i, test.dst[i], buffer[i])
				}
			}
		})
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	for _, width := range []uint{1, 2, 3, 5, 7, 8, 13, 16, 24, 31, 32} {
		buffer := make([]byte, bits.ByteCount(16*width))
		mask := uint32(uint64(1)<<width - 1)

		for i := uint(0); i < 16; i++ {
			bits.Store32(buffer, i*width, width, uint32(0x9E3779B9*i)&mask)
		}

		for i := uint(0); i < 16; i++ {
			want := uint32(0x9E3779B9*i) & mask
			if got := bits.Load32(buffer, i*width, width); got != want {
				t.Errorf("width=%d index=%d: want=%d got=%d", width, i, want, got)
			}
		}
	}
}
