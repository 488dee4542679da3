package bits

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractInsertRoundTrip8(t *testing.T) {
	// insert(v, o, n, extract(v, o, n)) == v, exhaustively for 8-bit values.
	for v := 0; v < 256; v++ {
		for offset := uint(0); offset < 8; offset++ {
			for width := uint(1); width <= 8-offset; width++ {
				got := Insert(uint8(v), offset, width, Extract(uint8(v), offset, width))
				require.Equalf(t, uint8(v), got, "v=%#x o=%d n=%d", v, offset, width)
			}
		}
	}
}

func TestInsertMasksPatternToWidth(t *testing.T) {
	// extract(insert(v, o, n, p), o, n) == p mod 2^n
	cases := []struct {
		v       uint32
		offset  uint
		width   uint
		pattern uint32
	}{
		{v: 0x0000_0000, offset: 0, width: 8, pattern: 0xFF},
		{v: 0xFFFF_FFFF, offset: 0, width: 8, pattern: 0x00},
		{v: 0xDEAD_BEEF, offset: 11, width: 1, pattern: 1},
		{v: 0xDEAD_BEEF, offset: 5, width: 2, pattern: 0b111}, // wider than field
		{v: 0x1234_5678, offset: 3, width: 3, pattern: 0xFF},  // wider than field
		{v: 0x0000_0000, offset: 0, width: 32, pattern: 0xCAFE_BABE},
		{v: 0xFFFF_FFFF, offset: 31, width: 1, pattern: 0},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("o%d_n%d", c.offset, c.width), func(t *testing.T) {
			got := Extract(Insert(c.v, c.offset, c.width, c.pattern), c.offset, c.width)
			want := c.pattern & (uint32(1)<<c.width - 1)
			assert.Equal(t, want, got)
		})
	}
}

func TestInsertPreservesSiblingBits(t *testing.T) {
	// Only bits [o, o+n) may change.
	v := uint16(0b1010_1010_1010_1010)
	got := Insert(v, 4, 4, 0b0101)
	assert.Equal(t, uint16(0b1010_1010_0101_1010), got)

	// Full-width insert replaces everything.
	assert.Equal(t, uint16(0x1234), Insert(v, 0, 16, 0x1234))
}

func TestExtractReadsOnlyRange(t *testing.T) {
	v := uint32(0xFFFF_FFFF)
	assert.Equal(t, uint32(0b111), Extract(v, 9, 3))
	assert.Equal(t, uint32(0), Extract(uint32(0)|1<<8|1<<12, 9, 3))
}

func TestBitAndSetBit(t *testing.T) {
	var v uint8
	for offset := uint(0); offset < 8; offset++ {
		assert.False(t, Bit(v, offset))
		v = SetBit(v, offset, true)
		assert.True(t, Bit(v, offset))
	}
	assert.Equal(t, uint8(0xFF), v)
	v = SetBit(v, 3, false)
	assert.Equal(t, uint8(0xF7), v)
	assert.False(t, Bit(v, 3))
}

func TestInvalidPatternError(t *testing.T) {
	var err error = &InvalidPatternError{Field: "word length", Pattern: 0b101}
	var ipe *InvalidPatternError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, uint32(0b101), ipe.Pattern)
	assert.Contains(t, err.Error(), "word length")
	assert.Contains(t, err.Error(), "0x5")
}
