// Package bits implements the bit-range codec shared by every register type:
// extracting and inserting an n-bit field at a given offset inside a raw
// register value, without touching sibling bits.
package bits

// Raw is the set of storage integers a hardware register can use.
type Raw interface {
	~uint8 | ~uint16 | ~uint32
}

// Extract returns the width-bit pattern stored at offset in v.
// Bits outside [offset, offset+width) are never read.
func Extract[R Raw](v R, offset, width uint) R {
	return (v >> offset) & (R(1)<<width - 1)
}

// Insert returns v with the width-bit range at offset replaced by pattern.
// The pattern is masked to width, all other bits of v are preserved exactly,
// so independent fields of one register can be updated without disturbing
// each other.
func Insert[R Raw](v R, offset, width uint, pattern R) R {
	mask := (R(1)<<width - 1) << offset
	return v&^mask | pattern<<offset&mask
}

// Bit reports whether the single bit at offset is set.
func Bit[R Raw](v R, offset uint) bool {
	return v>>offset&1 != 0
}

// SetBit returns v with the single bit at offset set to b.
func SetBit[R Raw](v R, offset uint, b bool) R {
	if b {
		return v | R(1)<<offset
	}
	return v &^ (R(1) << offset)
}
