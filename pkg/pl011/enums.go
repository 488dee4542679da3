package pl011

// WordLength selects the number of data bits transmitted or received in a
// frame (UARTLCR_H bits 6:5). All four patterns are defined, so decoding is
// total.
type WordLength uint8

const (
	WORD_LENGTH_5_BITS WordLength = 0b00
	WORD_LENGTH_6_BITS WordLength = 0b01
	WORD_LENGTH_7_BITS WordLength = 0b10
	WORD_LENGTH_8_BITS WordLength = 0b11
)

// FIFOLevelSelect is a receive or transmit interrupt trigger point
// (UARTIFLS). Only five of the eight 3-bit patterns are defined; decoding the
// remaining three fails with the raw pattern preserved.
type FIFOLevelSelect uint8

const (
	FIFO_LEVEL_ONE_EIGHTH FIFOLevelSelect = iota
	FIFO_LEVEL_ONE_FOURTH
	FIFO_LEVEL_ONE_HALF
	FIFO_LEVEL_THREE_FOURTHS
	FIFO_LEVEL_SEVEN_EIGHTHS
)
