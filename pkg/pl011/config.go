package pl011

import "fmt"

// Parity selects the frame parity used by Configure.
type Parity uint8

const (
	PARITY_NONE Parity = iota
	PARITY_ODD
	PARITY_EVEN
)

// Config describes a line configuration for Configure.
type Config struct {
	// UARTCLK is the UART reference clock in Hz.
	UARTCLK uint32
	// BaudRate is the requested baud rate.
	BaudRate uint32
	// WordLength is the number of data bits per frame.
	WordLength WordLength
	TwoStopBits bool
	Parity      Parity
	EnableFIFOs bool
}

// BaudRateDivisors computes the integer and fractional (64ths, rounded)
// parts of BAUDDIV = clk / (16 * baud). It fails for divisors the hardware
// documents as invalid: an integer part of zero, one above 0xFFFF, or
// exactly 0xFFFF with a non-zero fractional part.
func BaudRateDivisors(clk, baud uint32) (uint16, uint8, error) {
	if baud == 0 {
		return 0, 0, fmt.Errorf("baud rate must be non-zero")
	}
	// div is BAUDDIV scaled by 128 so the fractional part can be rounded to
	// 64ths without floating point.
	div := uint64(8) * uint64(clk) / uint64(baud)
	ibrd := div >> 7
	fbrd := (div&0x7F + 1) / 2
	if fbrd == 64 {
		ibrd++
		fbrd = 0
	}
	switch {
	case ibrd == 0:
		return 0, 0, fmt.Errorf("baud rate %d too high for clock %d Hz: integer divisor is zero", baud, clk)
	case ibrd > 0xFFFF:
		return 0, 0, fmt.Errorf("baud rate %d too low for clock %d Hz: integer divisor %d overflows", baud, clk, ibrd)
	case ibrd == 0xFFFF && fbrd > 0:
		return 0, 0, fmt.Errorf("baud rate %d too low for clock %d Hz: fractional part with maximum integer divisor", baud, clk)
	}
	return uint16(ibrd), uint8(fbrd), nil
}

// Configure runs the canonical PL011 bring-up sequence: disable the UART,
// program the baud rate divisors, write the full line control value (which
// also latches the divisors), clear sticky receive errors and pending
// interrupts, then enable receive and transmit. It is a plain composition of
// the register operations; it does not wait for the BUSY flag, so callers
// reconfiguring a live peripheral should drain transmission first.
func (u UART[A]) Configure(cfg Config) error {
	ibrd, fbrd, err := BaudRateDivisors(cfg.UARTCLK, cfg.BaudRate)
	if err != nil {
		return fmt.Errorf("failed to configure UART: %w", err)
	}

	u.UpdateControlRegister(func(cr ControlRegister) ControlRegister {
		return cr.WithUARTEnable(false).WithTransmitEnable(false).WithReceiveEnable(false)
	})

	u.WriteIntegerBaudRateDivisorRegister(IntegerBaudRateDivisorRegister(0).WithIntegerBaudRateDivisor(ibrd))
	u.WriteFractionalBaudRateDivisorRegister(FractionalBaudRateDivisorRegister(0).WithFractionalBaudRateDivisor(fbrd))

	lcr := LineControlRegister(0).
		WithWordLength(cfg.WordLength).
		WithEnableFIFOs(cfg.EnableFIFOs).
		WithTwoStopBitsSelect(cfg.TwoStopBits)
	if cfg.Parity != PARITY_NONE {
		lcr = lcr.WithParityEnable(true).WithEvenParitySelect(cfg.Parity == PARITY_EVEN)
	}
	// A full LCR_H write is required after a divisor change to latch it.
	u.WriteLineControlRegister(lcr)

	u.WriteErrorClearRegister()
	u.WriteInterruptClearRegister(INTERRUPT_CLEAR_ALL)

	u.WriteControlRegister(ControlRegister(0).
		WithUARTEnable(true).
		WithTransmitEnable(true).
		WithReceiveEnable(true))
	return nil
}
