package pl011

import "github.com/mbalug7/go-pl011/pkg/bits"

// Each register type below wraps the raw storage integer of one PL011
// register and exposes one accessor and one With-style builder per field,
// all built on the pkg/bits codec. The types hold no reference to hardware:
// they are created by a volatile read (or from the zero value) and consumed
// by a volatile write. The zero value is the documented reset state for
// every register except UARTCR and UARTIFLS, see ControlRegisterReset and
// InterruptFIFOLevelSelectRegisterReset.

// DataRegister is the UARTDR register; the data register.
//
// A write pushes a character onto the transmit FIFO (or into the one-byte
// holding register when FIFOs are disabled) and initiates transmission. A
// read pops the received character together with its four per-character
// error bits.
type DataRegister uint32

// OverrunError is set when a character is received while the receive FIFO is
// already full.
func (r DataRegister) OverrunError() bool {
	return bits.Bit(r, 11)
}

func (r DataRegister) WithOverrunError(b bool) DataRegister {
	return bits.SetBit(r, 11, b)
}

// BreakError is set when the received data input was held low for longer
// than a full-word transmission time.
func (r DataRegister) BreakError() bool {
	return bits.Bit(r, 10)
}

func (r DataRegister) WithBreakError(b bool) DataRegister {
	return bits.SetBit(r, 10, b)
}

// ParityError is set when the received character's parity does not match the
// parity selected in the line control register.
func (r DataRegister) ParityError() bool {
	return bits.Bit(r, 9)
}

func (r DataRegister) WithParityError(b bool) DataRegister {
	return bits.SetBit(r, 9, b)
}

// FramingError is set when the received character did not have a valid stop
// bit.
func (r DataRegister) FramingError() bool {
	return bits.Bit(r, 8)
}

func (r DataRegister) WithFramingError(b bool) DataRegister {
	return bits.SetBit(r, 8, b)
}

// Data is the received (read) or to-be-transmitted (write) character.
func (r DataRegister) Data() uint8 {
	return uint8(bits.Extract(r, 0, 8))
}

func (r DataRegister) WithData(v uint8) DataRegister {
	return bits.Insert(r, 0, 8, DataRegister(v))
}

// ReceiveStatusRegister is the read half of the UARTRSR/UARTECR register.
// The break, framing and parity bits correspond to the character read from
// the data register before this register was read; the overrun bit is set
// immediately when an overrun occurs. Writing the shared offset clears all
// four error bits, see UART.WriteErrorClearRegister.
type ReceiveStatusRegister uint32

func (r ReceiveStatusRegister) OverrunError() bool {
	return bits.Bit(r, 3)
}

func (r ReceiveStatusRegister) WithOverrunError(b bool) ReceiveStatusRegister {
	return bits.SetBit(r, 3, b)
}

func (r ReceiveStatusRegister) BreakError() bool {
	return bits.Bit(r, 2)
}

func (r ReceiveStatusRegister) WithBreakError(b bool) ReceiveStatusRegister {
	return bits.SetBit(r, 2, b)
}

func (r ReceiveStatusRegister) ParityError() bool {
	return bits.Bit(r, 1)
}

func (r ReceiveStatusRegister) WithParityError(b bool) ReceiveStatusRegister {
	return bits.SetBit(r, 1, b)
}

func (r ReceiveStatusRegister) FramingError() bool {
	return bits.Bit(r, 0)
}

func (r ReceiveStatusRegister) WithFramingError(b bool) ReceiveStatusRegister {
	return bits.SetBit(r, 0, b)
}

// FlagRegister is the UARTFR register; the flag register. Read-only on
// hardware; the With builders exist for constructing expected values in
// tests.
type FlagRegister uint32

// RingIndicator is the complement of the nUARTRI modem status input.
func (r FlagRegister) RingIndicator() bool {
	return bits.Bit(r, 8)
}

func (r FlagRegister) WithRingIndicator(b bool) FlagRegister {
	return bits.SetBit(r, 8, b)
}

// TransmitFIFOEmpty is set when the transmit FIFO (or the holding register,
// when FIFOs are disabled) is empty.
func (r FlagRegister) TransmitFIFOEmpty() bool {
	return bits.Bit(r, 7)
}

func (r FlagRegister) WithTransmitFIFOEmpty(b bool) FlagRegister {
	return bits.SetBit(r, 7, b)
}

// ReceiveFIFOFull is set when the receive FIFO (or the holding register) is
// full.
func (r FlagRegister) ReceiveFIFOFull() bool {
	return bits.Bit(r, 6)
}

func (r FlagRegister) WithReceiveFIFOFull(b bool) FlagRegister {
	return bits.SetBit(r, 6, b)
}

// TransmitFIFOFull is set when the transmit FIFO (or the holding register)
// is full.
func (r FlagRegister) TransmitFIFOFull() bool {
	return bits.Bit(r, 5)
}

func (r FlagRegister) WithTransmitFIFOFull(b bool) FlagRegister {
	return bits.SetBit(r, 5, b)
}

// ReceiveFIFOEmpty is set when the receive FIFO (or the holding register) is
// empty.
func (r FlagRegister) ReceiveFIFOEmpty() bool {
	return bits.Bit(r, 4)
}

func (r FlagRegister) WithReceiveFIFOEmpty(b bool) FlagRegister {
	return bits.SetBit(r, 4, b)
}

// UARTBusy is set while the UART is transmitting, from the moment the
// transmit FIFO becomes non-empty until the complete byte including stop
// bits has left the shift register.
func (r FlagRegister) UARTBusy() bool {
	return bits.Bit(r, 3)
}

func (r FlagRegister) WithUARTBusy(b bool) FlagRegister {
	return bits.SetBit(r, 3, b)
}

// DataCarrierDetect is the complement of the nUARTDCD modem status input.
func (r FlagRegister) DataCarrierDetect() bool {
	return bits.Bit(r, 2)
}

func (r FlagRegister) WithDataCarrierDetect(b bool) FlagRegister {
	return bits.SetBit(r, 2, b)
}

// DataSetReady is the complement of the nUARTDSR modem status input.
func (r FlagRegister) DataSetReady() bool {
	return bits.Bit(r, 1)
}

func (r FlagRegister) WithDataSetReady(b bool) FlagRegister {
	return bits.SetBit(r, 1, b)
}

// ClearToSend is the complement of the nUARTCTS modem status input.
func (r FlagRegister) ClearToSend() bool {
	return bits.Bit(r, 0)
}

func (r FlagRegister) WithClearToSend(b bool) FlagRegister {
	return bits.SetBit(r, 0, b)
}

// IrDALowPowerRegister is the UARTILPR register; the 8-bit low-power counter
// divisor used to generate IrLPBaud16 by dividing down UARTCLK.
type IrDALowPowerRegister uint8

// LowPowerDivisor decodes the divisor value. The hardware reserves zero
// (the reset state), so decoding is fallible; the error carries the raw
// pattern.
func (r IrDALowPowerRegister) LowPowerDivisor() (uint8, error) {
	p := bits.Extract(r, 0, 8)
	if p == 0 {
		return 0, &bits.InvalidPatternError{Field: "low power divisor", Pattern: uint32(p)}
	}
	return uint8(p), nil
}

// WithLowPowerDivisor encodes v. Zero is the hardware-reserved pattern;
// writing it returns the field to its reserved reset state.
func (r IrDALowPowerRegister) WithLowPowerDivisor(v uint8) IrDALowPowerRegister {
	return bits.Insert(r, 0, 8, IrDALowPowerRegister(v))
}

// IntegerBaudRateDivisorRegister is the UARTIBRD register; the integer part
// of the baud rate divisor BAUDDIV = UARTCLK / (16 * baud rate).
type IntegerBaudRateDivisorRegister uint16

// IntegerBaudRateDivisor decodes the divisor. The minimum divide ratio is 1,
// so the zero pattern is invalid and decoding it fails with the raw pattern.
func (r IntegerBaudRateDivisorRegister) IntegerBaudRateDivisor() (uint16, error) {
	p := bits.Extract(r, 0, 16)
	if p == 0 {
		return 0, &bits.InvalidPatternError{Field: "integer baud rate divisor", Pattern: uint32(p)}
	}
	return uint16(p), nil
}

// WithIntegerBaudRateDivisor encodes v. Zero is the hardware-reserved
// pattern.
func (r IntegerBaudRateDivisorRegister) WithIntegerBaudRateDivisor(v uint16) IntegerBaudRateDivisorRegister {
	return bits.Insert(r, 0, 16, IntegerBaudRateDivisorRegister(v))
}

// FractionalBaudRateDivisorRegister is the UARTFBRD register; the 6-bit
// fractional part (in 64ths) of the baud rate divisor.
type FractionalBaudRateDivisorRegister uint8

func (r FractionalBaudRateDivisorRegister) FractionalBaudRateDivisor() uint8 {
	return uint8(bits.Extract(r, 0, 6))
}

// WithFractionalBaudRateDivisor encodes the low six bits of v.
func (r FractionalBaudRateDivisorRegister) WithFractionalBaudRateDivisor(v uint8) FractionalBaudRateDivisorRegister {
	return bits.Insert(r, 0, 6, FractionalBaudRateDivisorRegister(v))
}

// LineControlRegister is the UARTLCR_H register; the line control register.
// A divisor change only takes effect after a write to this register, so
// configuration sequences end with a full LCR_H write.
type LineControlRegister uint16

// StickParity forces the parity bit to a constant level (the inverse of
// EvenParitySelect) when set.
func (r LineControlRegister) StickParity() bool {
	return bits.Bit(r, 7)
}

func (r LineControlRegister) WithStickParity(b bool) LineControlRegister {
	return bits.SetBit(r, 7, b)
}

// WordLength is the number of data bits per frame, bits 6:5.
func (r LineControlRegister) WordLength() WordLength {
	return WordLength(bits.Extract(r, 5, 2))
}

func (r LineControlRegister) WithWordLength(w WordLength) LineControlRegister {
	return bits.Insert(r, 5, 2, LineControlRegister(w))
}

// EnableFIFOs selects FIFO mode; when clear the FIFOs act as one-byte
// holding registers (character mode).
func (r LineControlRegister) EnableFIFOs() bool {
	return bits.Bit(r, 4)
}

func (r LineControlRegister) WithEnableFIFOs(b bool) LineControlRegister {
	return bits.SetBit(r, 4, b)
}

// TwoStopBitsSelect transmits two stop bits at the end of each frame. The
// receive logic does not check for the second stop bit.
func (r LineControlRegister) TwoStopBitsSelect() bool {
	return bits.Bit(r, 3)
}

func (r LineControlRegister) WithTwoStopBitsSelect(b bool) LineControlRegister {
	return bits.SetBit(r, 3, b)
}

// EvenParitySelect selects even parity; odd when clear. No effect unless
// ParityEnable is set.
func (r LineControlRegister) EvenParitySelect() bool {
	return bits.Bit(r, 2)
}

func (r LineControlRegister) WithEvenParitySelect(b bool) LineControlRegister {
	return bits.SetBit(r, 2, b)
}

func (r LineControlRegister) ParityEnable() bool {
	return bits.Bit(r, 1)
}

func (r LineControlRegister) WithParityEnable(b bool) LineControlRegister {
	return bits.SetBit(r, 1, b)
}

// SendBreak continually drives the TX output low after the current character
// completes. Must be held for at least two full frames to form a valid
// break.
func (r LineControlRegister) SendBreak() bool {
	return bits.Bit(r, 0)
}

func (r LineControlRegister) WithSendBreak(b bool) LineControlRegister {
	return bits.SetBit(r, 0, b)
}

// ControlRegister is the UARTCR register; the control register.
//
// On reset the hardware clears every bit except ReceiveEnable and
// TransmitEnable, which reset to 1; the zero value of this type is therefore
// not the reset state. Use ControlRegisterReset when the bit-exact reset
// value matters.
type ControlRegister uint16

// ControlRegisterReset is the documented reset state of UARTCR: receive and
// transmit enabled, everything else clear.
const ControlRegisterReset ControlRegister = 0x0300

// CTSHardwareFlowControlEnable transmits only while nUARTCTS is asserted.
func (r ControlRegister) CTSHardwareFlowControlEnable() bool {
	return bits.Bit(r, 15)
}

func (r ControlRegister) WithCTSHardwareFlowControlEnable(b bool) ControlRegister {
	return bits.SetBit(r, 15, b)
}

// RTSHardwareFlowControlEnable requests data only while the receive FIFO has
// room.
func (r ControlRegister) RTSHardwareFlowControlEnable() bool {
	return bits.Bit(r, 14)
}

func (r ControlRegister) WithRTSHardwareFlowControlEnable(b bool) ControlRegister {
	return bits.SetBit(r, 14, b)
}

// Out2 is the complement of the nUARTOut2 modem status output.
func (r ControlRegister) Out2() bool {
	return bits.Bit(r, 13)
}

func (r ControlRegister) WithOut2(b bool) ControlRegister {
	return bits.SetBit(r, 13, b)
}

// Out1 is the complement of the nUARTOut1 modem status output.
func (r ControlRegister) Out1() bool {
	return bits.Bit(r, 12)
}

func (r ControlRegister) WithOut1(b bool) ControlRegister {
	return bits.SetBit(r, 12, b)
}

// RequestToSend is the complement of the nUARTRTS modem status output.
func (r ControlRegister) RequestToSend() bool {
	return bits.Bit(r, 11)
}

func (r ControlRegister) WithRequestToSend(b bool) ControlRegister {
	return bits.SetBit(r, 11, b)
}

// DataTransmitReady is the complement of the nUARTDTR modem status output.
func (r ControlRegister) DataTransmitReady() bool {
	return bits.Bit(r, 10)
}

func (r ControlRegister) WithDataTransmitReady(b bool) ControlRegister {
	return bits.SetBit(r, 10, b)
}

// ReceiveEnable enables the receive section. Disabling mid-reception
// completes the current character first.
func (r ControlRegister) ReceiveEnable() bool {
	return bits.Bit(r, 9)
}

func (r ControlRegister) WithReceiveEnable(b bool) ControlRegister {
	return bits.SetBit(r, 9, b)
}

// TransmitEnable enables the transmit section. Disabling mid-transmission
// completes the current character first.
func (r ControlRegister) TransmitEnable() bool {
	return bits.Bit(r, 8)
}

func (r ControlRegister) WithTransmitEnable(b bool) ControlRegister {
	return bits.SetBit(r, 8, b)
}

// LoopbackEnable feeds the UARTTXD path through to the UARTRXD path (and the
// modem outputs to the modem inputs).
func (r ControlRegister) LoopbackEnable() bool {
	return bits.Bit(r, 7)
}

func (r ControlRegister) WithLoopbackEnable(b bool) ControlRegister {
	return bits.SetBit(r, 7, b)
}

// SIREnable enables the IrDA SIR ENDEC. No effect unless UARTEnable is set.
func (r ControlRegister) SIREnable() bool {
	return bits.Bit(r, 1)
}

func (r ControlRegister) WithSIREnable(b bool) ControlRegister {
	return bits.SetBit(r, 1, b)
}

// UARTEnable enables the UART. Disabling mid-transfer completes the current
// character first.
func (r ControlRegister) UARTEnable() bool {
	return bits.Bit(r, 0)
}

func (r ControlRegister) WithUARTEnable(b bool) ControlRegister {
	return bits.SetBit(r, 0, b)
}

// InterruptFIFOLevelSelectRegister is the UARTIFLS register; the FIFO fill
// levels that trigger the receive and transmit interrupts. Interrupts fire
// on a transition through the level, not on the level itself.
type InterruptFIFOLevelSelectRegister uint16

// InterruptFIFOLevelSelectRegisterReset is the documented reset state of
// UARTIFLS: both trigger levels at the half-way mark.
const InterruptFIFOLevelSelectRegisterReset InterruptFIFOLevelSelectRegister = 0x0012

// ReceiveInterruptFIFOLevelSelect decodes bits 5:3. Patterns above
// FIFO_LEVEL_SEVEN_EIGHTHS are reserved and fail to decode.
func (r InterruptFIFOLevelSelectRegister) ReceiveInterruptFIFOLevelSelect() (FIFOLevelSelect, error) {
	p := bits.Extract(r, 3, 3)
	if p > InterruptFIFOLevelSelectRegister(FIFO_LEVEL_SEVEN_EIGHTHS) {
		return 0, &bits.InvalidPatternError{Field: "receive interrupt FIFO level select", Pattern: uint32(p)}
	}
	return FIFOLevelSelect(p), nil
}

func (r InterruptFIFOLevelSelectRegister) WithReceiveInterruptFIFOLevelSelect(l FIFOLevelSelect) InterruptFIFOLevelSelectRegister {
	return bits.Insert(r, 3, 3, InterruptFIFOLevelSelectRegister(l))
}

// TransmitInterruptFIFOLevelSelect decodes bits 2:0. Patterns above
// FIFO_LEVEL_SEVEN_EIGHTHS are reserved and fail to decode.
func (r InterruptFIFOLevelSelectRegister) TransmitInterruptFIFOLevelSelect() (FIFOLevelSelect, error) {
	p := bits.Extract(r, 0, 3)
	if p > InterruptFIFOLevelSelectRegister(FIFO_LEVEL_SEVEN_EIGHTHS) {
		return 0, &bits.InvalidPatternError{Field: "transmit interrupt FIFO level select", Pattern: uint32(p)}
	}
	return FIFOLevelSelect(p), nil
}

func (r InterruptFIFOLevelSelectRegister) WithTransmitInterruptFIFOLevelSelect(l FIFOLevelSelect) InterruptFIFOLevelSelectRegister {
	return bits.Insert(r, 0, 3, InterruptFIFOLevelSelectRegister(l))
}
