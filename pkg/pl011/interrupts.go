package pl011

import "github.com/mbalug7/go-pl011/pkg/bits"

// The four interrupt registers (UARTIMSC, UARTRIS, UARTMIS, UARTICR) share
// one bit layout: eleven interrupt sources at bits 10:0. They are distinct
// types because their contracts differ (mask bits are read/write, status
// bits are read-only, clear bits are write-one-to-clear) and only the
// documented direction is exposed on each.
const (
	intOverrunError   = 10
	intBreakError     = 9
	intParityError    = 8
	intFramingError   = 7
	intReceiveTimeout = 6
	intTransmit       = 5
	intReceive        = 4
	intDSRModem       = 3
	intDCDModem       = 2
	intCTSModem       = 1
	intRIModem        = 0
)

// InterruptMaskSetClearRegister is the UARTIMSC register. A read returns the
// current mask; writing 1 to a bit sets the corresponding mask, writing 0
// clears it.
type InterruptMaskSetClearRegister uint16

func (r InterruptMaskSetClearRegister) OverrunErrorInterruptMask() bool {
	return bits.Bit(r, intOverrunError)
}

func (r InterruptMaskSetClearRegister) WithOverrunErrorInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intOverrunError, b)
}

func (r InterruptMaskSetClearRegister) BreakErrorInterruptMask() bool {
	return bits.Bit(r, intBreakError)
}

func (r InterruptMaskSetClearRegister) WithBreakErrorInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intBreakError, b)
}

func (r InterruptMaskSetClearRegister) ParityErrorInterruptMask() bool {
	return bits.Bit(r, intParityError)
}

func (r InterruptMaskSetClearRegister) WithParityErrorInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intParityError, b)
}

func (r InterruptMaskSetClearRegister) FramingErrorInterruptMask() bool {
	return bits.Bit(r, intFramingError)
}

func (r InterruptMaskSetClearRegister) WithFramingErrorInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intFramingError, b)
}

func (r InterruptMaskSetClearRegister) ReceiveTimeoutInterruptMask() bool {
	return bits.Bit(r, intReceiveTimeout)
}

func (r InterruptMaskSetClearRegister) WithReceiveTimeoutInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intReceiveTimeout, b)
}

func (r InterruptMaskSetClearRegister) TransmitInterruptMask() bool {
	return bits.Bit(r, intTransmit)
}

func (r InterruptMaskSetClearRegister) WithTransmitInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intTransmit, b)
}

func (r InterruptMaskSetClearRegister) ReceiveInterruptMask() bool {
	return bits.Bit(r, intReceive)
}

func (r InterruptMaskSetClearRegister) WithReceiveInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intReceive, b)
}

func (r InterruptMaskSetClearRegister) DSRModemInterruptMask() bool {
	return bits.Bit(r, intDSRModem)
}

func (r InterruptMaskSetClearRegister) WithDSRModemInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intDSRModem, b)
}

func (r InterruptMaskSetClearRegister) DCDModemInterruptMask() bool {
	return bits.Bit(r, intDCDModem)
}

func (r InterruptMaskSetClearRegister) WithDCDModemInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intDCDModem, b)
}

func (r InterruptMaskSetClearRegister) CTSModemInterruptMask() bool {
	return bits.Bit(r, intCTSModem)
}

func (r InterruptMaskSetClearRegister) WithCTSModemInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intCTSModem, b)
}

func (r InterruptMaskSetClearRegister) RIModemInterruptMask() bool {
	return bits.Bit(r, intRIModem)
}

func (r InterruptMaskSetClearRegister) WithRIModemInterruptMask(b bool) InterruptMaskSetClearRegister {
	return bits.SetBit(r, intRIModem, b)
}

// RawInterruptStatusRegister is the UARTRIS register; the interrupt state
// before masking. Read-only.
type RawInterruptStatusRegister uint16

func (r RawInterruptStatusRegister) OverrunErrorInterruptStatus() bool {
	return bits.Bit(r, intOverrunError)
}

func (r RawInterruptStatusRegister) BreakErrorInterruptStatus() bool {
	return bits.Bit(r, intBreakError)
}

func (r RawInterruptStatusRegister) ParityErrorInterruptStatus() bool {
	return bits.Bit(r, intParityError)
}

func (r RawInterruptStatusRegister) FramingErrorInterruptStatus() bool {
	return bits.Bit(r, intFramingError)
}

func (r RawInterruptStatusRegister) ReceiveTimeoutInterruptStatus() bool {
	return bits.Bit(r, intReceiveTimeout)
}

func (r RawInterruptStatusRegister) TransmitInterruptStatus() bool {
	return bits.Bit(r, intTransmit)
}

func (r RawInterruptStatusRegister) ReceiveInterruptStatus() bool {
	return bits.Bit(r, intReceive)
}

func (r RawInterruptStatusRegister) DSRModemInterruptStatus() bool {
	return bits.Bit(r, intDSRModem)
}

func (r RawInterruptStatusRegister) DCDModemInterruptStatus() bool {
	return bits.Bit(r, intDCDModem)
}

func (r RawInterruptStatusRegister) CTSModemInterruptStatus() bool {
	return bits.Bit(r, intCTSModem)
}

func (r RawInterruptStatusRegister) RIModemInterruptStatus() bool {
	return bits.Bit(r, intRIModem)
}

// MaskedInterruptStatusRegister is the UARTMIS register; the interrupt state
// after masking. Read-only.
type MaskedInterruptStatusRegister uint16

func (r MaskedInterruptStatusRegister) OverrunErrorInterruptStatus() bool {
	return bits.Bit(r, intOverrunError)
}

func (r MaskedInterruptStatusRegister) BreakErrorInterruptStatus() bool {
	return bits.Bit(r, intBreakError)
}

func (r MaskedInterruptStatusRegister) ParityErrorInterruptStatus() bool {
	return bits.Bit(r, intParityError)
}

func (r MaskedInterruptStatusRegister) FramingErrorInterruptStatus() bool {
	return bits.Bit(r, intFramingError)
}

func (r MaskedInterruptStatusRegister) ReceiveTimeoutInterruptStatus() bool {
	return bits.Bit(r, intReceiveTimeout)
}

func (r MaskedInterruptStatusRegister) TransmitInterruptStatus() bool {
	return bits.Bit(r, intTransmit)
}

func (r MaskedInterruptStatusRegister) ReceiveInterruptStatus() bool {
	return bits.Bit(r, intReceive)
}

func (r MaskedInterruptStatusRegister) DSRModemInterruptStatus() bool {
	return bits.Bit(r, intDSRModem)
}

func (r MaskedInterruptStatusRegister) DCDModemInterruptStatus() bool {
	return bits.Bit(r, intDCDModem)
}

func (r MaskedInterruptStatusRegister) CTSModemInterruptStatus() bool {
	return bits.Bit(r, intCTSModem)
}

func (r MaskedInterruptStatusRegister) RIModemInterruptStatus() bool {
	return bits.Bit(r, intRIModem)
}

// InterruptClearRegister is the UARTICR register. Writing 1 to a bit clears
// the corresponding interrupt; writing 0 has no effect. Write-only.
type InterruptClearRegister uint16

// INTERRUPT_CLEAR_ALL clears all eleven interrupt sources at once.
const INTERRUPT_CLEAR_ALL InterruptClearRegister = 0x07FF

func (r InterruptClearRegister) WithOverrunErrorInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intOverrunError, b)
}

func (r InterruptClearRegister) WithBreakErrorInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intBreakError, b)
}

func (r InterruptClearRegister) WithParityErrorInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intParityError, b)
}

func (r InterruptClearRegister) WithFramingErrorInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intFramingError, b)
}

func (r InterruptClearRegister) WithReceiveTimeoutInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intReceiveTimeout, b)
}

func (r InterruptClearRegister) WithTransmitInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intTransmit, b)
}

func (r InterruptClearRegister) WithReceiveInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intReceive, b)
}

func (r InterruptClearRegister) WithDSRModemInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intDSRModem, b)
}

func (r InterruptClearRegister) WithDCDModemInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intDCDModem, b)
}

func (r InterruptClearRegister) WithCTSModemInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intCTSModem, b)
}

func (r InterruptClearRegister) WithRIModemInterruptClear(b bool) InterruptClearRegister {
	return bits.SetBit(r, intRIModem, b)
}

// DMAControlRegister is the UARTDMACR register; the DMA control register.
type DMAControlRegister uint16

// DMAOnError masks the DMA request outputs while a receive error interrupt
// is asserted.
func (r DMAControlRegister) DMAOnError() bool {
	return bits.Bit(r, 2)
}

func (r DMAControlRegister) WithDMAOnError(b bool) DMAControlRegister {
	return bits.SetBit(r, 2, b)
}

// TransmitDMAEnable enables DMA for the transmit FIFO.
func (r DMAControlRegister) TransmitDMAEnable() bool {
	return bits.Bit(r, 1)
}

func (r DMAControlRegister) WithTransmitDMAEnable(b bool) DMAControlRegister {
	return bits.SetBit(r, 1, b)
}

// ReceiveDMAEnable enables DMA for the receive FIFO.
func (r DMAControlRegister) ReceiveDMAEnable() bool {
	return bits.Bit(r, 0)
}

func (r DMAControlRegister) WithReceiveDMAEnable(b bool) DMAControlRegister {
	return bits.SetBit(r, 0, b)
}
