// Package pl011 models the register surface of the ARM PrimeCell UART
// (PL011). It does not model the peripheral's behavior (FIFO state, timing,
// interrupt delivery), only the bit-exact shape of its control surface, with
// one volatile access per operation the caller requests.
package pl011

import "github.com/mbalug7/go-pl011/pkg/mmio"

// Register byte offsets from the peripheral base.
const (
	regUARTDR    = 0x00 // data (RW)
	regUARTRSR   = 0x04 // receive status (R) / error clear (W)
	regUARTFR    = 0x18 // flags (R)
	regUARTILPR  = 0x20 // IrDA low-power counter (RW)
	regUARTIBRD  = 0x24 // integer baud rate divisor (RW)
	regUARTFBRD  = 0x28 // fractional baud rate divisor (RW)
	regUARTLCR_H = 0x2C // line control (RW)
	regUARTCR    = 0x30 // control (RW)
	regUARTIFLS  = 0x34 // interrupt FIFO level select (RW)
	regUARTIMSC  = 0x38 // interrupt mask set/clear (RW)
	regUARTRIS   = 0x3C // raw interrupt status (R)
	regUARTMIS   = 0x40 // masked interrupt status (R)
	regUARTICR   = 0x44 // interrupt clear (W)
	regUARTDMACR = 0x48 // DMA control (RW)
)

// UART is the PL011 register block at a base address.
//
// The base address type is a parameter so the same block works with a fixed
// platform address (mmio.Addr constant, no state beyond the address) and a
// runtime-discovered one (*mmio.Mapping). The value is freely copyable; it
// owns no resource beyond the address, and it performs no locking; callers
// touching one peripheral from several execution contexts must serialize
// access themselves.
//
// Only the documented direction of each register is exposed; reading a
// write-only offset (or vice versa) is hardware-undefined and this layer
// does not attempt to detect it.
type UART[A mmio.BaseAddress] struct {
	base A
}

// New binds a register block to the peripheral at base.
func New[A mmio.BaseAddress](base A) UART[A] {
	return UART[A]{base: base}
}

// ReadDataRegister pops one received character (with its error bits) from
// the receive FIFO.
func (u UART[A]) ReadDataRegister() DataRegister {
	return mmio.Read[DataRegister](u.base, regUARTDR)
}

// WriteDataRegister pushes one character onto the transmit FIFO and starts
// transmission.
func (u UART[A]) WriteDataRegister(v DataRegister) {
	mmio.Write(u.base, regUARTDR, v)
}

func (u UART[A]) UpdateDataRegister(f func(DataRegister) DataRegister) {
	mmio.Update(u.base, regUARTDR, f)
}

// ReadReceiveStatusRegister reads the sticky receive error state. It shares
// offset 0x04 with the error clear operation; reading and writing that
// offset mean different things, so they are two distinct operations here.
func (u UART[A]) ReadReceiveStatusRegister() ReceiveStatusRegister {
	return mmio.Read[ReceiveStatusRegister](u.base, regUARTRSR)
}

// WriteErrorClearRegister clears the framing, parity, break and overrun
// errors. The written value is irrelevant to the hardware, so it takes no
// argument.
func (u UART[A]) WriteErrorClearRegister() {
	mmio.Write(u.base, regUARTRSR, uint32(0))
}

func (u UART[A]) ReadFlagRegister() FlagRegister {
	return mmio.Read[FlagRegister](u.base, regUARTFR)
}

func (u UART[A]) ReadIrDALowPowerRegister() IrDALowPowerRegister {
	return mmio.Read[IrDALowPowerRegister](u.base, regUARTILPR)
}

func (u UART[A]) WriteIrDALowPowerRegister(v IrDALowPowerRegister) {
	mmio.Write(u.base, regUARTILPR, v)
}

func (u UART[A]) UpdateIrDALowPowerRegister(f func(IrDALowPowerRegister) IrDALowPowerRegister) {
	mmio.Update(u.base, regUARTILPR, f)
}

func (u UART[A]) ReadIntegerBaudRateDivisorRegister() IntegerBaudRateDivisorRegister {
	return mmio.Read[IntegerBaudRateDivisorRegister](u.base, regUARTIBRD)
}

func (u UART[A]) WriteIntegerBaudRateDivisorRegister(v IntegerBaudRateDivisorRegister) {
	mmio.Write(u.base, regUARTIBRD, v)
}

func (u UART[A]) UpdateIntegerBaudRateDivisorRegister(f func(IntegerBaudRateDivisorRegister) IntegerBaudRateDivisorRegister) {
	mmio.Update(u.base, regUARTIBRD, f)
}

func (u UART[A]) ReadFractionalBaudRateDivisorRegister() FractionalBaudRateDivisorRegister {
	return mmio.Read[FractionalBaudRateDivisorRegister](u.base, regUARTFBRD)
}

func (u UART[A]) WriteFractionalBaudRateDivisorRegister(v FractionalBaudRateDivisorRegister) {
	mmio.Write(u.base, regUARTFBRD, v)
}

func (u UART[A]) UpdateFractionalBaudRateDivisorRegister(f func(FractionalBaudRateDivisorRegister) FractionalBaudRateDivisorRegister) {
	mmio.Update(u.base, regUARTFBRD, f)
}

func (u UART[A]) ReadLineControlRegister() LineControlRegister {
	return mmio.Read[LineControlRegister](u.base, regUARTLCR_H)
}

func (u UART[A]) WriteLineControlRegister(v LineControlRegister) {
	mmio.Write(u.base, regUARTLCR_H, v)
}

func (u UART[A]) UpdateLineControlRegister(f func(LineControlRegister) LineControlRegister) {
	mmio.Update(u.base, regUARTLCR_H, f)
}

func (u UART[A]) ReadControlRegister() ControlRegister {
	return mmio.Read[ControlRegister](u.base, regUARTCR)
}

func (u UART[A]) WriteControlRegister(v ControlRegister) {
	mmio.Write(u.base, regUARTCR, v)
}

func (u UART[A]) UpdateControlRegister(f func(ControlRegister) ControlRegister) {
	mmio.Update(u.base, regUARTCR, f)
}

func (u UART[A]) ReadInterruptFIFOLevelSelectRegister() InterruptFIFOLevelSelectRegister {
	return mmio.Read[InterruptFIFOLevelSelectRegister](u.base, regUARTIFLS)
}

func (u UART[A]) WriteInterruptFIFOLevelSelectRegister(v InterruptFIFOLevelSelectRegister) {
	mmio.Write(u.base, regUARTIFLS, v)
}

func (u UART[A]) UpdateInterruptFIFOLevelSelectRegister(f func(InterruptFIFOLevelSelectRegister) InterruptFIFOLevelSelectRegister) {
	mmio.Update(u.base, regUARTIFLS, f)
}

func (u UART[A]) ReadInterruptMaskSetClearRegister() InterruptMaskSetClearRegister {
	return mmio.Read[InterruptMaskSetClearRegister](u.base, regUARTIMSC)
}

func (u UART[A]) WriteInterruptMaskSetClearRegister(v InterruptMaskSetClearRegister) {
	mmio.Write(u.base, regUARTIMSC, v)
}

func (u UART[A]) UpdateInterruptMaskSetClearRegister(f func(InterruptMaskSetClearRegister) InterruptMaskSetClearRegister) {
	mmio.Update(u.base, regUARTIMSC, f)
}

func (u UART[A]) ReadRawInterruptStatusRegister() RawInterruptStatusRegister {
	return mmio.Read[RawInterruptStatusRegister](u.base, regUARTRIS)
}

func (u UART[A]) ReadMaskedInterruptStatusRegister() MaskedInterruptStatusRegister {
	return mmio.Read[MaskedInterruptStatusRegister](u.base, regUARTMIS)
}

func (u UART[A]) WriteInterruptClearRegister(v InterruptClearRegister) {
	mmio.Write(u.base, regUARTICR, v)
}

func (u UART[A]) ReadDMAControlRegister() DMAControlRegister {
	return mmio.Read[DMAControlRegister](u.base, regUARTDMACR)
}

func (u UART[A]) WriteDMAControlRegister(v DMAControlRegister) {
	mmio.Write(u.base, regUARTDMACR, v)
}

func (u UART[A]) UpdateDMAControlRegister(f func(DMAControlRegister) DMAControlRegister) {
	mmio.Update(u.base, regUARTDMACR, f)
}
