package pl011

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalug7/go-pl011/pkg/mmio"
)

// regBlock is an in-process stand-in for the 0x4C-byte PL011 register block,
// addressed the same way real hardware would be.
type regBlock struct {
	words *[19]uint32
	base  mmio.Addr
}

// noinline keeps words heap-allocated: inlined, its address only escapes as a
// uintptr, so it would land on the goroutine stack and move under the fixed
// Addr when the stack grows.
//
//go:noinline
func newRegBlock(t *testing.T) *regBlock {
	t.Helper()
	words := new([19]uint32)
	return &regBlock{
		words: words,
		base:  mmio.Addr(uintptr(unsafe.Pointer(&words[0]))),
	}
}

func (b *regBlock) word(offset uintptr) uint32 {
	return b.words[offset/4]
}

func (b *regBlock) halfword(offset uintptr) uint16 {
	return *(*uint16)(unsafe.Pointer(uintptr(unsafe.Pointer(&b.words[0])) + offset))
}

func (b *regBlock) byteAt(offset uintptr) uint8 {
	return *(*uint8)(unsafe.Pointer(uintptr(unsafe.Pointer(&b.words[0])) + offset))
}

func (b *regBlock) setWord(offset uintptr, v uint32) {
	b.words[offset/4] = v
}

func TestDataRegisterReadWrite(t *testing.T) {
	b := newRegBlock(t)
	uart := New(b.base)

	uart.WriteDataRegister(DataRegister(0).WithData(0x5A))
	assert.Equal(t, uint32(0x5A), b.word(0x00))

	b.setWord(0x00, 1<<11|0x7F) // overrun + data
	r := uart.ReadDataRegister()
	assert.True(t, r.OverrunError())
	assert.Equal(t, uint8(0x7F), r.Data())

	runtime.KeepAlive(b.words)
}

func TestSharedOffsetReceiveStatusAndErrorClear(t *testing.T) {
	b := newRegBlock(t)
	uart := New(b.base)

	// Reading 0x04 yields receive status.
	b.setWord(0x04, 0b1111)
	rs := uart.ReadReceiveStatusRegister()
	assert.True(t, rs.OverrunError())
	assert.True(t, rs.BreakError())
	assert.True(t, rs.ParityError())
	assert.True(t, rs.FramingError())

	// Writing the same offset is the error-clear operation: value-less,
	// stores zero.
	uart.WriteErrorClearRegister()
	assert.Equal(t, uint32(0), b.word(0x04))

	runtime.KeepAlive(b.words)
}

func TestFlagRegisterRead(t *testing.T) {
	b := newRegBlock(t)
	uart := New(b.base)

	b.setWord(0x18, 1<<7|1<<4) // TXFE + RXFE, the reset flag state
	fr := uart.ReadFlagRegister()
	assert.True(t, fr.TransmitFIFOEmpty())
	assert.True(t, fr.ReceiveFIFOEmpty())
	assert.False(t, fr.UARTBusy())

	runtime.KeepAlive(b.words)
}

func TestNarrowRegistersUseDeclaredWidth(t *testing.T) {
	b := newRegBlock(t)
	uart := New(b.base)

	// 8-bit registers.
	uart.WriteIrDALowPowerRegister(IrDALowPowerRegister(0).WithLowPowerDivisor(0xAB))
	assert.Equal(t, IrDALowPowerRegister(0xAB), uart.ReadIrDALowPowerRegister())

	uart.WriteFractionalBaudRateDivisorRegister(FractionalBaudRateDivisorRegister(0).WithFractionalBaudRateDivisor(0x2A))
	assert.Equal(t, FractionalBaudRateDivisorRegister(0x2A), uart.ReadFractionalBaudRateDivisorRegister())

	// 16-bit registers.
	uart.WriteIntegerBaudRateDivisorRegister(IntegerBaudRateDivisorRegister(0).WithIntegerBaudRateDivisor(0xFFFF))
	assert.Equal(t, uint16(0xFFFF), b.halfword(0x24))

	uart.WriteLineControlRegister(LineControlRegister(0).WithWordLength(WORD_LENGTH_8_BITS).WithEnableFIFOs(true))
	assert.Equal(t, uint16(0x70), b.halfword(0x2C))

	runtime.KeepAlive(b.words)
}

func TestUpdatePreservesSiblingFields(t *testing.T) {
	b := newRegBlock(t)
	uart := New(b.base)

	uart.WriteLineControlRegister(LineControlRegister(0).
		WithWordLength(WORD_LENGTH_8_BITS).
		WithEnableFIFOs(true))

	uart.UpdateLineControlRegister(func(r LineControlRegister) LineControlRegister {
		return r.WithSendBreak(true)
	})

	lcr := uart.ReadLineControlRegister()
	assert.True(t, lcr.SendBreak())
	assert.Equal(t, WORD_LENGTH_8_BITS, lcr.WordLength())
	assert.True(t, lcr.EnableFIFOs())

	runtime.KeepAlive(b.words)
}

func TestInterruptRegisterOperations(t *testing.T) {
	b := newRegBlock(t)
	uart := New(b.base)

	uart.WriteInterruptMaskSetClearRegister(InterruptMaskSetClearRegister(0).
		WithReceiveInterruptMask(true).
		WithReceiveTimeoutInterruptMask(true))
	assert.Equal(t, uint16(1<<6|1<<4), b.halfword(0x38))

	b.setWord(0x3C, 1<<4) // raw receive interrupt pending
	assert.True(t, uart.ReadRawInterruptStatusRegister().ReceiveInterruptStatus())

	b.setWord(0x40, 1<<6) // masked receive timeout pending
	assert.True(t, uart.ReadMaskedInterruptStatusRegister().ReceiveTimeoutInterruptStatus())

	uart.WriteInterruptClearRegister(INTERRUPT_CLEAR_ALL)
	assert.Equal(t, uint16(0x07FF), b.halfword(0x44))

	runtime.KeepAlive(b.words)
}

func TestDMAControlReadModifyWrite(t *testing.T) {
	b := newRegBlock(t)
	uart := New(b.base)

	uart.WriteDMAControlRegister(DMAControlRegister(0).WithReceiveDMAEnable(true))
	uart.UpdateDMAControlRegister(func(r DMAControlRegister) DMAControlRegister {
		return r.WithTransmitDMAEnable(true)
	})

	r := uart.ReadDMAControlRegister()
	assert.True(t, r.ReceiveDMAEnable())
	assert.True(t, r.TransmitDMAEnable())

	runtime.KeepAlive(b.words)
}

func TestRuntimeAddressedBlock(t *testing.T) {
	// The same block type works with a runtime base address; here the
	// "hardware" is a second backing array picked at run time.
	blocks := []*regBlock{newRegBlock(t), newRegBlock(t)}
	for i, b := range blocks {
		uart := New(b.base)
		uart.WriteDataRegister(DataRegister(0).WithData(uint8(i + 1)))
	}
	require.Equal(t, uint32(1), blocks[0].word(0x00))
	require.Equal(t, uint32(2), blocks[1].word(0x00))

	for _, b := range blocks {
		runtime.KeepAlive(b.words)
	}
}
