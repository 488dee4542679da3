// Package mmio provides the base-address abstraction and the volatile load,
// store and read-modify-write primitives every register block is built on.
// It never caches register contents and never issues an access the caller
// did not request.
package mmio

// BaseAddress yields the numeric start address of a register block. The
// returned address must be stable for the life of the holder. Holders are
// freely copyable; copying never duplicates ownership of the hardware behind
// the address, so callers that touch one block from more than one execution
// context must serialize those accesses themselves.
type BaseAddress interface {
	BaseAddr() uintptr
}

// Addr is a base address fixed by the target platform. Declare it as a typed
// constant next to the platform definition, e.g.
//
//	const UART0 mmio.Addr = 0x0900_0000
//
// so the address is resolved at compile time and the register block built on
// it carries no more state than the address itself.
type Addr uintptr

func (a Addr) BaseAddr() uintptr {
	return uintptr(a)
}
