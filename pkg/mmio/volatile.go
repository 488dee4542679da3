package mmio

import (
	"sync/atomic"
	"unsafe"

	"github.com/mbalug7/go-pl011/pkg/bits"
)

// The loads and stores below are the only places this module touches memory
// that belongs to hardware. Each one is a single access of the register's
// exact width. The 32-bit accesses go through sync/atomic, which the compiler
// must not elide or reorder; the 8- and 16-bit accesses (no atomic equivalent
// before Go 1.23) are kept in noinline functions so they stay single,
// non-hoistable accesses across the call boundary.

//go:noinline
//go:nosplit
func load8(p *uint8) uint8 { return *p }

//go:noinline
//go:nosplit
func store8(p *uint8, v uint8) { *p = v }

//go:noinline
//go:nosplit
func load16(p *uint16) uint16 { return *p }

//go:noinline
//go:nosplit
func store16(p *uint16, v uint16) { *p = v }

//go:nosplit
func load32(p *uint32) uint32 { return atomic.LoadUint32(p) }

//go:nosplit
func store32(p *uint32, v uint32) { atomic.StoreUint32(p, v) }

// Read issues exactly one load of R's width at base+off.
func Read[R bits.Raw](b BaseAddress, off uintptr) R {
	p := unsafe.Pointer(b.BaseAddr() + off)
	var zero R
	switch unsafe.Sizeof(zero) {
	case 1:
		return R(load8((*uint8)(p)))
	case 2:
		return R(load16((*uint16)(p)))
	default:
		return R(load32((*uint32)(p)))
	}
}

// Write issues exactly one store of R's width at base+off.
func Write[R bits.Raw](b BaseAddress, off uintptr, v R) {
	p := unsafe.Pointer(b.BaseAddr() + off)
	switch unsafe.Sizeof(v) {
	case 1:
		store8((*uint8)(p), uint8(v))
	case 2:
		store16((*uint16)(p), uint16(v))
	default:
		store32((*uint32)(p), uint32(v))
	}
}

// Update performs exactly one Read followed by exactly one Write of the value
// f returns. There is no retry and no atomicity against concurrent accessors;
// it is a convenience for the single-writer case, not a synchronization
// primitive.
func Update[R bits.Raw](b BaseAddress, off uintptr, f func(R) R) {
	Write(b, off, f(Read[R](b, off)))
}
