package mmio

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mapping is a base address obtained at run time by mapping a region of a
// memory-like device into the process. The usual device is /dev/mem on a
// board whose peripheral was discovered rather than fixed at build time;
// a plain file works as well and serves as a hardware double in tests.
//
// The mapped address is stable until Close. Copying the Mapping pointer does
// not duplicate the mapping.
type Mapping struct {
	mem []byte
	off uintptr // offset of phys within the first mapped page
}

// MapRegion maps size bytes of device starting at the physical address phys.
// phys does not need to be page aligned; the mapping is extended downwards to
// the page boundary and BaseAddr compensates.
func MapRegion(device string, phys uintptr, size int) (*Mapping, error) {
	fd, err := unix.Open(device, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", device, err)
	}
	defer unix.Close(fd)

	pageOff := phys & uintptr(unix.Getpagesize()-1)
	mem, err := unix.Mmap(fd, int64(phys-pageOff), int(pageOff)+size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s at %#x: %w", device, phys, err)
	}
	return &Mapping{mem: mem, off: pageOff}, nil
}

func (m *Mapping) BaseAddr() uintptr {
	return uintptr(unsafe.Pointer(&m.mem[0])) + m.off
}

// Close unmaps the region. Register access through the mapping is invalid
// afterwards.
func (m *Mapping) Close() error {
	if err := unix.Munmap(m.mem); err != nil {
		return fmt.Errorf("failed to unmap region: %w", err)
	}
	m.mem = nil
	return nil
}
