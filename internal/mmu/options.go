package mmu

import (
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies an MMU instance.
type Opt func(m *MMU)

// WithLogger sets the logger used to report rejected writes.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WriteProtect marks the inclusive range start - end as read-only.
// Writes into the range are rejected and reported as failures.
func WriteProtect(start, end uint16) Opt {
	return func(m *MMU) {
		if end < start {
			start, end = end, start
		}
		m.readOnly = append(m.readOnly, addressRange{start, end})
	}
}

// WithROM copies rom to the start of the address space and protects
// the cartridge ROM area (0x0000 - 0x7FFF) from writes. Images larger
// than the address space are truncated.
func WithROM(rom []byte) Opt {
	return func(m *MMU) {
		if len(rom) > AddressSpace {
			rom = rom[:AddressSpace]
		}
		copy(m.raw[:], rom)
		m.readOnly = append(m.readOnly, addressRange{0x0000, 0x7FFF})
	}
}
