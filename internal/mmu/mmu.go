// Package mmu provides the memory bus for the CPU. The MMU is a flat
// 64kB address space; collaborators may intercept addresses in the
// memory-mapped I/O window (0xFF00 - 0xFFFF) and protect ranges
// against writes, but it is otherwise unaware of other components.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// AddressSpace is the number of addressable bytes on the bus.
const AddressSpace = 0x10000

// Bus is the interface that the CPU uses to read and write memory.
// 16-bit accesses are little-endian. Write operations report whether
// the write was accepted.
type Bus interface {
	Read8(address uint16) uint8
	Write8(address uint16, value uint8) bool
	Read16(address uint16) uint16
	Write16(address uint16, value uint16) bool
}

type addressRange struct {
	start, end uint16
}

func (r addressRange) contains(address uint16) bool {
	return address >= r.start && address <= r.end
}

// MMU is the memory management unit. It handles all memory reads
// and writes to the 64kB address space.
type MMU struct {
	// 0x0000 - 0xFFFF
	raw [AddressSpace]uint8

	// 0xFF00 - 0xFFFF - I/O registers reserved by collaborators
	io [0x100]*types.Address

	readOnly []addressRange

	Log log.Logger
}

var _ Bus = (*MMU)(nil)

// NewMMU returns a new MMU with all memory cleared.
func NewMMU(opts ...Opt) *MMU {
	m := &MMU{
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Read8 returns the byte at the given address.
func (m *MMU) Read8(address uint16) uint8 {
	if types.IsHardware(address) {
		if a := m.io[address-types.IOStart]; a != nil && a.Read != nil {
			return a.Read(address)
		}
	}
	return m.raw[address]
}

// Write8 writes the given value to the given address, returning
// false if the address is write protected.
func (m *MMU) Write8(address uint16, value uint8) bool {
	if m.isReadOnly(address) {
		m.Log.Debugf("rejected write of %02X to protected address %04X", value, address)
		return false
	}
	if types.IsHardware(address) {
		if a := m.io[address-types.IOStart]; a != nil && a.Write != nil {
			a.Write(address, value)
			return true
		}
	}
	m.raw[address] = value
	return true
}

// Read16 returns the little-endian word at the given address.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read8(address)) | uint16(m.Read8(address+1))<<8
}

// Write16 writes the low byte of value to address and the high byte
// to address+1. Both bytes are attempted; false is returned if either
// write was rejected.
func (m *MMU) Write16(address uint16, value uint16) bool {
	low := m.Write8(address, uint8(value))
	high := m.Write8(address+1, uint8(value>>8))
	return low && high
}

// Reserve routes reads and writes of the given I/O address to the
// collaborator described by a. Reserving an address outside of the
// I/O window is a wiring error.
func (m *MMU) Reserve(address uint16, a types.Address) {
	if !types.IsHardware(address) {
		panic(fmt.Sprintf("mmu: cannot reserve non I/O address %04X", address))
	}
	m.io[address-types.IOStart] = &a
}

// Release returns a reserved I/O address to plain storage.
func (m *MMU) Release(address uint16) {
	if types.IsHardware(address) {
		m.io[address-types.IOStart] = nil
	}
}

// LoadProgram copies data onto the bus starting at the given
// address, bypassing write protection. It is used by hosts to place
// programs and fixtures in memory.
func (m *MMU) LoadProgram(start uint16, data []byte) error {
	if int(start)+len(data) > AddressSpace {
		return fmt.Errorf("mmu: %d bytes at %04X exceeds the address space", len(data), start)
	}
	copy(m.raw[start:], data)
	return nil
}

func (m *MMU) isReadOnly(address uint16) bool {
	for _, r := range m.readOnly {
		if r.contains(address) {
			return true
		}
	}
	return false
}

var _ types.Stater = (*MMU)(nil)

// Load restores the contents of memory from the given state.
// Reserved addresses and protection are not part of the state.
func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

// Save writes the contents of memory to the given state.
func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
