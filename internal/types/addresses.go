package types

// Address represents a memory address on the bus that has been
// reserved by a collaborator, so that reads and writes to it are
// routed to that collaborator instead of plain storage.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// HardwareAddress represents the address of a memory-mapped I/O
// register. The I/O registers are mapped to memory addresses
// 0xFF00 - 0xFFFF.
type HardwareAddress = uint16

const (
	// IOStart is the first address of the memory-mapped I/O window.
	IOStart HardwareAddress = 0xFF00
	// P1 is the address of the joypad register.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the serial transfer data register.
	SB HardwareAddress = 0xFF01
	// SC is the address of the serial transfer control register.
	SC HardwareAddress = 0xFF02
	// IF is the address of the interrupt flag register.
	IF HardwareAddress = 0xFF0F
	// HRAMStart is the first address of high RAM.
	HRAMStart HardwareAddress = 0xFF80
	// IE is the address of the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)

// IsHardware reports whether the address lies in the
// memory-mapped I/O window.
func IsHardware(address uint16) bool {
	return address >= IOStart
}
