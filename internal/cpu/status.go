package cpu

import "errors"

// ErrWriteFault is reported when the bus rejects a write made by an
// instruction.
var ErrWriteFault = errors.New("cpu: memory write fault")

// Status is the result of executing a single instruction.
type Status uint8

const (
	// StatusContinue means the instruction completed normally.
	StatusContinue Status = iota
	// StatusStop is returned by STOP; the engine suspends until resumed.
	StatusStop
	// StatusHalt is returned by HALT; the engine suspends until resumed.
	StatusHalt
	// StatusWriteFault means a memory write was rejected by the bus.
	StatusWriteFault
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "Continue"
	case StatusStop:
		return "Stop"
	case StatusHalt:
		return "Halt"
	case StatusWriteFault:
		return "WriteFault"
	}
	return "Unknown"
}

// Suspends reports whether the status pauses execution until the
// host resumes the engine.
func (s Status) Suspends() bool {
	return s == StatusStop || s == StatusHalt
}

// Err returns ErrWriteFault for StatusWriteFault and nil otherwise.
// Stop and Halt are not errors.
func (s Status) Err() error {
	if s == StatusWriteFault {
		return ErrWriteFault
	}
	return nil
}

// writeByte writes value to address, translating a rejected write
// into StatusWriteFault.
func writeByte(b bus, address uint16, value uint8) Status {
	if !b.Write8(address, value) {
		return StatusWriteFault
	}
	return StatusContinue
}

// writeWord is writeByte for 16-bit values.
func writeWord(b bus, address uint16, value uint16) Status {
	if !b.Write16(address, value) {
		return StatusWriteFault
	}
	return StatusContinue
}
