package emulator

import "github.com/thelolagemann/gbcore/internal/cpu"

// Status represents the status of the emulator's
// CPU. It can be one of the following:
//
//   - Running
//   - Paused
//   - Halted
//   - Stopped
//   - Errored
type Status int

const (
	// Running represents the status of the
	// CPU when it is running.
	Running Status = iota
	// Paused represents the status of the
	// CPU when the host has paused it.
	Paused
	// Halted represents the status of the
	// CPU when it has halted.
	Halted
	// Stopped represents the status of the
	// CPU after STOP or an illegal opcode.
	Stopped
	// Errored represents the status of the
	// CPU when it has encountered an unexpected
	// error.
	Errored
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Halted:
		return "Halted"
	case Stopped:
		return "Stopped"
	case Errored:
		return "Errored"
	default:
		return "Unknown"
	}
}

func (s Status) IsRunning() bool {
	return s == Running
}

func (s Status) IsHalted() bool {
	return s == Halted
}

func (s Status) IsErrored() bool {
	return s == Errored
}

// StatusOf derives the status of the controller. A non-nil err,
// the last error returned by the engine, takes precedence.
func StatusOf(c Controller, err error) Status {
	switch {
	case err != nil:
		return Errored
	case c.Paused():
		return Paused
	}
	switch c.Suspended() {
	case cpu.StatusHalt:
		return Halted
	case cpu.StatusStop:
		return Stopped
	}
	return Running
}
