package emulator

import "github.com/thelolagemann/gbcore/internal/cpu"

// Controller defines the interface contract for an emulator to
// implement in order for a Server to be able to control it.
// *cpu.CPU satisfies it.
type Controller interface {
	Pause()
	Resume()
	Paused() bool
	Step() cpu.Status
	Suspended() cpu.Status
	Snapshot() cpu.Registers
}

var _ Controller = (*cpu.CPU)(nil)
