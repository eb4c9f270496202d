package cpu

import (
	"context"
	"fmt"
	"sync"

	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Mode is the execution mode of the CPU.
type Mode uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal Mode = iota
	// ModeHalt is entered after HALT, and left when the host resumes
	// the CPU.
	ModeHalt
	// ModeStop is entered after STOP or an illegal opcode, and left
	// when the host resumes the CPU.
	ModeStop
)

// Tracer is called after every instruction the CPU executes, with
// the address it was fetched from, its mnemonic and its result. It
// is called with the engine lock held, so it must not call back
// into the CPU.
type Tracer func(pc uint16, name string, status Status)

// CPU represents the Gameboy CPU. It is responsible for fetching,
// decoding and executing instructions against the bus it owns.
//
// A CPU is safe for concurrent use: a host may Run it on one goroutine
// and Pause, Resume or Snapshot it from others. Every instruction runs
// with the engine lock held, so none of those calls can observe an
// instruction half way through.
type CPU struct {
	regs Registers
	bus  mmu.Bus
	log  log.Logger

	// Debug logs every executed instruction at debug level.
	Debug  bool
	tracer Tracer

	mu     sync.Mutex
	cond   *sync.Cond
	mode   Mode
	paused bool
}

// NewCPU creates a new CPU that executes from the given bus.
func NewCPU(b mmu.Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: b,
		log: log.NewNullLogger(),
	}
	c.cond = sync.NewCond(&c.mu)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Step executes exactly one instruction and returns its status. If
// the CPU is suspended by an earlier STOP or HALT, nothing is fetched
// and the suspending status is returned again.
func (c *CPU) Step() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status, _, _ := c.step()
	return status
}

// step runs one instruction. c.mu must be held.
func (c *CPU) step() (Status, uint16, string) {
	if c.mode != ModeNormal {
		return c.suspended(), c.regs.PC, ""
	}

	pc := c.regs.PC
	var name string
	if c.Debug || c.tracer != nil {
		name, _ = Disassemble(c.bus, pc)
	}

	opcode := c.regs.readOperand(c.bus)
	status := instructionSet[opcode].fn(&c.regs, c.bus)

	if c.Debug {
		c.log.WithFields(log.Fields{"pc": fmt.Sprintf("0x%04X", pc), "opcode": fmt.Sprintf("0x%02X", opcode)}).Debugf("%s", name)
	}

	switch status {
	case StatusHalt:
		c.mode = ModeHalt
		c.log.Debugf("halted at 0x%04X", pc)
	case StatusStop:
		c.mode = ModeStop
		if IsIllegal(opcode) {
			c.log.Errorf("illegal opcode 0x%02X at 0x%04X, CPU locked", opcode, pc)
		} else {
			c.log.Debugf("stopped at 0x%04X", pc)
		}
	case StatusWriteFault:
		c.log.WithFields(log.Fields{"pc": fmt.Sprintf("0x%04X", pc), "opcode": fmt.Sprintf("0x%02X", opcode)}).Errorf("memory write rejected")
	}

	if c.tracer != nil {
		c.tracer(pc, name, status)
	}
	if name == "" {
		name = instructionSet[opcode].name
	}

	return status, pc, name
}

// Run drives the fetch-decode-execute loop until ctx is done or an
// instruction faults. While the CPU is paused or suspended by STOP or
// HALT, Run blocks until Resume is called.
//
// A rejected memory write ends Run with an error wrapping
// ErrWriteFault; the registers keep the state the faulting
// instruction left them in, and Run may be called again.
func (c *CPU) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.cond.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	for {
		c.mu.Lock()
		for (c.paused || c.mode != ModeNormal) && ctx.Err() == nil {
			c.cond.Wait()
		}
		if err := ctx.Err(); err != nil {
			c.mu.Unlock()
			return err
		}
		status, pc, name := c.step()
		c.mu.Unlock()

		if err := status.Err(); err != nil {
			return fmt.Errorf("cpu: %s at 0x%04X: %w", name, pc, err)
		}
	}
}

// Pause stops Run at the next instruction boundary.
func (c *CPU) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		c.paused = true
		c.log.Infof("paused at 0x%04X", c.regs.PC)
	}
}

// Resume continues a paused CPU, and leaves any STOP or HALT
// suspension. Calling Resume on a running CPU has no effect.
func (c *CPU) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused || c.mode != ModeNormal {
		c.log.Infof("resumed at 0x%04X", c.regs.PC)
	}
	c.paused = false
	c.mode = ModeNormal
	c.cond.Broadcast()
}

// Paused returns true if the CPU has been paused by the host.
func (c *CPU) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Suspended returns StatusHalt or StatusStop while the CPU waits for
// the host after HALT or STOP, and StatusContinue otherwise.
func (c *CPU) Suspended() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suspended()
}

func (c *CPU) suspended() Status {
	switch c.mode {
	case ModeHalt:
		return StatusHalt
	case ModeStop:
		return StatusStop
	}
	return StatusContinue
}

// Snapshot returns a copy of the registers, taken between
// instructions.
func (c *CPU) Snapshot() Registers {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs
}

var _ types.Stater = (*CPU)(nil)

// Load restores the registers and suspension state.
func (c *CPU) Load(s *types.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.load(s)
	c.cond.Broadcast()
}

// Save writes the registers and suspension state.
func (c *CPU) Save(s *types.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.save(s)
}

// SaveWith writes the CPU state followed by the state of each of
// staters, all taken between the same two instructions. Use it for
// the bus and any collaborator the running CPU writes to.
func (c *CPU) SaveWith(s *types.State, staters ...types.Stater) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.save(s)
	for _, st := range staters {
		st.Save(s)
	}
}

// LoadWith is the counterpart of SaveWith. If s holds fewer bytes
// than the CPU and staters save, it returns types.ErrShortState and
// nothing is loaded.
func (c *CPU) LoadWith(s *types.State, staters ...types.Stater) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	need := StateSize
	for _, st := range staters {
		scratch := types.NewState()
		st.Save(scratch)
		need += len(scratch.Bytes())
	}
	if err := s.Validate(need); err != nil {
		return err
	}

	c.load(s)
	for _, st := range staters {
		st.Load(s)
	}
	c.cond.Broadcast()
	return nil
}

func (c *CPU) load(s *types.State) {
	c.regs.Load(s)
	c.mode = Mode(s.Read8())
	if c.mode > ModeStop {
		c.mode = ModeStop
	}
}

func (c *CPU) save(s *types.State) {
	c.regs.Save(s)
	s.Write8(uint8(c.mode))
}

// StateSize is the number of bytes Save writes.
const StateSize = RegistersSize + 1
