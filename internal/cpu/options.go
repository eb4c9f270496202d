package cpu

import "github.com/thelolagemann/gbcore/pkg/log"

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug logs every executed instruction.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithLogger sets the logger used for debug and error output.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithRegisters sets the initial register file.
func WithRegisters(r Registers) Opt {
	return func(c *CPU) {
		c.regs = r
		c.regs.r[F.index] &= 0xF0
	}
}

// WithTracer installs a Tracer.
func WithTracer(t Tracer) Opt {
	return func(c *CPU) {
		c.tracer = t
	}
}

// PostBoot sets the registers to the values the boot ROM leaves
// behind, so that execution can start at the cartridge entry point
// without one.
func PostBoot() Opt {
	return func(c *CPU) {
		c.regs.Set16(AF, 0x01B0)
		c.regs.Set16(BC, 0x0013)
		c.regs.Set16(DE, 0x00D8)
		c.regs.Set16(HL, 0x014D)
		c.regs.SP = 0xFFFE
		c.regs.PC = 0x0100
	}
}

// WithPC sets the address execution starts from.
func WithPC(pc uint16) Opt {
	return func(c *CPU) {
		c.regs.PC = pc
	}
}
