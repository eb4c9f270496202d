package cpu

import (
	"github.com/thelolagemann/gbcore/internal/mmu"
)

type bus = mmu.Bus

// Handler executes one instruction against the register file and the
// bus it is given. Handlers hold no state of their own; any operands
// are fetched through r.PC.
type Handler func(r *Registers, b mmu.Bus) Status

// Instruction represents a single instruction of the CPU.
type Instruction struct {
	name string  // name of the instruction
	fn   Handler // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction, with immediate
// operands written as d8, d16, a8, a16 or r8.
func (i Instruction) Name() string {
	return i.name
}

// Execute runs the instruction.
func (i Instruction) Execute(r *Registers, b mmu.Bus) Status {
	return i.fn(r, b)
}

// instructionSet holds the 256 primary instructions.
var instructionSet [256]Instruction

// instructionSetCB holds the 256 instructions selected by the byte
// following a 0xCB prefix.
var instructionSetCB [256]Instruction

// Lookup returns the primary instruction for opcode.
func Lookup(opcode uint8) Instruction {
	return instructionSet[opcode]
}

// LookupCB returns the CB-prefixed instruction for opcode.
func LookupCB(opcode uint8) Instruction {
	return instructionSetCB[opcode]
}

// defineInstruction defines the instruction in the instructionSet,
// with the provided opcode.
func defineInstruction(opcode uint8, name string, fn Handler) {
	instructionSet[opcode] = Instruction{name: name, fn: fn}
}

// defineInstructionCB defines the instruction in the instructionSetCB,
// with the provided opcode.
func defineInstructionCB(opcode uint8, name string, fn Handler) {
	instructionSetCB[opcode] = Instruction{name: name, fn: fn}
}
