package cpu

import "fmt"

// illegalOpcodes are the primary opcodes with no defined instruction.
// Executing any of them locks the CPU.
var illegalOpcodes = [...]uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

// disallowedOpcode creates an instruction that stops the CPU without
// consuming any operands.
func disallowedOpcode(opcode uint8) Instruction {
	return Instruction{
		name: fmt.Sprintf("disallowed opcode %02X", opcode),
		fn: func(r *Registers, b bus) Status {
			return StatusStop
		},
	}
}

// IsIllegal reports whether opcode has no defined instruction.
func IsIllegal(opcode uint8) bool {
	for _, o := range illegalOpcodes {
		if o == opcode {
			return true
		}
	}
	return false
}

func init() {
	generateLoadInstructions()
	generateArithmeticInstructions()
	generateRotateInstructions()
	generateJumpInstructions()
	generateCBInstructions()

	defineInstruction(0x00, "NOP", func(r *Registers, b bus) Status {
		return StatusContinue
	})
	defineInstruction(0x10, "STOP", func(r *Registers, b bus) Status {
		r.PC++ // STOP is followed by a padding byte
		return StatusStop
	})
	defineInstruction(0x76, "HALT", func(r *Registers, b bus) Status {
		return StatusHalt
	})
	defineInstruction(0xF3, "DI", func(r *Registers, b bus) Status {
		r.IME = false
		return StatusContinue
	})
	defineInstruction(0xFB, "EI", func(r *Registers, b bus) Status {
		r.IME = true
		return StatusContinue
	})
	defineInstruction(0xCB, "PREFIX CB", func(r *Registers, b bus) Status {
		return instructionSetCB[r.readOperand(b)].fn(r, b)
	})

	for _, opcode := range illegalOpcodes {
		instructionSet[opcode] = disallowedOpcode(opcode)
	}

	for i := range instructionSet {
		if instructionSet[i].fn == nil {
			panic(fmt.Sprintf("cpu: no instruction defined for opcode %02X", i))
		}
		if instructionSetCB[i].fn == nil {
			panic(fmt.Sprintf("cpu: no instruction defined for opcode CB %02X", i))
		}
	}
}
