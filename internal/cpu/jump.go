package cpu

import "fmt"

// jumpAbsolute sets PC to the given address.
//
//	JP nn
//	nn = 16-bit immediate value
func (r *Registers) jumpAbsolute(address uint16) {
	r.PC = address
}

// jumpRelative adds the signed displacement to PC. The displacement is
// always added, never assigned.
//
//	JR n
//	n = 8-bit signed immediate value
func (r *Registers) jumpRelative(displacement uint8) {
	r.PC = uint16(int32(r.PC) + int32(int8(displacement)))
}

// call pushes the address of the next instruction onto the stack and
// jumps to the given address. PC is only retargeted once the push
// succeeded.
//
//	CALL nn
//	nn = 16-bit immediate value
func (r *Registers) call(b bus, address uint16) Status {
	if status := r.push(b, r.PC); status != StatusContinue {
		return status
	}
	r.PC = address
	return StatusContinue
}

// ret pops two bytes from the stack and jumps to that address.
//
//	RET
func (r *Registers) ret(b bus) {
	r.PC = r.pop(b)
}

// generateJumpInstructions generates the jumps, calls, returns and
// restarts. Conditional forms always consume their operands, and only
// branch when the condition holds.
//
//	0xC3 JP a16       0xC2 JP NZ, a16 ... 0xDA JP C, a16
//	0x18 JR r8        0x20 JR NZ, r8  ... 0x38 JR C, r8
//	0xCD CALL a16     0xC4 CALL NZ, a16 ... 0xDC CALL C, a16
//	0xC9 RET          0xC0 RET NZ ... 0xD8 RET C
//	0xC7 RST 00H ... 0xFF RST 38H
func generateJumpInstructions() {
	defineInstruction(0xC3, "JP a16", func(r *Registers, b bus) Status {
		r.jumpAbsolute(r.readOperand16(b))
		return StatusContinue
	})
	defineInstruction(0xE9, "JP HL", func(r *Registers, b bus) Status {
		r.jumpAbsolute(r.Get16(HL))
		return StatusContinue
	})
	defineInstruction(0x18, "JR r8", func(r *Registers, b bus) Status {
		r.jumpRelative(r.readOperand(b))
		return StatusContinue
	})
	defineInstruction(0xCD, "CALL a16", func(r *Registers, b bus) Status {
		return r.call(b, r.readOperand16(b))
	})
	defineInstruction(0xC9, "RET", func(r *Registers, b bus) Status {
		r.ret(b)
		return StatusContinue
	})
	defineInstruction(0xD9, "RETI", func(r *Registers, b bus) Status {
		r.ret(b)
		r.IME = true
		return StatusContinue
	})

	for i, cond := range conditions {
		test := cond.test
		opcode := uint8(i) << 3
		defineInstruction(0xC2|opcode, "JP "+cond.name+", a16", func(r *Registers, b bus) Status {
			address := r.readOperand16(b)
			if test(r) {
				r.jumpAbsolute(address)
			}
			return StatusContinue
		})
		defineInstruction(0x20|opcode, "JR "+cond.name+", r8", func(r *Registers, b bus) Status {
			displacement := r.readOperand(b)
			if test(r) {
				r.jumpRelative(displacement)
			}
			return StatusContinue
		})
		defineInstruction(0xC4|opcode, "CALL "+cond.name+", a16", func(r *Registers, b bus) Status {
			address := r.readOperand16(b)
			if test(r) {
				return r.call(b, address)
			}
			return StatusContinue
		})
		defineInstruction(0xC0|opcode, "RET "+cond.name, func(r *Registers, b bus) Status {
			if test(r) {
				r.ret(b)
			}
			return StatusContinue
		})
	}

	for i := uint8(0); i < 8; i++ {
		target := uint16(i) * 8
		defineInstruction(0xC7|i<<3, fmt.Sprintf("RST %02XH", target), func(r *Registers, b bus) Status {
			return r.call(b, target)
		})
	}
}
