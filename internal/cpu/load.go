package cpu

// loadRegisterToMemory writes the value of the given register to the
// given memory address.
//
//	LD (nn), n
//	nn = BC, DE, HL, HL+, HL-, 0xFF00 + C, 0xFF00 + a8, a16
//	n = A, B, C, D, E, H, L
func (r *Registers) loadRegisterToMemory(b bus, reg Register8, address uint16) Status {
	return writeByte(b, address, r.Get8(reg))
}

// loadMemoryToRegister loads the value at the given memory address into the
// given register.
//
//	LD n, (nn)
//	n = A, B, C, D, E, H, L
//	nn = BC, DE, HL, HL+, HL-, 0xFF00 + C, 0xFF00 + a8, a16
func (r *Registers) loadMemoryToRegister(b bus, reg Register8, address uint16) {
	r.Set8(reg, b.Read8(address))
}

// postIncrementHL returns HL and then increments it.
func (r *Registers) postIncrementHL() uint16 {
	hl := r.Get16(HL)
	r.Set16(HL, hl+1)
	return hl
}

// postDecrementHL returns HL and then decrements it.
func (r *Registers) postDecrementHL() uint16 {
	hl := r.Get16(HL)
	r.Set16(HL, hl-1)
	return hl
}

// push decrements SP by 2 and writes value to the new top of the
// stack.
func (r *Registers) push(b bus, value uint16) Status {
	r.SP -= 2
	return writeWord(b, r.SP, value)
}

// pop reads the value at the top of the stack and increments SP by 2.
func (r *Registers) pop(b bus) uint16 {
	value := b.Read16(r.SP)
	r.SP += 2
	return value
}

// generateLoadInstructions generates the 8-bit and 16-bit load
// instructions.
//
// The register to register instructions are generated in the
// following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// with 0x76 left for HALT.
func generateLoadInstructions() {
	for to := uint8(0); to < 8; to++ {
		for from := uint8(0); from < 8; from++ {
			if to == hlOperand && from == hlOperand {
				continue // HALT
			}
			dst, src := to, from
			defineInstruction(0x40|to<<3|from, "LD "+operandNames[to]+", "+operandNames[from], func(r *Registers, b bus) Status {
				return storeOperand(r, b, dst, loadOperand(r, b, src))
			})
		}

		// LD n, d8
		dst := to
		defineInstruction(0x06|to<<3, "LD "+operandNames[to]+", d8", func(r *Registers, b bus) Status {
			return storeOperand(r, b, dst, r.readOperand(b))
		})
	}

	// LD nn, d16
	for i, pair := range pairOperands {
		pair := pair
		defineInstruction(0x01|uint8(i)<<4, "LD "+pair.String()+", d16", func(r *Registers, b bus) Status {
			r.Set16(pair, r.readOperand16(b))
			return StatusContinue
		})
	}

	// PUSH nn, POP nn
	for i, pair := range stackOperands {
		pair := pair
		defineInstruction(0xC5|uint8(i)<<4, "PUSH "+pair.String(), func(r *Registers, b bus) Status {
			return r.push(b, r.Get16(pair))
		})
		defineInstruction(0xC1|uint8(i)<<4, "POP "+pair.String(), func(r *Registers, b bus) Status {
			r.Set16(pair, r.pop(b)) // the low nibble of F is dropped by Set16
			return StatusContinue
		})
	}

	defineInstruction(0x02, "LD (BC), A", func(r *Registers, b bus) Status {
		return r.loadRegisterToMemory(b, A, r.Get16(BC))
	})
	defineInstruction(0x12, "LD (DE), A", func(r *Registers, b bus) Status {
		return r.loadRegisterToMemory(b, A, r.Get16(DE))
	})
	defineInstruction(0x22, "LD (HL+), A", func(r *Registers, b bus) Status {
		return r.loadRegisterToMemory(b, A, r.postIncrementHL())
	})
	defineInstruction(0x32, "LD (HL-), A", func(r *Registers, b bus) Status {
		return r.loadRegisterToMemory(b, A, r.postDecrementHL())
	})
	defineInstruction(0x0A, "LD A, (BC)", func(r *Registers, b bus) Status {
		r.loadMemoryToRegister(b, A, r.Get16(BC))
		return StatusContinue
	})
	defineInstruction(0x1A, "LD A, (DE)", func(r *Registers, b bus) Status {
		r.loadMemoryToRegister(b, A, r.Get16(DE))
		return StatusContinue
	})
	defineInstruction(0x2A, "LD A, (HL+)", func(r *Registers, b bus) Status {
		r.loadMemoryToRegister(b, A, r.postIncrementHL())
		return StatusContinue
	})
	defineInstruction(0x3A, "LD A, (HL-)", func(r *Registers, b bus) Status {
		r.loadMemoryToRegister(b, A, r.postDecrementHL())
		return StatusContinue
	})
	defineInstruction(0x08, "LD (a16), SP", func(r *Registers, b bus) Status {
		return writeWord(b, r.readOperand16(b), r.SP)
	})
	defineInstruction(0xE0, "LDH (a8), A", func(r *Registers, b bus) Status {
		return r.loadRegisterToMemory(b, A, 0xFF00+uint16(r.readOperand(b)))
	})
	defineInstruction(0xF0, "LDH A, (a8)", func(r *Registers, b bus) Status {
		r.loadMemoryToRegister(b, A, 0xFF00+uint16(r.readOperand(b)))
		return StatusContinue
	})
	defineInstruction(0xE2, "LD (C), A", func(r *Registers, b bus) Status {
		return r.loadRegisterToMemory(b, A, 0xFF00+uint16(r.Get8(C)))
	})
	defineInstruction(0xF2, "LD A, (C)", func(r *Registers, b bus) Status {
		r.loadMemoryToRegister(b, A, 0xFF00+uint16(r.Get8(C)))
		return StatusContinue
	})
	defineInstruction(0xEA, "LD (a16), A", func(r *Registers, b bus) Status {
		return r.loadRegisterToMemory(b, A, r.readOperand16(b))
	})
	defineInstruction(0xFA, "LD A, (a16)", func(r *Registers, b bus) Status {
		r.loadMemoryToRegister(b, A, r.readOperand16(b))
		return StatusContinue
	})
	defineInstruction(0xF8, "LD HL, SP+r8", func(r *Registers, b bus) Status {
		r.Set16(HL, r.addSPSigned(r.readOperand(b)))
		return StatusContinue
	})
	defineInstruction(0xF9, "LD SP, HL", func(r *Registers, b bus) Status {
		r.SP = r.Get16(HL)
		return StatusContinue
	})
}
