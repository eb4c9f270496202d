package cpu

// incrementNN increments the given 16-bit register by 1.
//
//	INC nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Not affected.
//	H - Not affected.
//	C - Not affected.
func (r *Registers) incrementNN(pair Register16) {
	r.Set16(pair, r.Get16(pair)+1)
}

// decrementNN decrements the given 16-bit register by 1.
//
//	DEC nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Not affected.
//	H - Not affected.
//	C - Not affected.
func (r *Registers) decrementNN(pair Register16) {
	r.Set16(pair, r.Get16(pair)-1)
}

// addHLRR adds the given 16-bit register to HL.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (r *Registers) addHLRR(pair Register16) {
	r.Set16(HL, r.addUint16(r.Get16(HL), r.Get16(pair)))
}

// generateArithmeticInstructions generates the 8-bit and 16-bit
// arithmetic instructions:
//
//	0x04 INC B  ...  0x3D DEC A   (INC/DEC r, (HL))
//	0x03 INC BC ...  0x3B DEC SP  (INC/DEC rr)
//	0x09 ADD HL, BC ... 0x39 ADD HL, SP
//	0x80 ADD A, B ... 0xBF CP A
//	0xC6 ADD A, d8 ... 0xFE CP d8
func generateArithmeticInstructions() {
	for i := uint8(0); i < 8; i++ {
		index := i
		defineInstruction(0x04|i<<3, "INC "+operandNames[i], func(r *Registers, b bus) Status {
			return storeOperand(r, b, index, r.increment(loadOperand(r, b, index)))
		})
		defineInstruction(0x05|i<<3, "DEC "+operandNames[i], func(r *Registers, b bus) Status {
			return storeOperand(r, b, index, r.decrement(loadOperand(r, b, index)))
		})
	}

	for i, pair := range pairOperands {
		pair := pair
		opcode := uint8(i) << 4
		defineInstruction(0x03|opcode, "INC "+pair.String(), func(r *Registers, b bus) Status {
			r.incrementNN(pair)
			return StatusContinue
		})
		defineInstruction(0x0B|opcode, "DEC "+pair.String(), func(r *Registers, b bus) Status {
			r.decrementNN(pair)
			return StatusContinue
		})
		defineInstruction(0x09|opcode, "ADD HL, "+pair.String(), func(r *Registers, b bus) Status {
			r.addHLRR(pair)
			return StatusContinue
		})
	}

	for op, alu := range aluOperations {
		fn := alu.fn
		for i := uint8(0); i < 8; i++ {
			index := i
			defineInstruction(0x80|uint8(op)<<3|i, alu.name+operandNames[i], func(r *Registers, b bus) Status {
				fn(r, loadOperand(r, b, index))
				return StatusContinue
			})
		}
		defineInstruction(0xC6|uint8(op)<<3, alu.name+"d8", func(r *Registers, b bus) Status {
			fn(r, r.readOperand(b))
			return StatusContinue
		})
	}

	defineInstruction(0xE8, "ADD SP, r8", func(r *Registers, b bus) Status {
		r.SP = r.addSPSigned(r.readOperand(b))
		return StatusContinue
	})
	defineInstruction(0x27, "DAA", func(r *Registers, b bus) Status {
		r.daa()
		return StatusContinue
	})
	defineInstruction(0x2F, "CPL", func(r *Registers, b bus) Status {
		r.Set8(A, ^r.Get8(A))
		r.ApplyFlags(Unchanged, Set, Set, Unchanged)
		return StatusContinue
	})
	defineInstruction(0x37, "SCF", func(r *Registers, b bus) Status {
		r.ApplyFlags(Unchanged, Clear, Clear, Set)
		return StatusContinue
	})
	defineInstruction(0x3F, "CCF", func(r *Registers, b bus) Status {
		r.ApplyFlags(Unchanged, Clear, Clear, Toggle)
		return StatusContinue
	})
}

