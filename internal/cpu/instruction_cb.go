package cpu

import "strconv"

// generateCBInstructions generates the 256 instructions reached through
// the 0xCB prefix. The low 3 bits of the opcode select the operand in
// the order B, C, D, E, H, L, (HL), A.
//
//	0x00 - 0x3F  rotates, shifts and SWAP
//	0x40 - 0x7F  BIT n, r
//	0x80 - 0xBF  RES n, r
//	0xC0 - 0xFF  SET n, r
func generateCBInstructions() {
	shifts := [8]struct {
		name string
		fn   func(*Registers, uint8) uint8
	}{
		{"RLC", (*Registers).rotateLeftCarry},
		{"RRC", (*Registers).rotateRightCarry},
		{"RL", (*Registers).rotateLeftThroughCarry},
		{"RR", (*Registers).rotateRightThroughCarry},
		{"SLA", (*Registers).shiftLeftArithmetic},
		{"SRA", (*Registers).shiftRightArithmetic},
		{"SWAP", (*Registers).swap},
		{"SRL", (*Registers).shiftRightLogical},
	}

	for i := uint8(0); i < 8; i++ {
		index := i
		for op, shift := range shifts {
			fn := shift.fn
			defineInstructionCB(uint8(op)<<3|i, shift.name+" "+operandNames[i], func(r *Registers, b bus) Status {
				return storeOperand(r, b, index, fn(r, loadOperand(r, b, index)))
			})
		}

		for bit := uint8(0); bit < 8; bit++ {
			position := bit
			suffix := " " + strconv.Itoa(int(bit)) + ", " + operandNames[i]
			defineInstructionCB(0x40|bit<<3|i, "BIT"+suffix, func(r *Registers, b bus) Status {
				r.testBit(loadOperand(r, b, index), position)
				return StatusContinue
			})
			defineInstructionCB(0x80|bit<<3|i, "RES"+suffix, func(r *Registers, b bus) Status {
				return storeOperand(r, b, index, resetBit(loadOperand(r, b, index), position))
			})
			defineInstructionCB(0xC0|bit<<3|i, "SET"+suffix, func(r *Registers, b bus) Status {
				return storeOperand(r, b, index, setBit(loadOperand(r, b, index), position))
			})
		}
	}
}
