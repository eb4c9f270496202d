package cpu

// The instruction set encodes 8-bit operands in a 3-bit field, in the
// order B, C, D, E, H, L, (HL), A. Index 6 addresses memory at HL.
const hlOperand = 6

var operandRegisters = [8]Register8{B, C, D, E, H, L, {}, A}

var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// loadOperand returns the value of the 8-bit operand at index.
func loadOperand(r *Registers, b bus, index uint8) uint8 {
	if index == hlOperand {
		return b.Read8(r.Get16(HL))
	}
	return r.Get8(operandRegisters[index])
}

// storeOperand writes value to the 8-bit operand at index. Only the
// (HL) operand can fail.
func storeOperand(r *Registers, b bus, index uint8, value uint8) Status {
	if index == hlOperand {
		return writeByte(b, r.Get16(HL), value)
	}
	r.Set8(operandRegisters[index], value)
	return StatusContinue
}

// Register pairs selected by bits 5-4 of loads, INC/DEC and ADD HL.
var pairOperands = [4]Register16{BC, DE, HL, SP}

// Register pairs selected by bits 5-4 of PUSH and POP.
var stackOperands = [4]Register16{BC, DE, HL, AF}

// condition is a branch condition selected by bits 4-3 of the
// conditional jumps, calls and returns.
type condition struct {
	name string
	test func(r *Registers) bool
}

var conditions = [4]condition{
	{"NZ", func(r *Registers) bool { return !r.Flag(FlagZero) }},
	{"Z", func(r *Registers) bool { return r.Flag(FlagZero) }},
	{"NC", func(r *Registers) bool { return !r.Flag(FlagCarry) }},
	{"C", func(r *Registers) bool { return r.Flag(FlagCarry) }},
}
