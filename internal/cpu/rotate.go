package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (r *Registers) rotateLeftCarry(n uint8) uint8 {
	carry := n & types.Bit7
	computed := n<<1 | carry>>7
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, flagIf(carry != 0))
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (r *Registers) rotateRightCarry(n uint8) uint8 {
	carry := n & types.Bit0
	computed := n>>1 | carry<<7
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, flagIf(carry != 0))
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (r *Registers) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n << 1
	if r.Flag(FlagCarry) {
		computed |= types.Bit0
	}
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, flagIf(n&types.Bit7 != 0))
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied to
// the most significant bit, and the least significant bit is copied to the
// carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (r *Registers) rotateRightThroughCarry(n uint8) uint8 {
	computed := n >> 1
	if r.Flag(FlagCarry) {
		computed |= types.Bit7
	}
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, flagIf(n&types.Bit0 != 0))
	return computed
}

// rotateAccumulator runs one of the CB rotations on A and then
// clears Z, which the unprefixed forms never set.
func (r *Registers) rotateAccumulator(rotate func(*Registers, uint8) uint8) {
	r.Set8(A, rotate(r, r.Get8(A)))
	r.ApplyFlags(Clear, Unchanged, Unchanged, Unchanged)
}

// generateRotateInstructions generates the accumulator rotations.
//
//	0x07 RLCA
//	0x0F RRCA
//	0x17 RLA
//	0x1F RRA
func generateRotateInstructions() {
	rotations := []struct {
		opcode uint8
		name   string
		fn     func(*Registers, uint8) uint8
	}{
		{0x07, "RLCA", (*Registers).rotateLeftCarry},
		{0x0F, "RRCA", (*Registers).rotateRightCarry},
		{0x17, "RLA", (*Registers).rotateLeftThroughCarry},
		{0x1F, "RRA", (*Registers).rotateRightThroughCarry},
	}
	for _, rot := range rotations {
		fn := rot.fn
		defineInstruction(rot.opcode, rot.name, func(r *Registers, b bus) Status {
			r.rotateAccumulator(fn)
			return StatusContinue
		})
	}
}
