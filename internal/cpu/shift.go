package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// shiftLeftArithmetic shifts n left into carry. The least significant bit
// of n is set to 0.
//
//	SLA n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (r *Registers) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, flagIf(n&types.Bit7 != 0))
	return computed
}

// shiftRightArithmetic shifts n right into carry. The most significant
// bit does not change.
//
//	SRA n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (r *Registers) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, flagIf(n&types.Bit0 != 0))
	return computed
}

// shiftRightLogical shifts n right into carry. The most significant bit
// is set to 0.
//
//	SRL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (r *Registers) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, flagIf(n&types.Bit0 != 0))
	return computed
}

// swap swaps the upper and lower nibbles of n.
//
//	SWAP n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (r *Registers) swap(n uint8) uint8 {
	computed := n<<4 | n>>4
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, Clear)
	return computed
}
