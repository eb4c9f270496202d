package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (r *Registers) testBit(value uint8, position uint8) {
	r.ApplyFlags(flagIf(!bits.Test(value, position)), Clear, Set, Unchanged)
}

// setBit sets the bit at the given position in the given value.
//
//	SET n, r
//
// Flags are not affected.
func setBit(value uint8, position uint8) uint8 {
	return bits.Set(value, position)
}

// resetBit clears the bit at the given position in the given value.
//
//	RES n, r
//
// Flags are not affected.
func resetBit(value uint8, position uint8) uint8 {
	return bits.Reset(value, position)
}
