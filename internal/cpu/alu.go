package cpu

// add is a helper function for adding two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (r *Registers) add(a, b uint8, shouldCarry bool) uint8 {
	var carry uint16
	if shouldCarry && r.Flag(FlagCarry) {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	sumHalf := uint16(a&0xF) + uint16(b&0xF) + carry
	r.ApplyFlags(flagIf(uint8(sum) == 0), Clear, flagIf(sumHalf > 0xF), flagIf(sum > 0xFF))
	return uint8(sum)
}

// sub is a helper function for subtracting two bytes and setting
// the flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (r *Registers) sub(a, b uint8, shouldCarry bool) uint8 {
	var carry int16
	if shouldCarry && r.Flag(FlagCarry) {
		carry = 1
	}
	diff := int16(a) - int16(b) - carry
	diffHalf := int16(a&0xF) - int16(b&0xF) - carry
	r.ApplyFlags(flagIf(uint8(diff) == 0), Set, flagIf(diffHalf < 0), flagIf(diff < 0))
	return uint8(diff)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (r *Registers) increment(n uint8) uint8 {
	incremented := n + 1
	r.ApplyFlags(flagIf(incremented == 0), Clear, flagIf(n&0xF == 0xF), Unchanged)
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (r *Registers) decrement(n uint8) uint8 {
	decremented := n - 1
	r.ApplyFlags(flagIf(decremented == 0), Set, flagIf(n&0xF == 0x0), Unchanged)
	return decremented
}

// addUint16 is a helper function for adding two uint16 values together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (r *Registers) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	r.ApplyFlags(Unchanged, Clear, flagIf((a&0xFFF)+(b&0xFFF) > 0xFFF), flagIf(sum > 0xFFFF))
	return uint16(sum)
}

// addSPSigned adds the signed operand to SP and returns the result
// without storing it. The carries are those of an unsigned 8-bit
// addition of SP's low byte and the operand.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (r *Registers) addSPSigned(value uint8) uint16 {
	result := uint16(int32(r.SP) + int32(int8(value)))
	halfCarry := (r.SP&0xF)+uint16(value&0xF) > 0xF
	carry := (r.SP&0xFF)+uint16(value) > 0xFF
	r.ApplyFlags(Clear, Clear, flagIf(halfCarry), flagIf(carry))
	return result
}

// daa adjusts A so that the result of the previous addition or
// subtraction is valid packed BCD. N selects the direction and the
// previous H and C select which digits need correcting.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if a high correction was applied after an addition,
//	    otherwise not affected.
func (r *Registers) daa() {
	a := r.Get8(A)
	carry := r.Flag(FlagCarry)
	var correction uint8

	if !r.Flag(FlagSubtract) {
		if r.Flag(FlagHalfCarry) || a&0xF > 0x9 {
			correction |= 0x06
		}
		if carry || a > 0x99 {
			correction |= 0x60
			carry = true
		}
		a += correction
	} else {
		if r.Flag(FlagHalfCarry) {
			correction |= 0x06
		}
		if carry {
			correction |= 0x60
		}
		a -= correction
	}

	r.Set8(A, a)
	r.ApplyFlags(flagIf(a == 0), Unchanged, Clear, flagIf(carry))
}
