package cpu

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (r *Registers) and(n uint8) {
	computed := r.Get8(A) & n
	r.Set8(A, computed)
	r.ApplyFlags(flagIf(computed == 0), Clear, Set, Clear)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (r *Registers) or(n uint8) {
	computed := r.Get8(A) | n
	r.Set8(A, computed)
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, Clear)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (r *Registers) xor(n uint8) {
	computed := r.Get8(A) ^ n
	r.Set8(A, computed)
	r.ApplyFlags(flagIf(computed == 0), Clear, Clear, Clear)
}

// compare compares n to the A Register by subtracting it, keeping
// the flags and discarding the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (r *Registers) compare(n uint8) {
	r.sub(r.Get8(A), n, false)
}

func (r *Registers) addA(n uint8) { r.Set8(A, r.add(r.Get8(A), n, false)) }
func (r *Registers) adcA(n uint8) { r.Set8(A, r.add(r.Get8(A), n, true)) }
func (r *Registers) subA(n uint8) { r.Set8(A, r.sub(r.Get8(A), n, false)) }
func (r *Registers) sbcA(n uint8) { r.Set8(A, r.sub(r.Get8(A), n, true)) }

// aluOperations are the accumulator operations selected by bits 5-3
// of opcodes 0x80 - 0xBF and of the d8 forms 0xC6 - 0xFE.
var aluOperations = [8]struct {
	name string
	fn   func(r *Registers, n uint8)
}{
	{"ADD A, ", (*Registers).addA},
	{"ADC A, ", (*Registers).adcA},
	{"SUB ", (*Registers).subA},
	{"SBC A, ", (*Registers).sbcA},
	{"AND ", (*Registers).and},
	{"XOR ", (*Registers).xor},
	{"OR ", (*Registers).or},
	{"CP ", (*Registers).compare},
}
