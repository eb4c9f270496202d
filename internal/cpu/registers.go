package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Register8 identifies one of the eight 8-bit registers. Its field
// is unexported, so the values declared below are the only ones that
// can exist; the zero value is B.
type Register8 struct {
	index uint8
}

// The 8-bit registers, in storage order. Consecutive pairs share
// storage with the 16-bit registers BC, DE, HL and AF.
var (
	B = Register8{0}
	C = Register8{1}
	D = Register8{2}
	E = Register8{3}
	H = Register8{4}
	L = Register8{5}
	A = Register8{6}
	F = Register8{7}
)

var register8Names = [8]string{"B", "C", "D", "E", "H", "L", "A", "F"}

func (r Register8) String() string {
	return register8Names[r.index]
}

// Register16 identifies one of the 16-bit registers. As with
// Register8, only the declared values can exist; the zero value is BC.
type Register16 struct {
	index uint8
}

var (
	BC = Register16{0}
	DE = Register16{1}
	HL = Register16{2}
	AF = Register16{3}
	SP = Register16{4}
	PC = Register16{5}
)

var register16Names = [6]string{"BC", "DE", "HL", "AF", "SP", "PC"}

func (r Register16) String() string {
	return register16Names[r.index]
}

// High returns the register holding the high byte of a register pair.
// SP and PC are not pairs and report false.
func (r Register16) High() (Register8, bool) {
	if r.index > AF.index {
		return Register8{}, false
	}
	return Register8{r.index * 2}, true
}

// Low returns the register holding the low byte of a register pair.
func (r Register16) Low() (Register8, bool) {
	if r.index > AF.index {
		return Register8{}, false
	}
	return Register8{r.index*2 + 1}, true
}

// Registers is the register file of the CPU. The 8-bit registers are
// held in a single array and the pairs BC, DE, HL and AF are views
// over consecutive bytes of it (high byte first), so a write through
// either view is immediately visible through the other.
type Registers struct {
	r [8]uint8

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next byte to fetch.
	PC uint16
	// IME is the interrupt master enable. It is only changed by
	// EI, DI and RETI.
	IME bool
}

// Get8 returns the value of an 8-bit register.
func (r *Registers) Get8(id Register8) uint8 {
	return r.r[id.index]
}

// Set8 sets the value of an 8-bit register. Bits 3-0 of F are
// never stored.
func (r *Registers) Set8(id Register8, value uint8) {
	if id == F {
		value &= 0xF0
	}
	r.r[id.index] = value
}

// Get16 returns the value of a 16-bit register.
func (r *Registers) Get16(id Register16) uint16 {
	switch id {
	case SP:
		return r.SP
	case PC:
		return r.PC
	}
	return uint16(r.r[id.index*2])<<8 | uint16(r.r[id.index*2+1])
}

// Set16 sets the value of a 16-bit register. When writing AF, bits
// 3-0 of F are dropped.
func (r *Registers) Set16(id Register16, value uint16) {
	switch id {
	case SP:
		r.SP = value
	case PC:
		r.PC = value
	case AF:
		r.r[A.index] = uint8(value >> 8)
		r.r[F.index] = uint8(value) & 0xF0
	default:
		r.r[id.index*2] = uint8(value >> 8)
		r.r[id.index*2+1] = uint8(value)
	}
}

// readOperand reads the byte at PC and advances PC.
func (r *Registers) readOperand(b bus) uint8 {
	value := b.Read8(r.PC)
	r.PC++
	return value
}

// readOperand16 reads a little-endian word as two operands, low
// byte first.
func (r *Registers) readOperand16(b bus) uint16 {
	low := r.readOperand(b)
	high := r.readOperand(b)
	return uint16(high)<<8 | uint16(low)
}

// RegistersSize is the number of bytes Registers.Save writes.
const RegistersSize = 8 + 2 + 2 + 1

var _ types.Stater = (*Registers)(nil)

// Load reads the registers from the state, in the order Save writes
// them.
func (r *Registers) Load(s *types.State) {
	for i := range r.r {
		r.r[i] = s.Read8()
	}
	r.r[F.index] &= 0xF0
	r.SP = s.Read16()
	r.PC = s.Read16()
	r.IME = s.ReadBool()
}

// Save writes the registers to the state.
func (r *Registers) Save(s *types.State) {
	for _, v := range r.r {
		s.Write8(v)
	}
	s.Write16(r.SP)
	s.Write16(r.PC)
	s.WriteBool(r.IME)
}

func (r Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X IME: %t",
		r.Get8(A), r.Get8(F), r.Get8(B), r.Get8(C), r.Get8(D), r.Get8(E), r.Get8(H), r.Get8(L), r.SP, r.PC, r.IME)
}
