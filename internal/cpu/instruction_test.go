package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/mmu"
)

var (
	regs   *Registers
	memBus *mmu.MMU
)

// testPC is where operands are placed for instructions under test.
// Handlers run as if their opcode had just been fetched from
// testPC-1.
const testPC = 0xC000

// reset creates a fresh register file and bus. 0x0000 - 0x7FFF is
// write protected so that write faults can be provoked.
func reset() {
	memBus = mmu.NewMMU(mmu.WriteProtect(0x0000, 0x7FFF))
	regs = &Registers{PC: testPC, SP: 0xFFFE}
}

// operands places values at PC.
func operands(values ...uint8) {
	for i, v := range values {
		memBus.Write8(regs.PC+uint16(i), v)
	}
}

func execute(instruction Instruction) Status {
	return instruction.Execute(regs, memBus)
}

func testInstruction(t *testing.T, name string, opcode uint8, f func(*testing.T, Instruction)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		reset()
		require.Equal(t, name, instructionSet[opcode].Name())
		f(t, instructionSet[opcode])
	})
}

func testInstructionCB(t *testing.T, name string, opcode uint8, f func(*testing.T, Instruction)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		reset()
		require.Equal(t, name, instructionSetCB[opcode].Name())
		f(t, instructionSetCB[opcode])
	})
}

func TestInstructionSet_Complete(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.NotNil(t, Lookup(uint8(i)).fn, "opcode %02X", i)
		assert.NotEmpty(t, Lookup(uint8(i)).Name(), "opcode %02X", i)
		assert.NotNil(t, LookupCB(uint8(i)).fn, "opcode CB %02X", i)
		assert.NotEmpty(t, LookupCB(uint8(i)).Name(), "opcode CB %02X", i)
	}
}

func TestInstructionSet_Names(t *testing.T) {
	tests := []struct {
		opcode uint8
		cb     bool
		name   string
	}{
		{0x01, false, "LD BC, d16"},
		{0x36, false, "LD (HL), d8"},
		{0x41, false, "LD B, C"},
		{0x86, false, "ADD A, (HL)"},
		{0x9F, false, "SBC A, A"},
		{0xB8, false, "CP B"},
		{0xC7, false, "RST 00H"},
		{0xF1, false, "POP AF"},
		{0xFF, false, "RST 38H"},
		{0x00, true, "RLC B"},
		{0x36, true, "SWAP (HL)"},
		{0x7F, true, "BIT 7, A"},
		{0x86, true, "RES 0, (HL)"},
		{0xFF, true, "SET 7, A"},
	}
	for _, tt := range tests {
		if tt.cb {
			assert.Equal(t, tt.name, LookupCB(tt.opcode).Name())
		} else {
			assert.Equal(t, tt.name, Lookup(tt.opcode).Name())
		}
	}
}

func TestInstructionSet_Illegal(t *testing.T) {
	for _, opcode := range illegalOpcodes {
		reset()
		assert.True(t, IsIllegal(opcode))
		assert.Equal(t, StatusStop, execute(Lookup(opcode)), "opcode %02X", opcode)
		assert.Equal(t, uint16(testPC), regs.PC, "opcode %02X consumed operands", opcode)
	}
	assert.False(t, IsIllegal(0x00))
	assert.False(t, IsIllegal(0xCB))
}

func TestInstruction_Control(t *testing.T) {
	// 0x00 - NOP
	testInstruction(t, "NOP", 0x00, func(t *testing.T, instruction Instruction) {
		before := *regs
		assert.Equal(t, StatusContinue, execute(instruction))
		assert.Equal(t, before, *regs)
	})
	// 0x10 - STOP
	testInstruction(t, "STOP", 0x10, func(t *testing.T, instruction Instruction) {
		assert.Equal(t, StatusStop, execute(instruction))
		assert.Equal(t, uint16(testPC+1), regs.PC)
	})
	// 0x76 - HALT
	testInstruction(t, "HALT", 0x76, func(t *testing.T, instruction Instruction) {
		assert.Equal(t, StatusHalt, execute(instruction))
		assert.Equal(t, uint16(testPC), regs.PC)
	})
	// 0xF3 - DI
	testInstruction(t, "DI", 0xF3, func(t *testing.T, instruction Instruction) {
		regs.IME = true
		execute(instruction)
		assert.False(t, regs.IME)
	})
	// 0xFB - EI
	testInstruction(t, "EI", 0xFB, func(t *testing.T, instruction Instruction) {
		execute(instruction)
		assert.True(t, regs.IME)
	})
	// 0xCB - PREFIX CB
	testInstruction(t, "PREFIX CB", 0xCB, func(t *testing.T, instruction Instruction) {
		operands(0x37) // SWAP A
		regs.Set8(A, 0x12)
		assert.Equal(t, StatusContinue, execute(instruction))
		assert.Equal(t, uint8(0x21), regs.Get8(A))
		assert.Equal(t, uint16(testPC+1), regs.PC)
	})
}
