package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Jump(t *testing.T) {
	// 0xC3 - JP a16
	testInstruction(t, "JP a16", 0xC3, func(t *testing.T, instruction Instruction) {
		operands(0x50, 0x01)
		execute(instruction)
		assert.Equal(t, uint16(0x0150), regs.PC)
	})
	// 0xE9 - JP HL
	testInstruction(t, "JP HL", 0xE9, func(t *testing.T, instruction Instruction) {
		regs.Set16(HL, 0x4000)
		execute(instruction)
		assert.Equal(t, uint16(0x4000), regs.PC)
	})
	// 0xCA - JP Z, a16 not taken
	testInstruction(t, "JP Z, a16", 0xCA, func(t *testing.T, instruction Instruction) {
		operands(0x50, 0x01)
		execute(instruction)
		assert.Equal(t, uint16(testPC+2), regs.PC)
	})
	// 0x18 - JR r8 backwards
	testInstruction(t, "JR r8", 0x18, func(t *testing.T, instruction Instruction) {
		operands(0xFE) // -2
		execute(instruction)
		assert.Equal(t, uint16(testPC-1), regs.PC)
	})
	// 0x20 - JR NZ, r8 with Z set
	testInstruction(t, "JR NZ, r8", 0x20, func(t *testing.T, instruction Instruction) {
		regs.SetFlag(FlagZero, true)
		operands(0x10)
		execute(instruction)
		assert.Equal(t, uint16(testPC+1), regs.PC)
	})
	// 0x20 - JR NZ, r8 with Z clear
	testInstruction(t, "JR NZ, r8", 0x20, func(t *testing.T, instruction Instruction) {
		operands(0x10)
		execute(instruction)
		assert.Equal(t, uint16(testPC+1+0x10), regs.PC)
	})
	// 0x38 - JR C, r8
	testInstruction(t, "JR C, r8", 0x38, func(t *testing.T, instruction Instruction) {
		regs.SetFlag(FlagCarry, true)
		operands(0x80) // -128
		execute(instruction)
		assert.Equal(t, uint16(testPC+1-128), regs.PC)
	})
}

func TestInstruction_Call(t *testing.T) {
	// 0xCD - CALL a16 followed by 0xC9 - RET
	t.Run("CALL a16 / RET", func(t *testing.T) {
		reset()
		operands(0x00, 0xD0)
		assert.Equal(t, StatusContinue, execute(Lookup(0xCD)))
		assert.Equal(t, uint16(0xD000), regs.PC)
		assert.Equal(t, uint16(0xFFFC), regs.SP)
		assert.Equal(t, uint16(testPC+2), memBus.Read16(0xFFFC))

		assert.Equal(t, StatusContinue, execute(Lookup(0xC9)))
		assert.Equal(t, uint16(testPC+2), regs.PC)
		assert.Equal(t, uint16(0xFFFE), regs.SP)
	})
	// 0xCD - CALL a16 with the stack in ROM
	testInstruction(t, "CALL a16", 0xCD, func(t *testing.T, instruction Instruction) {
		regs.SP = 0x0100
		operands(0x00, 0xD0)
		assert.Equal(t, StatusWriteFault, execute(instruction))
		assert.Equal(t, uint16(testPC+2), regs.PC)
		assert.Equal(t, uint16(0x00FE), regs.SP)
	})
	// 0xC4 - CALL NZ, a16 not taken
	testInstruction(t, "CALL NZ, a16", 0xC4, func(t *testing.T, instruction Instruction) {
		regs.SetFlag(FlagZero, true)
		operands(0x00, 0xD0)
		execute(instruction)
		assert.Equal(t, uint16(testPC+2), regs.PC)
		assert.Equal(t, uint16(0xFFFE), regs.SP)
	})
	// 0xDC - CALL C, a16 taken
	testInstruction(t, "CALL C, a16", 0xDC, func(t *testing.T, instruction Instruction) {
		regs.SetFlag(FlagCarry, true)
		operands(0x00, 0xD0)
		execute(instruction)
		assert.Equal(t, uint16(0xD000), regs.PC)
		assert.Equal(t, uint16(0xFFFC), regs.SP)
	})
	// 0xC0 - RET NZ not taken
	testInstruction(t, "RET NZ", 0xC0, func(t *testing.T, instruction Instruction) {
		regs.SetFlag(FlagZero, true)
		execute(instruction)
		assert.Equal(t, uint16(testPC), regs.PC)
		assert.Equal(t, uint16(0xFFFE), regs.SP)
	})
	// 0xD9 - RETI
	testInstruction(t, "RETI", 0xD9, func(t *testing.T, instruction Instruction) {
		regs.SP = 0xDFFE
		memBus.Write16(0xDFFE, 0x1234)
		execute(instruction)
		assert.Equal(t, uint16(0x1234), regs.PC)
		assert.Equal(t, uint16(0xE000), regs.SP)
		assert.True(t, regs.IME)
	})
	// 0xC7 - 0xFF RST n
	for i := uint8(0); i < 8; i++ {
		target := uint16(i) * 8
		testInstruction(t, Lookup(0xC7|i<<3).Name(), 0xC7|i<<3, func(t *testing.T, instruction Instruction) {
			execute(instruction)
			assert.Equal(t, target, regs.PC)
			assert.Equal(t, uint16(testPC), memBus.Read16(regs.SP))
		})
	}
}
