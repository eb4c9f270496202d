package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_RotateAccumulator(t *testing.T) {
	// 0x07 - RLCA
	testInstruction(t, "RLCA", 0x07, func(t *testing.T, instruction Instruction) {
		regs.Set8(A, 0x85)
		execute(instruction)
		assert.Equal(t, uint8(0x0B), regs.Get8(A))
		assertFlags(t, false, false, false, true)
	})
	// 0x0F - RRCA, Z is cleared even for a zero result
	testInstruction(t, "RRCA", 0x0F, func(t *testing.T, instruction Instruction) {
		regs.Set8(A, 0x00)
		regs.Set8(F, 0xF0)
		execute(instruction)
		assert.Equal(t, uint8(0x00), regs.Get8(A))
		assertFlags(t, false, false, false, false)
	})
	// 0x17 - RLA
	testInstruction(t, "RLA", 0x17, func(t *testing.T, instruction Instruction) {
		regs.Set8(A, 0x80)
		execute(instruction)
		assert.Equal(t, uint8(0x00), regs.Get8(A))
		assertFlags(t, false, false, false, true)
	})
	// 0x1F - RRA
	testInstruction(t, "RRA", 0x1F, func(t *testing.T, instruction Instruction) {
		regs.Set8(A, 0x81)
		regs.SetFlag(FlagCarry, true)
		execute(instruction)
		assert.Equal(t, uint8(0xC0), regs.Get8(A))
		assertFlags(t, false, false, false, true)
	})
}

func TestInstruction_RotateCB(t *testing.T) {
	// CB 0x00 - RLC B
	testInstructionCB(t, "RLC B", 0x00, func(t *testing.T, instruction Instruction) {
		regs.Set8(B, 0x00)
		execute(instruction)
		assertFlags(t, true, false, false, false)
	})
	// CB 0x0E - RRC (HL)
	testInstructionCB(t, "RRC (HL)", 0x0E, func(t *testing.T, instruction Instruction) {
		regs.Set16(HL, 0xD000)
		memBus.Write8(0xD000, 0x01)
		assert.Equal(t, StatusContinue, execute(instruction))
		assert.Equal(t, uint8(0x80), memBus.Read8(0xD000))
		assertFlags(t, false, false, false, true)
	})
	// CB 0x11 - RL C
	testInstructionCB(t, "RL C", 0x11, func(t *testing.T, instruction Instruction) {
		regs.Set8(C, 0x80)
		execute(instruction)
		assert.Equal(t, uint8(0x00), regs.Get8(C))
		assertFlags(t, true, false, false, true)
	})
	// CB 0x1F - RR A
	testInstructionCB(t, "RR A", 0x1F, func(t *testing.T, instruction Instruction) {
		regs.Set8(A, 0x01)
		execute(instruction)
		assert.Equal(t, uint8(0x00), regs.Get8(A))
		assertFlags(t, true, false, false, true)
	})
	// CB 0x16 - RL (HL) in ROM
	testInstructionCB(t, "RL (HL)", 0x16, func(t *testing.T, instruction Instruction) {
		regs.Set16(HL, 0x1000)
		assert.Equal(t, StatusWriteFault, execute(instruction))
	})
}
