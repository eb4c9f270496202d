package serial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
)

func TestController_Transfer(t *testing.T) {
	m := mmu.NewMMU()
	c := NewController(m)
	var out bytes.Buffer
	c.Attach(NewRecorder(&out))

	m.Write8(types.SB, 'O')
	m.Write8(types.SC, 0x81)
	m.Write8(types.SB, 'K')
	m.Write8(types.SC, 0x81)

	assert.Equal(t, "OK", out.String())
	assert.Equal(t, uint8(0xFF), m.Read8(types.SB))
	assert.Equal(t, uint8(0x7F), m.Read8(types.SC))
	assert.Equal(t, uint8(types.Bit3), m.Read8(types.IF)&types.Bit3)
}

func TestController_ExternalClock(t *testing.T) {
	m := mmu.NewMMU()
	c := NewController(m)
	var out bytes.Buffer
	c.Attach(NewRecorder(&out))

	m.Write8(types.SB, 'X')
	m.Write8(types.SC, 0x80)

	assert.Empty(t, out.String())
	assert.Equal(t, uint8(0xFE), m.Read8(types.SC))
	assert.Equal(t, uint8('X'), m.Read8(types.SB))
}

func TestController_Program(t *testing.T) {
	m := mmu.NewMMU()
	c := NewController(m)
	var out bytes.Buffer
	c.Attach(NewRecorder(&out))

	// LD A, 'H'; LDH (SB), A; LD A, $81; LDH (SC), A; HALT
	program := []byte{0x3E, 'H', 0xE0, 0x01, 0x3E, 0x81, 0xE0, 0x02, 0x76}
	assert.NoError(t, m.LoadProgram(0x0100, program))

	core := cpu.NewCPU(m, cpu.PostBoot())
	for core.Step() == cpu.StatusContinue {
	}
	assert.Equal(t, "H", out.String())
}

func TestController_State(t *testing.T) {
	m := mmu.NewMMU()
	c := NewController(m)
	m.Write8(types.SB, 0x42)
	m.Write8(types.SC, 0x80)

	s := types.NewState()
	c.Save(s)

	restored := NewController(mmu.NewMMU())
	restored.Load(types.StateFromBytes(s.Bytes()))
	assert.Equal(t, uint8(0x42), restored.data)
	assert.True(t, restored.TransferRequest)
	assert.False(t, restored.InternalClock)
}
