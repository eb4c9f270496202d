package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/types"
)

func TestMMU_ReadWrite(t *testing.T) {
	m := NewMMU()

	assert.True(t, m.Write8(0xC000, 0x42))
	assert.Equal(t, uint8(0x42), m.Read8(0xC000))

	// the I/O window is plain storage unless reserved
	assert.True(t, m.Write8(0xFF44, 0x90))
	assert.Equal(t, uint8(0x90), m.Read8(0xFF44))
	assert.True(t, m.Write8(0xFFFF, 0x1F))
	assert.Equal(t, uint8(0x1F), m.Read8(0xFFFF))
}

func TestMMU_LittleEndian(t *testing.T) {
	m := NewMMU()

	assert.True(t, m.Write16(0xC000, 0x1234))
	assert.Equal(t, uint8(0x34), m.Read8(0xC000))
	assert.Equal(t, uint8(0x12), m.Read8(0xC001))
	assert.Equal(t, uint16(0x1234), m.Read16(0xC000))

	t.Run("wraps", func(t *testing.T) {
		assert.True(t, m.Write16(0xFFFF, 0xBEEF))
		assert.Equal(t, uint8(0xEF), m.Read8(0xFFFF))
		assert.Equal(t, uint8(0xBE), m.Read8(0x0000))
		assert.Equal(t, uint16(0xBEEF), m.Read16(0xFFFF))
	})
}

func TestMMU_WriteProtect(t *testing.T) {
	m := NewMMU(WithROM([]byte{0x00, 0xC3, 0x50, 0x01}), WriteProtect(0xD010, 0xD000))

	assert.Equal(t, uint8(0xC3), m.Read8(0x0001))
	assert.False(t, m.Write8(0x0001, 0xFF))
	assert.Equal(t, uint8(0xC3), m.Read8(0x0001))
	assert.False(t, m.Write8(0x7FFF, 0xFF))
	assert.True(t, m.Write8(0x8000, 0xFF))

	// reversed bounds are normalised
	assert.False(t, m.Write8(0xD008, 0x01))

	// a word straddling a protected boundary reports failure
	assert.False(t, m.Write16(0x7FFF, 0xAABB))
	assert.Equal(t, uint8(0xAA), m.Read8(0x8000))
}

func TestMMU_Reserve(t *testing.T) {
	m := NewMMU()
	var serial []byte
	m.Reserve(types.SB, types.Address{
		Read: func(uint16) uint8 { return 0xFF },
		Write: func(_ uint16, v uint8) {
			serial = append(serial, v)
		},
	})

	assert.True(t, m.Write8(types.SB, 'A'))
	assert.True(t, m.Write8(types.SB, 'B'))
	assert.Equal(t, []byte("AB"), serial)
	assert.Equal(t, uint8(0xFF), m.Read8(types.SB))

	m.Release(types.SB)
	assert.True(t, m.Write8(types.SB, 0x12))
	assert.Equal(t, uint8(0x12), m.Read8(types.SB))

	assert.Panics(t, func() {
		m.Reserve(0xC000, types.Address{})
	})
}

func TestMMU_LoadProgram(t *testing.T) {
	m := NewMMU(WithROM(nil))
	require.NoError(t, m.LoadProgram(0x0100, []byte{0x00, 0x76}))
	assert.Equal(t, uint8(0x76), m.Read8(0x0101))

	assert.Error(t, m.LoadProgram(0xFFFF, []byte{0x01, 0x02}))
}

func TestMMU_State(t *testing.T) {
	m := NewMMU()
	m.Write8(0x1234, 0x56)
	m.Write8(0xFFFE, 0x78)

	s := types.NewState()
	m.Save(s)
	assert.Len(t, s.Bytes(), AddressSpace)

	restored := NewMMU()
	restored.Load(types.StateFromBytes(s.Bytes()))
	assert.Equal(t, uint8(0x56), restored.Read8(0x1234))
	assert.Equal(t, uint8(0x78), restored.Read8(0xFFFE))
}
