package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/pkg/emu"
)

// writeImage writes a 32KB image with program at 0x0100.
func writeImage(t *testing.T, program []byte) string {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)
	path := filepath.Join(t.TempDir(), "program.gb")
	require.NoError(t, os.WriteFile(path, rom, 0644))
	return path
}

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"0x0150", "0X150", "$0150", "150"} {
		addr, err := parseAddress(s)
		require.NoError(t, err, s)
		assert.Equal(t, uint16(0x0150), addr, s)
	}
	_, err := parseAddress("0x10000")
	assert.Error(t, err)
	_, err = parseAddress("zz")
	assert.Error(t, err)
}

func TestRunProgram(t *testing.T) {
	// LD A, $42; LD ($C000), A; HALT
	image := writeImage(t, []byte{0x3E, 0x42, 0xEA, 0x00, 0xC0, 0x76})

	var out bytes.Buffer
	err := runProgram(context.Background(), runConfig{image: image, trace: true, writeProtect: true}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "0100  LD A, $42\n")
	assert.Contains(t, out.String(), "0102  LD ($C000), A\n")
	assert.Contains(t, out.String(), "0105  HALT\n")
	assert.Contains(t, out.String(), "A: 42")
	assert.Contains(t, out.String(), "steps: 3 status: Halt")
}

func TestRunProgram_MaxSteps(t *testing.T) {
	// INC A; JR -3
	image := writeImage(t, []byte{0x3C, 0x18, 0xFD})

	var out bytes.Buffer
	require.NoError(t, runProgram(context.Background(), runConfig{image: image, maxSteps: 10}, &out))
	assert.Contains(t, out.String(), "A: 06")
	assert.Contains(t, out.String(), "steps: 10 status: Continue")
}

func TestRunProgram_Serial(t *testing.T) {
	// LD A, 'G'; LDH (SB), A; LD A, $81; LDH (SC), A; HALT
	image := writeImage(t, []byte{0x3E, 'G', 0xE0, 0x01, 0x3E, 0x81, 0xE0, 0x02, 0x76})

	var out bytes.Buffer
	require.NoError(t, runProgram(context.Background(), runConfig{image: image, serial: true, writeProtect: true}, &out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("G")))
	assert.Contains(t, out.String(), "steps: 5 status: Halt")
}

func TestRunProgram_WriteFault(t *testing.T) {
	// LD HL, $0150; LD (HL), A
	image := writeImage(t, []byte{0x21, 0x50, 0x01, 0x77})

	var out bytes.Buffer
	err := runProgram(context.Background(), runConfig{image: image, writeProtect: true}, &out)
	assert.ErrorIs(t, err, cpu.ErrWriteFault)

	out.Reset()
	err = runProgram(context.Background(), runConfig{image: image, maxSteps: 2}, &out)
	assert.NoError(t, err)
}

func TestRunProgram_SaveAndLoad(t *testing.T) {
	// INC A; HALT; INC A; HALT
	image := writeImage(t, []byte{0x3C, 0x76, 0x3C, 0x76})
	saves := emu.NewSaves(t.TempDir(), nil)

	var out bytes.Buffer
	require.NoError(t, runProgram(context.Background(), runConfig{image: image, save: true, saves: saves}, &out))
	assert.Contains(t, out.String(), "A: 02")
	assert.Contains(t, out.String(), "saved ")

	out.Reset()
	require.NoError(t, runProgram(context.Background(), runConfig{image: image, restore: true, saves: saves}, &out))
	assert.Contains(t, out.String(), "A: 03")
	assert.Contains(t, out.String(), "PC: 0104")
}

func TestDisassemble(t *testing.T) {
	image := writeImage(t, []byte{0x00, 0x21, 0x34, 0x12, 0xCB, 0x7F})

	var out bytes.Buffer
	require.NoError(t, disassemble(image, 0x0100, 3, &out))
	assert.Equal(t,
		"0100  00        NOP\n"+
			"0101  21 34 12  LD HL, $1234\n"+
			"0104  CB 7F     BIT 7, A\n",
		out.String())
}
