package emu

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
)

// StateSize is the size of an uncompressed snapshot without I/O
// collaborators.
const StateSize = cpu.StateSize + mmu.AddressSpace

var (
	// ErrCorruptSave is returned when a save file fails its checksum
	// or cannot be decoded.
	ErrCorruptSave = errors.New("emu: corrupt save file")

	magic = [4]byte{'G', 'B', 'C', 'S'}
)

const (
	version    = 1
	headerSize = len(magic) + 1 + 8
)

// save file layout:
// <magic> <version> <xxhash64 of the payload, little endian> <brotli payload>

// Capture returns the combined state of the CPU, its memory and the
// given I/O collaborators, taken between two instructions. It is safe
// to call while the CPU is running.
func Capture(c *cpu.CPU, m *mmu.MMU, devices ...types.Stater) []byte {
	s := types.NewState()
	c.SaveWith(s, append([]types.Stater{m}, devices...)...)
	return s.Bytes()
}

// Restore loads a state produced by Capture into the CPU, memory and
// I/O collaborators, which must be given in the same order.
func Restore(state []byte, c *cpu.CPU, m *mmu.MMU, devices ...types.Stater) error {
	return c.LoadWith(types.StateFromBytes(state), append([]types.Stater{m}, devices...)...)
}

// Encode compresses state and stamps it with a checksum.
func Encode(state []byte) ([]byte, error) {
	var payload bytes.Buffer
	w := brotli.NewWriterLevel(&payload, brotli.BestCompression)
	if _, err := w.Write(state); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, headerSize, headerSize+payload.Len())
	copy(out, magic[:])
	out[len(magic)] = version
	binary.LittleEndian.PutUint64(out[len(magic)+1:], xxhash.Sum64(payload.Bytes()))
	return append(out, payload.Bytes()...), nil
}

// Decode verifies and decompresses data produced by Encode.
func Decode(data []byte) ([]byte, error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, fmt.Errorf("%w: bad header", ErrCorruptSave)
	}
	if v := data[len(magic)]; v != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptSave, v)
	}
	payload := data[headerSize:]
	if sum := binary.LittleEndian.Uint64(data[len(magic)+1:]); sum != xxhash.Sum64(payload) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptSave)
	}

	state, err := io.ReadAll(brotli.NewReader(bytes.NewReader(payload)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	return state, nil
}

// ProgramID returns the name of the save folder for a program image.
func ProgramID(program []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(program))
}
