package emu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaves(t *testing.T) {
	saves := NewSaves(t.TempDir(), nil)

	_, err := saves.Latest("program")
	assert.ErrorIs(t, err, ErrNoSaves)

	first, err := saves.Write("program", []byte("first"))
	require.NoError(t, err)
	second, err := saves.Write("program", []byte("second"))
	require.NoError(t, err)
	require.Greater(t, second.Timestamp, first.Timestamp)

	// leftovers of an interrupted write are ignored
	require.NoError(t, os.WriteFile(filepath.Join(saves.Folder, "program", "1.sav.123"), nil, 0644))

	list, err := saves.List("program")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Path, list[0].Path)

	latest, err := saves.Latest("program")
	require.NoError(t, err)
	state, err := latest.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), state)
}

func TestSaves_Corrupt(t *testing.T) {
	saves := NewSaves(t.TempDir(), nil)
	save, err := saves.Write("program", []byte("state"))
	require.NoError(t, err)

	data, err := os.ReadFile(save.Path)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xFF
	require.NoError(t, os.WriteFile(save.Path, data, 0644))

	_, err = save.Read()
	assert.ErrorIs(t, err, ErrCorruptSave)
}

func TestParseTimestampFromFilename(t *testing.T) {
	assert.Equal(t, int64(1700000000), parseTimestampFromFilename("1700000000.sav"))
	assert.Equal(t, int64(42), parseTimestampFromFilename("named.42.sav"))
	assert.Equal(t, int64(0), parseTimestampFromFilename("garbage.sav"))
}
