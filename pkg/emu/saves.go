package emu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// DefaultFolder is the folder saves are written to when none is
// configured.
const DefaultFolder = "saves"

// ErrNoSaves is returned when a program has no save files.
var ErrNoSaves = errors.New("emu: no save files")

// save file naming convention:
// <folder>/<program id>/<timestamp>.sav

// Save represents a save file.
type Save struct {
	Path      string // the path to the save file
	Timestamp int64  // nanoseconds since the Unix epoch
}

// Saves manages the save files of every program under a folder.
type Saves struct {
	Folder string
	Log    log.Logger
}

// NewSaves returns a Saves rooted at folder, or at DefaultFolder if
// folder is empty.
func NewSaves(folder string, l log.Logger) *Saves {
	if folder == "" {
		folder = DefaultFolder
	}
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Saves{Folder: folder, Log: l}
}

// Write encodes state and stores it as the newest save of the
// program. The data is written to a temporary file first and renamed
// into place, so an interrupted write never leaves a partial save.
func (s *Saves) Write(id string, state []byte) (*Save, error) {
	data, err := Encode(state)
	if err != nil {
		return nil, err
	}

	folder := filepath.Join(s.Folder, id)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, err
	}

	timestamp := time.Now().UnixNano()
	path := filepath.Join(folder, fmt.Sprintf("%d.sav", timestamp))
	for fileExists(path) {
		timestamp++
		path = filepath.Join(folder, fmt.Sprintf("%d.sav", timestamp))
	}
	f, err := os.CreateTemp(folder, filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("emu: writing save file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return nil, err
	}

	s.Log.WithFields(log.Fields{"program": id, "bytes": len(data)}).Infof("saved %s", path)
	return &Save{Path: path, Timestamp: timestamp}, nil
}

// List returns the save files of the program, newest first. A
// program without saves has an empty list.
func (s *Saves) List(id string) ([]*Save, error) {
	files, err := os.ReadDir(filepath.Join(s.Folder, id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	saves := make([]*Save, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !isFileSaveFile(file.Name()) {
			continue
		}
		saves = append(saves, &Save{
			Path:      filepath.Join(s.Folder, id, file.Name()),
			Timestamp: parseTimestampFromFilename(file.Name()),
		})
	}

	sort.SliceStable(saves, func(i, j int) bool {
		return saves[i].Timestamp > saves[j].Timestamp
	})
	return saves, nil
}

// Latest returns the newest save file of the program.
func (s *Saves) Latest(id string) (*Save, error) {
	saves, err := s.List(id)
	if err != nil {
		return nil, err
	}
	if len(saves) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoSaves, id)
	}
	return saves[0], nil
}

// Read returns the decoded state held by the save file.
func (s *Save) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	state, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return state, nil
}

// parseTimestampFromFilename parses the timestamp from the given filename.
// The filename is expected to be in the format of "<...>.<timestamp>.sav".
// Where <timestamp> is the number of nanoseconds since the Unix epoch,
// and <...> is any string.
func parseTimestampFromFilename(filename string) int64 {
	// strip the file extension
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))

	// get the timestamp from the filename (the last part preceded by a dot)
	parts := strings.Split(filename, ".")
	n, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// isFileSaveFile returns true if the given filename is a completed
// save file. Temporary files carry a random suffix after ".sav".
func isFileSaveFile(filename string) bool {
	return strings.HasSuffix(filename, ".sav")
}
