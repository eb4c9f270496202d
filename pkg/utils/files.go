package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: archive is empty")

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first regular file, streams (.gz, .xz,
// .zst) are decompressed, anything else is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Decompress(filename, data)
}

// Decompress decompresses data according to the extension of name.
func Decompress(name string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gz":
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("utils: opening %s: %w", name, err)
		}
		defer gz.Close()
		decoder = gz
	case ".xz":
		x, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("utils: opening %s: %w", name, err)
		}
		decoder = x
	case ".zst":
		z, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("utils: opening %s: %w", name, err)
		}
		defer z.Close()
		decoder = z
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: opening %s: %w", name, err)
		}
		for _, f := range zipReader.File {
			if f.FileInfo().IsDir() {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			decoder = rc
			break
		}
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: opening %s: %w", name, err)
		}
		for _, f := range r.File {
			if f.FileInfo().IsDir() {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			decoder = rc
			break
		}
	default:
		// return the data as is
		return data, nil
	}

	if decoder == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyArchive, name)
	}

	// read the decompressed data into a byte slice
	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("utils: decompressing %s: %w", name, err)
	}
	return out, nil
}
