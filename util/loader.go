package util

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// TensorFile represents one dumped detector output.
type TensorFile struct {
	// Path is the path to the tensor file.
	Path string
	// Name is the file name without extension, used to identify the image.
	Name string
	// Data is the decoded float32 values.
	Data []float32
}

// LoadDirectoryTensorFiles reads all .bin files from a directory as
// flat sequences of little-endian float32 values, sorted by name.
//
// Arguments:
// - dir: Directory path containing tensor dumps.
//
// Returns:
// - []TensorFile: Slice of TensorFile, each containing the decoded values.
// - error: Error if loading fails.
func LoadDirectoryTensorFiles(dir string) ([]TensorFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var tensors []TensorFile
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".bin" {
			continue
		}

		path := filepath.Join(dir, file.Name())
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, readErr
		}
		data, decodeErr := DecodeFloat32(raw)
		if decodeErr != nil {
			return nil, errors.Wrapf(decodeErr, "decode %s", path)
		}
		tensors = append(tensors, TensorFile{
			Path: path,
			Name: strings.TrimSuffix(file.Name(), ".bin"),
			Data: data,
		})
	}

	sort.Slice(tensors, func(i, j int) bool {
		return tensors[i].Name < tensors[j].Name
	})

	return tensors, nil
}

// DecodeFloat32 converts raw little-endian bytes into float32 values.
func DecodeFloat32(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, errors.Errorf("byte length %d is not a multiple of 4", len(raw))
	}
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out, nil
}
