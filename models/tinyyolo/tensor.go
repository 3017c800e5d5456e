package tinyyolo

import "github.com/pkg/errors"

// ErrInvalidInput reports a tensor that cannot be decoded. It is fatal
// to that image's decode but should not abort sibling images in a batch.
var ErrInvalidInput = errors.New("invalid input")

// TensorView is a read-only view over the flat detector output. It
// exists so the one indexing formula that must match the upstream
// model's memory layout lives in exactly one place.
type TensorView struct {
	data []float32
}

// NewTensorView validates the tensor length and wraps it.
func NewTensorView(data []float32) (TensorView, error) {
	if len(data) != TensorLength {
		return TensorView{}, errors.Wrapf(ErrInvalidInput,
			"tensor length %d, want %d", len(data), TensorLength)
	}
	return TensorView{data: data}, nil
}

// At returns the activation at (row, col, channel). The layout is
// channel-major: index = channel*GridRows*GridCols + row*GridCols + col.
func (t TensorView) At(row, col, channel int) float32 {
	return t.data[channel*GridRows*GridCols+row*GridCols+col]
}
