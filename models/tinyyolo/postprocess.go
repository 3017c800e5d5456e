package tinyyolo

import (
	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-detect/models/postprocess"
	"github.com/nvr-ai/go-detect/nn"
)

// PostProcess decodes one raw output tensor into candidate detections.
//
// Every (cell, box slot) combination is evaluated independently: the
// slot's objectness is squashed with a sigmoid and used as a fast-path
// filter, the raw geometry is mapped from anchor-relative grid units to
// model input pixels, and the class logits are softmaxed to find the
// top class. A slot survives only if both its objectness and its
// combined score (top class probability times objectness) reach the
// configured threshold.
//
// The decode is a pure function of the tensor; emission order is
// unspecified because the overlap resolver re-sorts by confidence.
// Boxes land in model input pixel space (416x416); rescaling to the
// source image's native resolution is the renderer's job.
//
// Arguments:
//   - output: The flat detector output, TensorLength floats long.
//
// Returns:
//   - The surviving detections, at most GridRows*GridCols*BoxesPerCell.
//   - ErrInvalidInput when the tensor length is wrong.
func (m *TinyYOLOv2) PostProcess(output []float32) ([]postprocess.Detection, error) {
	t, err := NewTensorView(output)
	if err != nil {
		return nil, err
	}

	var detections []postprocess.Detection
	logits := make([]float32, ClassCount)

	for cx := 0; cx < GridCols; cx++ {
		for cy := 0; cy < GridRows; cy++ {
			for b := 0; b < BoxesPerCell; b++ {
				offset := b * (ClassCount + BoxInfoFeatures)

				rawX := t.At(cy, cx, offset)
				rawY := t.At(cy, cx, offset+1)
				rawW := t.At(cy, cx, offset+2)
				rawH := t.At(cy, cx, offset+3)

				objectness := nn.Sigmoid(t.At(cy, cx, offset+4))
				if objectness < m.threshold {
					continue
				}

				// The outer loop variable feeds the X axis and the inner
				// one the Y axis. The trained weights bake in this
				// coordinate convention, so it stays exactly as-is even
				// though it reads swapped against the usual row/column
				// order.
				centerX := (float32(cx) + nn.Sigmoid(rawX)) * CellWidth
				centerY := (float32(cy) + nn.Sigmoid(rawY)) * CellHeight
				width := math32.Exp(rawW) * CellWidth * m.anchors[2*b]
				height := math32.Exp(rawH) * CellHeight * m.anchors[2*b+1]

				for c := 0; c < ClassCount; c++ {
					logits[c] = t.At(cy, cx, offset+BoxInfoFeatures+c)
				}
				topClass, topScore := nn.ArgMax(nn.Softmax(logits))

				confidence := topScore * objectness
				if confidence < m.threshold {
					continue
				}

				class := m.classes.At(topClass)
				detections = append(detections, postprocess.Detection{
					Box: postprocess.BoxDimensions{
						X:      centerX - width/2,
						Y:      centerY - height/2,
						Width:  width,
						Height: height,
					},
					Confidence: confidence,
					Class:      topClass,
					Label:      class.Name,
					Color:      class.Color,
				})
			}
		}
	}

	return detections, nil
}
