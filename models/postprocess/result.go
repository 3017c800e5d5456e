// Package postprocess - detection results and Non-Maximum Suppression.
package postprocess

import (
	"fmt"
	"image/color"

	"github.com/nvr-ai/go-detect/images"
)

// BoxDimensions is an axis-aligned box in model input pixel space,
// anchored at its top-left corner.
type BoxDimensions struct {
	X, Y, Width, Height float32
}

// Detection is one decoded, labeled box. Detections are created by a
// decoder and treated as immutable values from then on: suppression
// drops a detection from the result, it never rewrites its fields.
type Detection struct {
	// The bounding box of the detection.
	Box BoxDimensions
	// The combined class and objectness confidence, in [0,1].
	Confidence float32
	// The predicted class index into the decoder's class set.
	Class int
	// The class label, borrowed from the decoder's class set.
	Label string
	// The display color paired with the label.
	Color color.Color
}

// Rect returns the box as corner coordinates for overlap computation.
// It is derived from Box on every call so the two representations can
// never drift apart.
func (d Detection) Rect() images.Rect {
	return images.Rect{
		X1: d.Box.X,
		Y1: d.Box.Y,
		X2: d.Box.X + d.Box.Width,
		Y2: d.Box.Y + d.Box.Height,
	}
}

func (d Detection) String() string {
	return fmt.Sprintf("Object %s (confidence %f): (%.2f, %.2f), %.2fx%.2f",
		d.Label, d.Confidence, d.Box.X, d.Box.Y, d.Box.Width, d.Box.Height)
}
