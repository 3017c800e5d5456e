// Package tinyyolo - decodes the Tiny YOLOv2 (VOC) output grid into
// labeled detections.
package tinyyolo

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-detect/models"
	"github.com/nvr-ai/go-detect/models/postprocess"
)

// Grid geometry of the Tiny YOLOv2 VOC detector. These are fixed
// properties of the trained network, not tunables.
const (
	GridRows     = 13
	GridCols     = 13
	BoxesPerCell = 5
	// Per-box geometry and objectness values preceding the class logits.
	BoxInfoFeatures = 5
	ClassCount      = 20
	// Cell span in model input pixels.
	CellWidth  = 32
	CellHeight = 32

	Channels     = BoxesPerCell * (ClassCount + BoxInfoFeatures)
	TensorLength = GridRows * GridCols * Channels

	InputWidth  = GridCols * CellWidth
	InputHeight = GridRows * CellHeight

	// DefaultConfidenceThreshold is the minimal combined score a box
	// slot needs to be emitted.
	DefaultConfidenceThreshold = 0.3
)

// defaultAnchors holds the five (width, height) prior pairs the network
// was trained with; box slot b reads entries 2b and 2b+1.
var defaultAnchors = []float32{1.08, 1.19, 3.42, 4.41, 6.63, 11.38, 9.42, 5.11, 16.62, 10.52}

// Config is the arguments for creating a new Tiny YOLOv2 decoder.
type Config struct {
	// ConfidenceThreshold filters box slots below this combined score.
	ConfidenceThreshold float32
	// Classes overrides the label table. Nil selects the VOC set.
	Classes *models.ClassSet
	// Anchors overrides the box priors. Nil selects the trained defaults.
	Anchors []float32
}

// DefaultConfig returns the reference decoder configuration.
func DefaultConfig() Config {
	return Config{ConfidenceThreshold: DefaultConfidenceThreshold}
}

// TinyYOLOv2 is the decoder instance. It is immutable after
// construction and safe for concurrent use across images.
type TinyYOLOv2 struct {
	threshold float32
	classes   *models.ClassSet
	anchors   []float32
}

// NewModel creates a new decoder.
//
// Arguments:
//   - cfg: The decoder configuration; zero-value fields take the
//     reference defaults, except ConfidenceThreshold which is used
//     as given (0 emits every slot).
//
// Returns:
//   - The decoder, or ErrInvalidArgument when a parameter is out of range.
func NewModel(cfg Config) (*TinyYOLOv2, error) {
	if cfg.ConfidenceThreshold < 0 || cfg.ConfidenceThreshold > 1 {
		return nil, errors.Wrapf(postprocess.ErrInvalidArgument,
			"confidence threshold %f outside [0,1]", cfg.ConfidenceThreshold)
	}

	classes := cfg.Classes
	if classes == nil {
		classes = models.VOCClasses()
	}
	if classes.Len() != ClassCount {
		return nil, errors.Wrapf(postprocess.ErrInvalidArgument,
			"class set has %d classes, want %d", classes.Len(), ClassCount)
	}

	anchors := cfg.Anchors
	if anchors == nil {
		anchors = defaultAnchors
	}
	if len(anchors) != 2*BoxesPerCell {
		return nil, errors.Wrapf(postprocess.ErrInvalidArgument,
			"anchor table has %d entries, want %d", len(anchors), 2*BoxesPerCell)
	}

	return &TinyYOLOv2{
		threshold: cfg.ConfidenceThreshold,
		classes:   classes,
		anchors:   anchors,
	}, nil
}
