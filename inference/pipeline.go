// Package inference - ties the grid decoder and the overlap resolver
// into a per-image pipeline with a parallel batch runner.
//
// The pipeline sits between two external collaborators: upstream, an
// inference engine that hands over one raw float tensor per image;
// downstream, a renderer or logger that consumes the final detections.
// Boxes in the results are in model input pixel space (416x416).
// Anyone drawing them onto the source image must rescale by the ratio
// of the native resolution to the model input size; that rescale is
// deliberately left to the integrator.
package inference

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nvr-ai/go-detect/models/postprocess"
	"github.com/nvr-ai/go-detect/models/tinyyolo"
)

// Frame is one image's raw detector output entering the pipeline.
type Frame struct {
	// Name identifies the source image. It is carried through untouched
	// so downstream stages can correlate results.
	Name string
	// Tensor is the flat detector output for the image.
	Tensor []float32
}

// Result is the outcome of processing one frame.
type Result struct {
	Name       string
	Detections []postprocess.Detection
	// Err records a per-frame decode failure. A failed frame never
	// aborts its siblings in the batch.
	Err error
}

// Pipeline combines a decoder and an NMS configuration. It is immutable
// after construction and safe for concurrent use.
type Pipeline struct {
	model *tinyyolo.TinyYOLOv2
	nms   *postprocess.NMSConfig
}

// NewPipeline creates a pipeline. Configuration is validated here so a
// caller bug aborts before any per-image work starts. A nil nms selects
// the reference defaults.
func NewPipeline(model *tinyyolo.TinyYOLOv2, nms *postprocess.NMSConfig) (*Pipeline, error) {
	if model == nil {
		return nil, errors.Wrap(postprocess.ErrInvalidArgument, "model is nil")
	}
	if nms == nil {
		nms = postprocess.DefaultNMSConfig()
	}
	if err := nms.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{model: model, nms: nms}, nil
}

// Process decodes one frame and resolves overlapping candidates.
func (p *Pipeline) Process(frame Frame) ([]postprocess.Detection, error) {
	candidates, err := p.model.PostProcess(frame.Tensor)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", frame.Name)
	}
	return postprocess.ApplyNMS(candidates, p.nms)
}

// ProcessBatch runs Process over every frame with at most workers
// goroutines. Frames are independent, so decoding them concurrently
// needs no synchronization beyond collecting results, which keep the
// order of the input. A non-positive workers value uses one worker per
// CPU. Canceling ctx skips frames that have not started; already
// running frames finish normally.
func (p *Pipeline) ProcessBatch(ctx context.Context, frames []Frame, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, frame := range frames {
		i, frame := i, frame
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			detections, err := p.Process(frame)
			results[i] = Result{Name: frame.Name, Detections: detections, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
