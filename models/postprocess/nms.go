package postprocess

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-detect/images"
)

// ErrInvalidArgument reports an out-of-range configuration parameter.
// It is a caller bug, so it surfaces before any detection is processed
// instead of being silently clamped.
var ErrInvalidArgument = errors.New("invalid argument")

// Default NMS parameters, matching the reference detector.
const (
	DefaultMaxDetections = 5
	DefaultIoUThreshold  = 0.5
)

// NMSConfig defines parameters for Non-Maximum Suppression.
type NMSConfig struct {
	// MaxDetections caps the number of boxes returned per image.
	MaxDetections int
	// IoUThreshold is the overlap above which the lower-confidence of
	// two boxes is suppressed.
	IoUThreshold float32
}

// DefaultNMSConfig returns the reference thresholds.
func DefaultNMSConfig() *NMSConfig {
	return &NMSConfig{
		MaxDetections: DefaultMaxDetections,
		IoUThreshold:  DefaultIoUThreshold,
	}
}

// Validate checks the configuration ranges.
func (c *NMSConfig) Validate() error {
	if c.MaxDetections < 0 {
		return errors.Wrapf(ErrInvalidArgument, "max detections %d is negative", c.MaxDetections)
	}
	if c.IoUThreshold < 0 || c.IoUThreshold > 1 {
		return errors.Wrapf(ErrInvalidArgument, "IoU threshold %f outside [0,1]", c.IoUThreshold)
	}
	return nil
}

// ApplyNMS filters overlapping detections using greedy Non-Maximum
// Suppression.
//
// The input is sorted by descending confidence with a stable sort:
// equal-confidence boxes keep their input order, which decides which of
// two mutually overlapping boxes survives. The sorted list is scanned
// in order; each still-active detection is accepted and every later
// active detection overlapping it beyond the IoU threshold is marked
// inactive. Suppression is monotonic, a suppressed box is never
// revisited. The scan stops as soon as MaxDetections boxes are
// accepted or no active boxes remain.
//
// Arguments:
//   - detections: Unordered candidate detections for one image.
//   - config: Suppression parameters; validated before any work starts.
//
// Returns:
//   - Accepted detections, highest confidence first, at most
//     MaxDetections long, no pair overlapping beyond IoUThreshold.
//   - ErrInvalidArgument if the configuration is out of range.
func ApplyNMS(detections []Detection, config *NMSConfig) ([]Detection, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	n := len(detections)
	if n == 0 || config.MaxDetections == 0 {
		return nil, nil
	}

	sorted := make([]Detection, n)
	copy(sorted, detections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	used := make([]bool, n)
	active := n
	filtered := make([]Detection, 0, min(n, config.MaxDetections))

	for i := 0; i < n && active > 0; i++ {
		if used[i] {
			continue
		}

		filtered = append(filtered, sorted[i])
		used[i] = true
		active--
		if len(filtered) == config.MaxDetections {
			break
		}

		anchor := sorted[i].Rect()
		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			if images.CalculateIoU(anchor, sorted[j].Rect()) > config.IoUThreshold {
				used[j] = true
				active--
			}
		}
	}

	return filtered, nil
}
