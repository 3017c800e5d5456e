package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateIoU(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		o        Rect
		expected float32
	}{
		{
			name:     "identical rectangles",
			r:        Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:        Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			expected: 1.0,
		},
		{
			name:     "quarter overlap",
			r:        Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:        Rect{X1: 5, Y1: 5, X2: 15, Y2: 15},
			expected: 25.0 / 175.0,
		},
		{
			name:     "disjoint rectangles",
			r:        Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:        Rect{X1: 20, Y1: 20, X2: 30, Y2: 30},
			expected: 0.0,
		},
		{
			name:     "touching edges do not overlap",
			r:        Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:        Rect{X1: 10, Y1: 0, X2: 20, Y2: 10},
			expected: 0.0,
		},
		{
			name:     "contained rectangle",
			r:        Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:        Rect{X1: 2, Y1: 2, X2: 4, Y2: 4},
			expected: 4.0 / 100.0,
		},
		{
			name:     "zero area receiver",
			r:        Rect{X1: 5, Y1: 5, X2: 5, Y2: 15},
			o:        Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			expected: 0.0,
		},
		{
			name:     "negative area other",
			r:        Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:        Rect{X1: 8, Y1: 8, X2: 2, Y2: 2},
			expected: 0.0,
		},
		{
			name:     "fractional coordinates",
			r:        Rect{X1: 0, Y1: 0, X2: 1, Y2: 1},
			o:        Rect{X1: 0.5, Y1: 0, X2: 1.5, Y2: 1},
			expected: 0.5 / 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateIoU(tt.r, tt.o), 1e-6)
			// IoU is symmetric.
			assert.InDelta(t, tt.expected, CalculateIoU(tt.o, tt.r), 1e-6)
		})
	}
}

func TestRectArea(t *testing.T) {
	assert.Equal(t, float32(100), Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}.Area())
	assert.Equal(t, float32(0), Rect{X1: 3, Y1: 3, X2: 3, Y2: 9}.Area())
	assert.Negative(t, Rect{X1: 10, Y1: 0, X2: 0, Y2: 10}.Area())
}
