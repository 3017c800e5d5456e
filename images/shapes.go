// Package images - geometry shared by the detection decoders.
package images

// Rect is a lightweight bounding box in model input pixel space.
// Unlike image.Rectangle the coordinates are float32, because decoded
// boxes land between pixels and rounding them distorts overlap scores.
type Rect struct {
	// X2,Y2 are exclusive (like image.Rectangle).
	X1, Y1, X2, Y2 float32
}

// Area returns the rectangle's area. A rectangle whose corners are
// inverted yields a negative value and is treated as empty by IoU.
func (r Rect) Area() float32 {
	return (r.X2 - r.X1) * (r.Y2 - r.Y1)
}

// CalculateIoU computes the Intersection over Union of two rectangles.
//
// IoU = Area of Intersection / Area of Union, a value between 0.0 and 1.0:
// 1.0 means the rectangles are identical, 0.0 means they are disjoint.
// It is the overlap metric used by Non-Maximum Suppression.
//
// The intersection's top-left corner is the maximum of the two top-left
// corners and its bottom-right corner the minimum of the two bottom-right
// corners; a non-positive intersection width or height means no overlap.
// The union uses the Principle of Inclusion-Exclusion:
//
//	Union(A, B) = Area(A) + Area(B) - Intersection(A, B)
//
// A rectangle with zero or negative area never overlaps anything: it can
// neither suppress a legitimate box nor inflate the union, so IoU is 0.
func CalculateIoU(r, o Rect) float32 {
	areaR := r.Area()
	areaO := o.Area()
	if areaR <= 0 || areaO <= 0 {
		return 0.0
	}

	ix1 := max(r.X1, o.X1)
	iy1 := max(r.Y1, o.Y1)
	ix2 := min(r.X2, o.X2)
	iy2 := min(r.Y2, o.Y2)

	interW := ix2 - ix1
	interH := iy2 - iy1
	if interW <= 0 || interH <= 0 {
		return 0.0
	}
	interArea := interW * interH

	return interArea / (areaR + areaO - interArea)
}
