// Package nn - activation math shared by the detection decoders.
package nn

import "github.com/chewxy/math32"

// Sigmoid computes the logistic function over float32 without leaving
// 32-bit precision. The two branches keep the exponent non-positive so
// large-magnitude inputs saturate to 0 or 1 instead of overflowing.
func Sigmoid(v float32) float32 {
	if v >= 0 {
		return 1 / (1 + math32.Exp(-v))
	}
	e := math32.Exp(v)
	return e / (1 + e)
}

// Softmax returns the normalized exponentials of logits. The maximum
// logit is subtracted before exponentiation so arbitrarily large inputs
// cannot overflow; this leaves the result unchanged mathematically.
func Softmax(logits []float32) []float32 {
	if len(logits) == 0 {
		return nil
	}

	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}

	out := make([]float32, len(logits))
	var sum float32
	for i, v := range logits {
		e := math32.Exp(v - maxLogit)
		out[i] = e
		sum += e
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// ArgMax returns the index and value of the largest element. For an
// empty slice it returns (-1, 0).
func ArgMax(values []float32) (int, float32) {
	if len(values) == 0 {
		return -1, 0
	}
	idx, best := 0, values[0]
	for i, v := range values[1:] {
		if v > best {
			idx, best = i+1, v
		}
	}
	return idx, best
}
