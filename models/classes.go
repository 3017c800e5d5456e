// Package models holds the static label tables shared by the decoders.
package models

import (
	"image/color"

	"github.com/muesli/gamut"
	"github.com/pkg/errors"
)

// OutputClass represents one detection label.
type OutputClass struct {
	// The integer index returned by the model.
	Index int
	// The human-readable label.
	Name string
	// The color used when the label is rendered.
	Color color.Color
}

// ClassSet is an ordered, immutable list of classes for one model family.
// Decoders hold a ClassSet injected at construction, so there is a single
// source of truth for label order without hidden global state.
type ClassSet struct {
	classes []OutputClass
}

// NewClassSet builds a ClassSet from parallel name and hex color tables.
// Both tables are order-significant: index i of each belongs to class i.
func NewClassSet(names, hexColors []string) (*ClassSet, error) {
	if len(names) != len(hexColors) {
		return nil, errors.Errorf("class table mismatch: %d names, %d colors", len(names), len(hexColors))
	}

	classes := make([]OutputClass, len(names))
	for i, name := range names {
		classes[i] = OutputClass{
			Index: i,
			Name:  name,
			Color: gamut.Hex(hexColors[i]),
		}
	}
	return &ClassSet{classes: classes}, nil
}

// Len returns the number of classes in the set.
func (s *ClassSet) Len() int {
	return len(s.classes)
}

// At returns the class at index i. The index must come from a decoder
// operating on this set, so it is always in range.
func (s *ClassSet) At(i int) OutputClass {
	return s.classes[i]
}

// vocNames is the Pascal VOC label order the detector was trained on.
var vocNames = []string{
	"aeroplane", "bicycle", "bird", "boat", "bottle",
	"bus", "car", "cat", "chair", "cow",
	"diningtable", "dog", "horse", "motorbike", "person",
	"pottedplant", "sheep", "sofa", "train", "tvmonitor",
}

// vocColors pairs each VOC label with a display color, 1:1 by index.
var vocColors = []string{
	"#F0E68C", "#FF00FF", "#C0C0C0", "#4169E1", "#008000",
	"#FF8C00", "#800080", "#FFD700", "#FF0000", "#7FFFD4",
	"#00FF00", "#F0F8FF", "#A0522D", "#DA70D6", "#D2B48C",
	"#FFB6C1", "#00BFFF", "#00CED1", "#EE82EE", "#F5F5DC",
}

// VOCClasses returns the 20-class Pascal VOC class set.
func VOCClasses() *ClassSet {
	set, err := NewClassSet(vocNames, vocColors)
	if err != nil {
		// The tables above are static and same-length; reaching this is a bug.
		panic(err)
	}
	return set
}
