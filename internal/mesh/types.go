// Package mesh builds watertight lithophane solids from height maps.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lithophane/pkg/math"
)

// ErrInvalidDimensions reports a non-positive length or inverted thickness bounds.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Mesh is an indexed triangle mesh in millimeters.
// Triangles wind counter-clockwise when seen from outside the solid.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32    // Triangle index triples
	Normals  []math.Vec3 // Per-vertex normals, nil or len(Vertices)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the box extent on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertex positions of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c math.Vec3) {
	return m.Vertices[m.Indices[3*i]], m.Vertices[m.Indices[3*i+1]], m.Vertices[m.Indices[3*i+2]]
}

// Bounds returns the bounding box of all vertices.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// Validate checks the index and normal invariants.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	if m.Normals != nil && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("have %d normals for %d vertices", len(m.Normals), len(m.Vertices))
	}
	return nil
}

// checkThickness validates shared thickness bounds.
func checkThickness(minThickness, maxThickness float64) error {
	if minThickness <= 0 {
		return fmt.Errorf("%w: min thickness %v must be > 0", ErrInvalidDimensions, minThickness)
	}
	if maxThickness <= minThickness {
		return fmt.Errorf("%w: max thickness %v must exceed min thickness %v", ErrInvalidDimensions, maxThickness, minThickness)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if !(v > 0) {
		return fmt.Errorf("%w: %s %v must be > 0", ErrInvalidDimensions, name, v)
	}
	return nil
}
