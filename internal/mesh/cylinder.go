package mesh

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/lithophane/internal/heightmap"
	"github.com/Faultbox/lithophane/pkg/math"
)

// BuildCylinder wraps a height map around the vertical axis.
//
// Height map columns become angular segments (column x at angle
// 2*pi*x/width, the last column adjacent to the first) and rows become
// height rings from -height/2 upward. The outer shell sits at
// radius + thickness/2, the inner shell at radius - minThickness/2. With
// includeTop or includeBottom an annulus joins the shells at that rim;
// otherwise the tube is left open there.
func BuildCylinder(hm *heightmap.HeightMap, diameter, height, minThickness, maxThickness float64, includeTop, includeBottom bool) (*Mesh, error) {
	if err := checkPositive("diameter", diameter); err != nil {
		return nil, err
	}
	if err := checkPositive("height", height); err != nil {
		return nil, err
	}
	if err := checkThickness(minThickness, maxThickness); err != nil {
		return nil, err
	}
	radius := diameter / 2
	innerRadius := radius - minThickness/2
	if innerRadius <= 0 {
		return nil, fmt.Errorf("%w: diameter %v too small for min thickness %v", ErrInvalidDimensions, diameter, minThickness)
	}
	if !hm.Valid() || hm.Width < 3 || hm.Height < 2 {
		return nil, fmt.Errorf("%w: cylinder needs at least 3x2 samples", heightmap.ErrInvalidResolution)
	}

	segments, rings := hm.Width, hm.Height
	n := segments * rings

	cos := make([]float64, segments)
	sin := make([]float64, segments)
	for x := 0; x < segments; x++ {
		angle := 2 * gomath.Pi * float64(x) / float64(segments)
		cos[x], sin[x] = gomath.Cos(angle), gomath.Sin(angle)
	}

	vertices := make([]math.Vec3, 2*n)
	for y := 0; y < rings; y++ {
		posY := (float64(y)/float64(rings-1) - 0.5) * height
		for x := 0; x < segments; x++ {
			r := radius + Thickness(hm.At(x, y), minThickness, maxThickness)/2
			vertices[y*segments+x] = math.Vec3{X: cos[x] * r, Y: posY, Z: sin[x] * r}
			vertices[n+y*segments+x] = math.Vec3{X: cos[x] * innerRadius, Y: posY, Z: sin[x] * innerRadius}
		}
	}

	outer, inner := uint32(0), uint32(n)
	quads := 2*segments*(rings-1) + 2*segments
	indices := make([]uint32, 0, quads*6)

	indices = appendGrid(indices, outer, segments, rings, true, false)
	indices = appendGrid(indices, inner, segments, rings, true, true)

	if includeBottom {
		indices = appendWall(indices, row(outer, segments, 0), row(inner, segments, 0), true, false)
	}
	if includeTop {
		indices = appendWall(indices, row(outer, segments, rings-1), row(inner, segments, rings-1), true, true)
	}

	m := &Mesh{Vertices: vertices, Indices: indices}
	m.ComputeNormals()
	return m, nil
}
