package mesh

import (
	"fmt"

	"github.com/Faultbox/lithophane/internal/heightmap"
	"github.com/Faultbox/lithophane/pkg/math"
)

// BuildFlat creates a flat lithophane panel centered on the origin.
//
// The front ring follows the height map: each sample sits at depth
// thickness/2 on +Z. The back ring is a flat plane at -minThickness/2.
// Four perimeter strips join the rings into a closed solid. Vertex layout is
// front ring first, then back ring, both row-major.
func BuildFlat(hm *heightmap.HeightMap, width, height, minThickness, maxThickness float64) (*Mesh, error) {
	if err := checkPositive("width", width); err != nil {
		return nil, err
	}
	if err := checkPositive("height", height); err != nil {
		return nil, err
	}
	if err := checkThickness(minThickness, maxThickness); err != nil {
		return nil, err
	}
	if !hm.Valid() || hm.Width < 2 || hm.Height < 2 {
		return nil, fmt.Errorf("%w: flat panel needs at least 2x2 samples", heightmap.ErrInvalidResolution)
	}

	w, h := hm.Width, hm.Height
	segX, segY := float64(w-1), float64(h-1)
	n := w * h
	backDepth := -minThickness / 2

	vertices := make([]math.Vec3, 2*n)
	for y := 0; y < h; y++ {
		posY := (0.5 - float64(y)/segY) * height
		for x := 0; x < w; x++ {
			posX := (float64(x)/segX - 0.5) * width
			t := Thickness(hm.At(x, y), minThickness, maxThickness)
			vertices[y*w+x] = math.Vec3{X: posX, Y: posY, Z: t / 2}
			vertices[n+y*w+x] = math.Vec3{X: posX, Y: posY, Z: backDepth}
		}
	}

	front, back := uint32(0), uint32(n)
	quads := 2*(w-1)*(h-1) + 2*(w-1) + 2*(h-1)
	indices := make([]uint32, 0, quads*6)

	indices = appendGrid(indices, front, w, h, false, false)
	indices = appendGrid(indices, back, w, h, false, true)

	indices = appendWall(indices, row(front, w, 0), row(back, w, 0), false, false)
	indices = appendWall(indices, row(front, w, h-1), row(back, w, h-1), false, true)
	indices = appendWall(indices, column(front, w, h, 0), column(back, w, h, 0), false, true)
	indices = appendWall(indices, column(front, w, h, w-1), column(back, w, h, w-1), false, false)

	m := &Mesh{Vertices: vertices, Indices: indices}
	m.ComputeNormals()
	return m, nil
}
