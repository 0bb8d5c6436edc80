package mesh

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/lithophane/internal/heightmap"
	"github.com/Faultbox/lithophane/pkg/math"
)

// Prism side limits.
const (
	MinSides = 3
	MaxSides = 8
)

// SideWidth returns the face width, the side length of a regular polygon
// with circumradius radius.
func SideWidth(sides int, radius float64) float64 {
	return 2 * radius * gomath.Sin(gomath.Pi/float64(sides))
}

// FaceTransform places flat face i of a prism: the panel's +Z normal is
// turned to point away from the axis along angle 2*pi*i/sides + pi/sides
// and the panel is moved radius out along that direction.
func FaceTransform(i, sides int, radius float64) math.Mat4 {
	angle := 2 * gomath.Pi * float64(i) / float64(sides)
	center := angle + gomath.Pi/float64(sides)
	return math.Translate(gomath.Cos(center)*radius, 0, gomath.Sin(center)*radius).
		Mul(math.RotateY(gomath.Pi/2 - center))
}

// BuildPrism builds an N-sided lithophane lamp from one flat panel per face.
//
// Faces are independent closed solids and do not share vertices along their
// common edges. Face i uses heightMaps[i]; extra maps are ignored. Caps, when
// requested, are closed N-gon slabs of minThickness just above or below the
// faces, appended after the faces.
func BuildPrism(heightMaps []*heightmap.HeightMap, sides int, radius, height, minThickness, maxThickness float64, includeTop, includeBottom bool) (*Mesh, error) {
	if sides < MinSides || sides > MaxSides {
		return nil, fmt.Errorf("%w: sides %d outside [%d, %d]", ErrInvalidDimensions, sides, MinSides, MaxSides)
	}
	if err := checkPositive("radius", radius); err != nil {
		return nil, err
	}
	if len(heightMaps) < sides {
		return nil, fmt.Errorf("%w: prism with %d sides got %d height maps", ErrInvalidDimensions, sides, len(heightMaps))
	}

	sideWidth := SideWidth(sides, radius)
	parts := make([]*Mesh, 0, sides+2)
	for i := 0; i < sides; i++ {
		face, err := BuildFlat(heightMaps[i], sideWidth, height, minThickness, maxThickness)
		if err != nil {
			return nil, fmt.Errorf("prism face %d: %w", i, err)
		}
		face.Transform(FaceTransform(i, sides, radius))
		parts = append(parts, face)
	}

	apothem := radius + maxThickness/2
	if includeTop {
		parts = append(parts, polygonSlab(sides, apothem, height/2, height/2+minThickness))
	}
	if includeBottom {
		parts = append(parts, polygonSlab(sides, apothem, -height/2-minThickness, -height/2))
	}
	return Merge(parts...), nil
}

// polygonSlab builds a closed regular N-gon prism between y0 and y1 whose
// edges are centered on the prism face directions.
func polygonSlab(sides int, apothem, y0, y1 float64) *Mesh {
	r := apothem / gomath.Cos(gomath.Pi/float64(sides))
	vertices := make([]math.Vec3, 2*sides)
	top := make([]uint32, sides)
	bottom := make([]uint32, sides)
	for k := 0; k < sides; k++ {
		angle := 2 * gomath.Pi * float64(k) / float64(sides)
		x, z := gomath.Cos(angle)*r, gomath.Sin(angle)*r
		vertices[k] = math.Vec3{X: x, Y: y1, Z: z}
		vertices[sides+k] = math.Vec3{X: x, Y: y0, Z: z}
		top[k] = uint32(k)
		bottom[k] = uint32(sides + k)
	}

	indices := make([]uint32, 0, 6*(sides-2)+6*sides)
	indices = appendFan(indices, top, true)
	indices = appendFan(indices, bottom, false)
	indices = appendWall(indices, top, bottom, true, false)

	m := &Mesh{Vertices: vertices, Indices: indices}
	m.ComputeNormals()
	return m
}
