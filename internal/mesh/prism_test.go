package mesh

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/lithophane/internal/heightmap"
	"github.com/Faultbox/lithophane/pkg/math"
)

func prismMaps(n, w, h int) []*heightmap.HeightMap {
	maps := make([]*heightmap.HeightMap, n)
	for i := range maps {
		maps[i] = gradient(w, h)
		maps[i].Set(0, 0, uint8(i*40))
	}
	return maps
}

func TestSideWidth(t *testing.T) {
	if got := SideWidth(4, 10); !approx(got, 10*gomath.Sqrt2, 1e-12) {
		t.Errorf("SideWidth(4, 10) = %v, want %v", got, 10*gomath.Sqrt2)
	}
	if got := SideWidth(6, 10); !approx(got, 10, 1e-12) {
		t.Errorf("SideWidth(6, 10) = %v, want 10", got)
	}
}

func TestFaceTransformPointsOutward(t *testing.T) {
	for sides := MinSides; sides <= MaxSides; sides++ {
		for i := 0; i < sides; i++ {
			m := FaceTransform(i, sides, 30)
			center := m.TransformPoint(math.Vec3{})
			normal := m.TransformDirection(math.Vec3{Z: 1})

			angle := 2*gomath.Pi*float64(i)/float64(sides) + gomath.Pi/float64(sides)
			want := math.Vec3{X: gomath.Cos(angle), Z: gomath.Sin(angle)}
			if normal.Sub(want).Length() > 1e-12 {
				t.Errorf("sides=%d face=%d: normal %v, want %v", sides, i, normal, want)
			}
			if !approx(center.Radial(), 30, 1e-12) || center.Normalize().Sub(want).Length() > 1e-12 {
				t.Errorf("sides=%d face=%d: center %v not at radius 30 along %v", sides, i, center, want)
			}
		}
	}
}

func TestBuildPrismPartitions(t *testing.T) {
	const sides, w, h = 4, 6, 5
	maps := prismMaps(sides, w, h)
	m, err := BuildPrism(maps, sides, 40, 100, 0.8, 3, false, false)
	if err != nil {
		t.Fatalf("BuildPrism failed: %v", err)
	}

	face, err := BuildFlat(maps[0], SideWidth(sides, 40), 100, 0.8, 3)
	if err != nil {
		t.Fatalf("BuildFlat failed: %v", err)
	}
	perFace := len(face.Vertices)
	perFaceIdx := len(face.Indices)

	if len(m.Vertices) != sides*perFace {
		t.Fatalf("expected %d vertices, got %d", sides*perFace, len(m.Vertices))
	}
	if len(m.Indices) != sides*perFaceIdx {
		t.Fatalf("expected %d indices, got %d", sides*perFaceIdx, len(m.Indices))
	}

	for i := 0; i < sides; i++ {
		lo, hi := uint32(i*perFace), uint32((i+1)*perFace)
		r := &Mesh{Vertices: m.Vertices}
		for _, idx := range m.Indices[i*perFaceIdx : (i+1)*perFaceIdx] {
			if idx < lo || idx >= hi {
				t.Fatalf("face %d index %d outside [%d, %d)", i, idx, lo, hi)
			}
			r.Indices = append(r.Indices, idx)
		}
		checkClosed(t, r)
		if v := r.Volume(); v <= 0 {
			t.Errorf("face %d signed volume %v should be positive", i, v)
		}
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestBuildPrismIgnoresExtraMaps(t *testing.T) {
	maps := prismMaps(5, 4, 4)
	m, err := BuildPrism(maps, 3, 20, 50, 1, 2, false, false)
	if err != nil {
		t.Fatalf("BuildPrism failed: %v", err)
	}
	if len(m.Vertices) != 3*2*16 {
		t.Errorf("expected %d vertices, got %d", 3*2*16, len(m.Vertices))
	}
}

func TestBuildPrismCaps(t *testing.T) {
	const sides = 6
	maps := prismMaps(sides, 4, 4)
	open, err := BuildPrism(maps, sides, 40, 100, 0.8, 3, false, false)
	if err != nil {
		t.Fatalf("BuildPrism failed: %v", err)
	}
	capped, err := BuildPrism(maps, sides, 40, 100, 0.8, 3, true, true)
	if err != nil {
		t.Fatalf("BuildPrism failed: %v", err)
	}

	if got, want := len(capped.Vertices)-len(open.Vertices), 2*2*sides; got != want {
		t.Errorf("caps added %d vertices, want %d", got, want)
	}
	checkClosed(t, capped)

	b := capped.Bounds()
	if !approx(b.Max.Y, 50.8, 1e-9) || !approx(b.Min.Y, -50.8, 1e-9) {
		t.Errorf("capped Y range = [%v, %v], want [-50.8, 50.8]", b.Min.Y, b.Max.Y)
	}
	if v := capped.Volume(); v <= open.Volume() {
		t.Errorf("caps should add volume: %v <= %v", v, open.Volume())
	}
}

func TestBuildPrismFrontFacesOutward(t *testing.T) {
	const sides = 5
	maps := prismMaps(sides, 3, 3)
	m, err := BuildPrism(maps, sides, 30, 40, 1, 2, false, false)
	if err != nil {
		t.Fatalf("BuildPrism failed: %v", err)
	}
	perFace := 2 * 9
	for i := 0; i < sides; i++ {
		// Center sample of the front ring.
		front := m.Vertices[i*perFace+4]
		back := m.Vertices[i*perFace+9+4]
		if front.Radial() <= back.Radial() {
			t.Errorf("face %d front radius %v should exceed back radius %v", i, front.Radial(), back.Radial())
		}
	}
}

func TestBuildPrismErrors(t *testing.T) {
	tests := []struct {
		name  string
		maps  int
		sides int
	}{
		{"too few sides", 3, 2},
		{"too many sides", 9, 9},
		{"missing maps", 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPrism(prismMaps(tt.maps, 3, 3), tt.sides, 40, 100, 0.8, 3, false, false)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}
