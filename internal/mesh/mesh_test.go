package mesh

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/lithophane/internal/heightmap"
	"github.com/Faultbox/lithophane/pkg/math"
)

// checkClosed verifies that every directed edge appears exactly once and is
// matched by exactly one edge running the other way.
func checkClosed(t *testing.T, m *Mesh) {
	t.Helper()
	directed := make(map[edge]int)
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		directed[edge{a, b}]++
		directed[edge{b, c}]++
		directed[edge{c, a}]++
	}
	for e, n := range directed {
		if n != 1 {
			t.Fatalf("directed edge %d->%d used %d times", e.a, e.b, n)
		}
		if directed[edge{e.b, e.a}] != 1 {
			t.Fatalf("edge %d->%d has no opposite", e.a, e.b)
		}
	}
}

func approx(a, b, tol float64) bool {
	return gomath.Abs(a-b) <= tol
}

func gradient(w, h int) *heightmap.HeightMap {
	hm := heightmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hm.Set(x, y, uint8((x*37+y*91)%256))
		}
	}
	return hm
}

func TestThicknessEndpoints(t *testing.T) {
	bounds := [][2]float64{{0.8, 3}, {0.4, 10}, {0.1, 0.30000000000000004}, {1.7, 2.3}}
	for _, b := range bounds {
		if got := Thickness(0, b[0], b[1]); got != b[1] {
			t.Errorf("Thickness(0, %v, %v) = %v, want %v", b[0], b[1], got, b[1])
		}
		if got := Thickness(255, b[0], b[1]); got != b[0] {
			t.Errorf("Thickness(255, %v, %v) = %v, want %v", b[0], b[1], got, b[0])
		}
	}
}

func TestThicknessMonotonic(t *testing.T) {
	bounds := [][2]float64{{0.8, 3}, {0.4, 10}, {2, 2.5}}
	for _, b := range bounds {
		prev := Thickness(0, b[0], b[1])
		for v := 1; v <= 255; v++ {
			cur := Thickness(uint8(v), b[0], b[1])
			if cur > prev {
				t.Fatalf("Thickness not monotonic at %d: %v > %v", v, cur, prev)
			}
			if cur < b[0] || cur > b[1] {
				t.Fatalf("Thickness(%d) = %v outside [%v, %v]", v, cur, b[0], b[1])
			}
			prev = cur
		}
	}
}

func TestThicknessMidpoint(t *testing.T) {
	got := Thickness(51, 1, 6)
	if !approx(got, 5, 1e-12) {
		t.Errorf("Thickness(51, 1, 6) = %v, want 5", got)
	}
}

func TestValidate(t *testing.T) {
	m := &Mesh{
		Vertices: []math.Vec3{{}, {X: 1}, {Y: 1}},
		Indices:  []uint32{0, 1, 2},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	tests := []struct {
		name string
		m    *Mesh
	}{
		{"partial triangle", &Mesh{Vertices: m.Vertices, Indices: []uint32{0, 1}}},
		{"out of range", &Mesh{Vertices: m.Vertices, Indices: []uint32{0, 1, 3}}},
		{"normal count", &Mesh{Vertices: m.Vertices, Indices: m.Indices, Normals: []math.Vec3{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.m.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBounds(t *testing.T) {
	m := &Mesh{Vertices: []math.Vec3{{X: -1, Y: 2, Z: 0}, {X: 3, Y: -4, Z: 5}}}
	b := m.Bounds()
	if b.Min != (math.Vec3{X: -1, Y: -4, Z: 0}) || b.Max != (math.Vec3{X: 3, Y: 2, Z: 5}) {
		t.Errorf("Bounds() = %+v", b)
	}
	if b.Size() != (math.Vec3{X: 4, Y: 6, Z: 5}) {
		t.Errorf("Size() = %v", b.Size())
	}
	if (&Mesh{}).Bounds() != (Bounds{}) {
		t.Error("empty mesh should have zero bounds")
	}
}

func TestComputeNormalsAreaWeighted(t *testing.T) {
	// Two triangles share vertex 0: a large one facing +Z and a small one facing +X.
	m := &Mesh{
		Vertices: []math.Vec3{
			{}, {X: 10}, {Y: 10},
			{Y: 1}, {Z: 1},
		},
		Indices: []uint32{0, 1, 2, 0, 3, 4},
	}
	m.ComputeNormals()
	n := m.Normals[0]
	if !approx(n.Length(), 1, 1e-12) {
		t.Fatalf("normal not unit: %v", n)
	}
	if n.Z <= n.X {
		t.Errorf("larger face should dominate, got %v", n)
	}
	if m.Normals[1] != (math.Vec3{Z: 1}) {
		t.Errorf("Normals[1] = %v, want +Z", m.Normals[1])
	}
}

func TestMergeOffsetsIndices(t *testing.T) {
	a := &Mesh{Vertices: []math.Vec3{{}, {X: 1}, {Y: 1}}, Indices: []uint32{0, 1, 2}}
	b := &Mesh{Vertices: []math.Vec3{{Z: 1}, {Z: 2}, {Z: 3}, {Z: 4}}, Indices: []uint32{0, 1, 2, 1, 3, 2}}
	a.ComputeNormals()

	m := Merge(a, b)
	if len(m.Vertices) != 7 {
		t.Fatalf("expected 7 vertices, got %d", len(m.Vertices))
	}
	want := []uint32{0, 1, 2, 3, 4, 5, 4, 6, 5}
	for i, idx := range want {
		if m.Indices[i] != idx {
			t.Errorf("Indices[%d] = %d, want %d", i, m.Indices[i], idx)
		}
	}
	if m.Normals != nil {
		t.Error("normals should be dropped when an input has none")
	}

	b.ComputeNormals()
	if got := Merge(a, b); len(got.Normals) != 7 {
		t.Errorf("expected 7 normals, got %d", len(got.Normals))
	}
}

func TestTransformRotatesNormals(t *testing.T) {
	m := &Mesh{Vertices: []math.Vec3{{Z: 1}}, Normals: []math.Vec3{{Z: 1}}}
	m.Transform(math.Translate(0, 5, 0).Mul(math.RotateY(gomath.Pi / 2)))
	if !approx(m.Vertices[0].X, 1, 1e-12) || !approx(m.Vertices[0].Y, 5, 1e-12) {
		t.Errorf("vertex = %v, want (1, 5, 0)", m.Vertices[0])
	}
	if !approx(m.Normals[0].X, 1, 1e-12) || !approx(m.Normals[0].Y, 0, 1e-12) {
		t.Errorf("normal = %v, want (1, 0, 0)", m.Normals[0])
	}
}
