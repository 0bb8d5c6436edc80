package mesh

type edge struct{ a, b uint32 }

// OpenEdges counts undirected edges used by exactly one triangle.
// A watertight mesh has none.
func (m *Mesh) OpenEdges() int {
	undirected := make(map[edge]int)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			undirected[edge{a, b}]++
		}
	}
	count := 0
	for _, n := range undirected {
		if n == 1 {
			count++
		}
	}
	return count
}

// Volume returns the signed enclosed volume in cubic millimeters.
// It is positive when triangles wind counter-clockwise from outside and only
// meaningful for closed meshes.
func (m *Mesh) Volume() float64 {
	var v float64
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		v += a.Dot(b.Cross(c)) / 6
	}
	return v
}
