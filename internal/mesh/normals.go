package mesh

import "github.com/Faultbox/lithophane/pkg/math"

// ComputeNormals sets area-weighted smooth per-vertex normals.
// The unnormalized cross product of each triangle is accumulated onto its
// corners, so larger faces pull harder.
func (m *Mesh) ComputeNormals() {
	sums := make([]math.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := m.Vertices[ia], m.Vertices[ib], m.Vertices[ic]
		n := b.Sub(a).Cross(c.Sub(a))
		sums[ia] = sums[ia].Add(n)
		sums[ib] = sums[ib].Add(n)
		sums[ic] = sums[ic].Add(n)
	}
	for i := range sums {
		sums[i] = sums[i].Normalize()
	}
	m.Normals = sums
}

// FacetNormal returns the unit normal of triangle (a, b, c).
func FacetNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
