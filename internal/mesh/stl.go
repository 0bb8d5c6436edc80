package mesh

import (
	"github.com/Faultbox/lithophane/pkg/formats"
	"github.com/Faultbox/lithophane/pkg/math"
)

// ToSTL converts the mesh to STL facets named name. Facet normals are the
// unit normal of each triangle's winding; per-vertex normals are not used.
func (m *Mesh) ToSTL(name string) *formats.STL {
	s := &formats.STL{
		Name:   name,
		Facets: make([]formats.STLFacet, m.TriangleCount()),
	}
	for i := range s.Facets {
		a, b, c := m.Triangle(i)
		s.Facets[i] = formats.STLFacet{
			Normal:   FacetNormal(a, b, c).Array(),
			Vertices: [3][3]float32{a.Array(), b.Array(), c.Array()},
		}
	}
	return s
}

// FromSTL rebuilds an indexed mesh from STL facets, merging vertices with
// identical coordinates.
func FromSTL(s *formats.STL) *Mesh {
	m := &Mesh{Indices: make([]uint32, 0, 3*len(s.Facets))}
	vertMap := make(map[[3]float32]uint32)

	for _, f := range s.Facets {
		for _, v := range f.Vertices {
			idx, ok := vertMap[v]
			if !ok {
				idx = uint32(len(m.Vertices))
				m.Vertices = append(m.Vertices, math.FromArray(v))
				vertMap[v] = idx
			}
			m.Indices = append(m.Indices, idx)
		}
	}
	return m
}
