package mesh

import "github.com/Faultbox/lithophane/pkg/math"

// Merge concatenates meshes into one. Vertex buffers are appended in order
// and each mesh's indices are offset by the vertices that precede it.
// Normals are kept only when every input carries them.
func Merge(meshes ...*Mesh) *Mesh {
	var nv, ni int
	withNormals := len(meshes) > 0
	for _, m := range meshes {
		nv += len(m.Vertices)
		ni += len(m.Indices)
		if m.Normals == nil {
			withNormals = false
		}
	}

	out := &Mesh{
		Vertices: make([]math.Vec3, 0, nv),
		Indices:  make([]uint32, 0, ni),
	}
	if withNormals {
		out.Normals = make([]math.Vec3, 0, nv)
	}
	for _, m := range meshes {
		offset := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, idx+offset)
		}
		if withNormals {
			out.Normals = append(out.Normals, m.Normals...)
		}
	}
	return out
}

// Transform applies a rigid transform in place. Normals are rotated and
// renormalized.
func (m *Mesh) Transform(mat math.Mat4) {
	for i, v := range m.Vertices {
		m.Vertices[i] = mat.TransformPoint(v)
	}
	for i, n := range m.Normals {
		m.Normals[i] = mat.TransformDirection(n).Normalize()
	}
}
