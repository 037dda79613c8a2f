package terrain

import (
	"github.com/Faultbox/terragen/pkg/math"
)

// Generate builds a terrain mesh from cfg.
// Invalid configs are rejected before any buffer is allocated.
func Generate(cfg GenerationConfig) (*Mesh, error) {
	field, err := NewHeightField(cfg)
	if err != nil {
		return nil, err
	}

	grid := BuildGrid(cfg, field)
	indices := Triangulate(grid.Resolution)

	mesh := &Mesh{
		Positions:  grid.Positions,
		UVs:        grid.UVs,
		Normals:    ComputeNormals(grid.Positions, indices),
		Indices:    indices,
		Resolution: grid.Resolution,
		Size:       float32(cfg.Size),
	}
	mesh.Bounds = computeBounds(mesh.Positions)

	return mesh, nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Index returns the linear vertex index of grid point (x, z).
func (m *Mesh) Index(x, z int) int {
	return z*m.Resolution + x
}

// RecomputeNormals refreshes normals and bounds after vertices were moved.
func (m *Mesh) RecomputeNormals() {
	m.Normals = ComputeNormals(m.Positions, m.Indices)
	m.Bounds = computeBounds(m.Positions)
}

// Centered returns the translation that puts the middle of the terrain at the
// world origin.
func (m *Mesh) Centered() math.Vec3 {
	return math.Vec3{X: -m.Size / 2, Z: -m.Size / 2}
}

func computeBounds(positions [][3]float32) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		updateBounds(&b, p)
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
