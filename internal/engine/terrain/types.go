// Package terrain generates heightmapped landscape meshes from seeded fractal noise.
package terrain

// Mesh holds the complete terrain mesh data ready for GPU upload.
// Positions, UVs and Normals are parallel arrays indexed by z*Resolution + x.
type Mesh struct {
	Positions [][3]float32
	UVs       [][2]float32
	Normals   [][3]float32
	Indices   []uint32

	Resolution int     // Vertices per side
	Size       float32 // World extent covered by the grid along X and Z
	Bounds     Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexGrid is the sampled, not yet triangulated, terrain surface.
type VertexGrid struct {
	Resolution int
	Positions  [][3]float32
	UVs        [][2]float32
}

// Index returns the linear vertex index of grid point (x, z).
func (g *VertexGrid) Index(x, z int) int {
	return z*g.Resolution + x
}
