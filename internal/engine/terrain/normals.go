package terrain

import (
	"github.com/Faultbox/terragen/pkg/math"
)

// ComputeNormals returns smooth per-vertex normals for an indexed triangle list.
//
// Every triangle's unit face normal, (p1-p0) × (p2-p0), is added to each of its
// three vertices and the sums are normalized. Faces are not weighted by area or
// angle. Zero-area faces contribute nothing. A vertex no triangle touches gets +Y.
func ComputeNormals(positions [][3]float32, indices []uint32) [][3]float32 {
	sums := make([]math.Vec3, len(positions))

	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		p0 := math.Vec3From(positions[i0])
		p1 := math.Vec3From(positions[i1])
		p2 := math.Vec3From(positions[i2])

		face := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()

		sums[i0] = sums[i0].Add(face)
		sums[i1] = sums[i1].Add(face)
		sums[i2] = sums[i2].Add(face)
	}

	normals := make([][3]float32, len(positions))
	for i, sum := range sums {
		normals[i] = sum.NormalizeOr(math.Up).Array()
	}
	return normals
}
