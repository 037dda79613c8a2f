package terrain

import (
	gomath "math"

	"github.com/Faultbox/terragen/pkg/math"
)

// HeightAt returns the bilinearly interpolated surface height at mesh-local
// position (x, z). Positions outside the grid are clamped to its edge.
func (m *Mesh) HeightAt(x, z float32) float32 {
	if m == nil || m.Resolution == 0 {
		return 0
	}
	if m.Resolution == 1 {
		return m.Positions[0][1]
	}

	step := m.Size / float32(m.Resolution)
	last := float32(m.Resolution - 1)
	cellFX := clampCell(x/step, last)
	cellFZ := clampCell(z/step, last)

	// The far edge belongs to the last cell
	cellX := min(int(cellFX), m.Resolution-2)
	cellZ := min(int(cellFZ), m.Resolution-2)

	// Fractional position within the cell
	fracX := math.Clamp(cellFX-float32(cellX), 0, 1)
	fracZ := math.Clamp(cellFZ-float32(cellZ), 0, 1)

	root := m.Index(cellX, cellZ)
	h00 := m.Positions[root][1]
	h10 := m.Positions[root+1][1]
	h01 := m.Positions[root+m.Resolution][1]
	h11 := m.Positions[root+m.Resolution+1][1]

	near := math.Lerp(h00, h10, fracX)
	far := math.Lerp(h01, h11, fracX)
	return math.Lerp(near, far, fracZ)
}

// clampCell limits a grid coordinate to [0, last] before it is truncated to a
// cell index. NaN maps to 0.
func clampCell(v, last float32) float32 {
	if gomath.IsNaN(float64(v)) {
		return 0
	}
	return math.Clamp(v, 0, last)
}
