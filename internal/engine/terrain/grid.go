package terrain

import (
	"runtime"

	"github.com/alitto/pond/v2"
)

// rowsPerTask is the number of grid rows one pool task samples.
const rowsPerTask = 16

// BuildGrid samples field on a resolution × resolution grid spanning [0, size)².
// Vertices are stored row-major (z outer, x inner). Rows are sampled on a worker
// pool; every task owns a disjoint row range, so the result does not depend on
// the worker count.
func BuildGrid(cfg GenerationConfig, field *HeightField) *VertexGrid {
	res := int(cfg.Resolution)
	grid := &VertexGrid{
		Resolution: res,
		Positions:  make([][3]float32, res*res),
		UVs:        make([][2]float32, res*res),
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	if workers == 1 || res <= rowsPerTask {
		fillRows(grid, cfg.Size, field, 0, res)
		return grid
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for startZ := 0; startZ < res; startZ += rowsPerTask {
		endZ := min(startZ+rowsPerTask, res)

		group.Submit(func() {
			fillRows(grid, cfg.Size, field, startZ, endZ)
		})
	}
	// fillRows does not fail, so the group error is always nil.
	_ = group.Wait()

	return grid
}

// fillRows writes rows [startZ, endZ) of the grid.
func fillRows(grid *VertexGrid, size float64, field *HeightField, startZ, endZ int) {
	res := grid.Resolution
	step := size / float64(res)

	for z := startZ; z < endZ; z++ {
		wz := float64(z) * step
		for x := range res {
			wx := float64(x) * step
			i := z*res + x
			grid.Positions[i] = [3]float32{float32(wx), float32(field.Sample(wx, wz)), float32(wz)}
			grid.UVs[i] = [2]float32{float32(wx / size), float32(wz / size)}
		}
	}
}
