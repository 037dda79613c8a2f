// Package ridge carves a ridge line into a generated terrain.
//
// The pass picks separated peaks, links consecutive peaks with the cheapest
// path over the vertex grid (horizontal distance plus a penalty on height
// change, so the path stays on high ground), and flattens everything else.
// It runs on a finished mesh and is independent of terrain generation.
package ridge

import (
	"container/heap"
	"errors"
	gomath "math"
	"sort"

	"github.com/Faultbox/terragen/internal/engine/terrain"
	"github.com/Faultbox/terragen/pkg/math"
)

// ErrNoPeaks is returned when the terrain has fewer than two usable peaks.
var ErrNoPeaks = errors.New("ridge: fewer than two peaks")

// ErrNoPath is returned when two peaks cannot be connected.
var ErrNoPath = errors.New("ridge: peaks are not connected")

const diagonal = float32(gomath.Sqrt2)

// neighbours lists the 8-connected grid offsets; odd entries are diagonal.
var neighbours = [8][2]int{
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
}

// Options controls peak selection and path cost.
type Options struct {
	MinHeight     float32 // Lowest height a peak may have
	MinSeparation float32 // Peaks closer than this to an accepted peak are dropped
	HeightWeight  float32 // Cost per unit of height change along the path
	FlattenHeight float32 // Height given to every vertex off the ridge
}

// DefaultOptions returns options tuned for a terrain of the given amplitude.
func DefaultOptions(amplitude float64) Options {
	return Options{
		MinHeight:     float32(amplitude / 2),
		MinSeparation: 4,
		HeightWeight:  4,
		FlattenHeight: 0,
	}
}

// Path is a ridge line through the vertex grid.
type Path struct {
	Peaks    []int // Peak vertex indices in traversal order
	Vertices []int // Every vertex on the line in traversal order, peaks included
}

// FindPeaks returns separated local maxima at or above opts.MinHeight,
// ordered by ground distance from the grid origin. Ties keep row-major order.
func FindPeaks(m *terrain.Mesh, opts Options) []int {
	res := m.Resolution
	var peaks []int

	for z := range res {
		for x := range res {
			i := m.Index(x, z)
			p := math.Vec3From(m.Positions[i])
			if p.Y < opts.MinHeight || !isLocalMax(m, x, z) {
				continue
			}

			separated := true
			for _, other := range peaks {
				if p.Distance(math.Vec3From(m.Positions[other])) < opts.MinSeparation {
					separated = false
					break
				}
			}
			if separated {
				peaks = append(peaks, i)
			}
		}
	}

	origin := math.Vec2{}
	sort.SliceStable(peaks, func(a, b int) bool {
		da := math.Vec3From(m.Positions[peaks[a]]).XZ().Distance(origin)
		db := math.Vec3From(m.Positions[peaks[b]]).XZ().Distance(origin)
		return da < db
	})
	return peaks
}

// isLocalMax reports whether vertex (x, z) is at least as high as its neighbours.
func isLocalMax(m *terrain.Mesh, x, z int) bool {
	h := m.Positions[m.Index(x, z)][1]
	for _, d := range neighbours {
		nx, nz := x+d[0], z+d[1]
		if nx < 0 || nz < 0 || nx >= m.Resolution || nz >= m.Resolution {
			continue
		}
		if m.Positions[m.Index(nx, nz)][1] > h {
			return false
		}
	}
	return true
}

// Trace finds the peaks of m and links them into one ridge line.
func Trace(m *terrain.Mesh, opts Options) (*Path, error) {
	peaks := FindPeaks(m, opts)
	if len(peaks) < 2 {
		return nil, ErrNoPeaks
	}

	path := &Path{Peaks: peaks, Vertices: []int{peaks[0]}}
	for i := 1; i < len(peaks); i++ {
		segment := findPath(m, peaks[i-1], peaks[i], opts.HeightWeight)
		if segment == nil {
			return nil, ErrNoPath
		}
		// The segment starts at the previous peak, already on the path.
		path.Vertices = append(path.Vertices, segment[1:]...)
	}
	return path, nil
}

// Carve sets every vertex off the path to flattenHeight and refreshes normals.
func Carve(m *terrain.Mesh, path *Path, flattenHeight float32) {
	onPath := make([]bool, len(m.Positions))
	for _, i := range path.Vertices {
		onPath[i] = true
	}

	for i := range m.Positions {
		if !onPath[i] {
			m.Positions[i][1] = flattenHeight
		}
	}
	m.RecomputeNormals()
}

// findPath runs A* from start to goal over the vertex grid.
// Returns nil if no path exists.
func findPath(m *terrain.Mesh, start, goal int, heightWeight float32) []int {
	res := m.Resolution
	step := m.Size / float32(res)

	nodes := make([]*pathNode, len(m.Positions))
	open := &pathHeap{}
	heap.Init(open)

	startNode := &pathNode{index: start, f: heuristic(res, start, goal, step)}
	nodes[start] = startNode
	heap.Push(open, startNode)

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		if current.index == goal {
			return reconstructPath(current)
		}
		current.closed = true

		cx, cz := current.index%res, current.index/res
		ch := m.Positions[current.index][1]

		for i, d := range neighbours {
			nx, nz := cx+d[0], cz+d[1]
			if nx < 0 || nz < 0 || nx >= res || nz >= res {
				continue
			}
			ni := nz*res + nx

			neighbor := nodes[ni]
			if neighbor != nil && neighbor.closed {
				continue
			}

			moveCost := step
			if i%2 == 1 {
				moveCost = step * diagonal
			}
			g := current.g + moveCost + heightWeight*math.Abs(m.Positions[ni][1]-ch)

			if neighbor == nil {
				neighbor = &pathNode{
					index:  ni,
					g:      g,
					f:      g + heuristic(res, ni, goal, step),
					parent: current,
				}
				nodes[ni] = neighbor
				heap.Push(open, neighbor)
			} else if g < neighbor.g {
				neighbor.f += g - neighbor.g
				neighbor.g = g
				neighbor.parent = current
				heap.Fix(open, neighbor.heapAt)
			}
		}
	}

	return nil
}

// heuristic is the octile ground distance between two vertices. Height change
// only adds cost, so it never overestimates.
func heuristic(res, from, to int, step float32) float32 {
	dx := abs(from%res - to%res)
	dz := abs(from/res - to/res)
	if dx < dz {
		dx, dz = dz, dx
	}
	return (float32(dz)*diagonal + float32(dx-dz)) * step
}

func reconstructPath(node *pathNode) []int {
	var path []int
	for node != nil {
		path = append(path, node.index)
		node = node.parent
	}
	// Reverse path (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
