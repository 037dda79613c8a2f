package ridge

// pathNode is one grid vertex in the A* search.
type pathNode struct {
	index  int     // Linear vertex index
	g      float32 // Cost from start
	f      float32 // g + heuristic
	parent *pathNode
	closed bool
	heapAt int // Index in heap
}

// pathHeap implements a min-priority queue on f.
type pathHeap []*pathNode

func (h pathHeap) Len() int { return len(h) }

func (h pathHeap) Less(i, j int) bool {
	if h[i].f == h[j].f {
		return h[i].index < h[j].index
	}
	return h[i].f < h[j].f
}

func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapAt = i
	h[j].heapAt = j
}

func (h *pathHeap) Push(x any) {
	node := x.(*pathNode)
	node.heapAt = len(*h)
	*h = append(*h, node)
}

func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.heapAt = -1
	*h = old[:n-1]
	return node
}
