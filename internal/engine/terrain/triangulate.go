package terrain

// Triangulate returns the index buffer for a resolution × resolution grid.
//
// Each cell with root r = z*res + x becomes two triangles sharing the diagonal
// r -> r+res+1:
//
//	r+res ---- r+res+1
//	  |  A    /  |
//	  |     /    |
//	  |   /   B  |
//	  r ------ r+1
//
// Both are wound so their normals point towards +Y.
func Triangulate(resolution int) []uint32 {
	if resolution <= 1 {
		return []uint32{}
	}

	cells := resolution - 1
	indices := make([]uint32, 0, 6*cells*cells)
	res := uint32(resolution)

	for z := range uint32(cells) {
		for x := range uint32(cells) {
			root := z*res + x

			indices = append(indices,
				root, root+res, root+res+1, // A
				root, root+res+1, root+1, // B
			)
		}
	}
	return indices
}
