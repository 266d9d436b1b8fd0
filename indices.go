package sprig

// IndicesForQuads returns the triangle index list for n quads: two triangles
// per quad sharing the diagonal from corner 0 to corner 2.
//
//	quad i -> 4i, 4i+1, 4i+2, 4i, 4i+2, 4i+3
func IndicesForQuads(n int) []uint32 {
	if n <= 0 {
		return []uint32{}
	}
	indices := make([]uint32, n*indicesPerQuad)
	for i, j := 0, uint32(0); i < len(indices); i, j = i+indicesPerQuad, j+verticesPerQuad {
		indices[i+0] = j + 0
		indices[i+1] = j + 1
		indices[i+2] = j + 2
		indices[i+3] = j + 0
		indices[i+4] = j + 2
		indices[i+5] = j + 3
	}
	return indices
}
