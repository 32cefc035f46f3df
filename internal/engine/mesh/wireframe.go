package mesh

// ExtractWireframeIndices converts a triangle list into a line list by
// emitting the edges (a,b), (b,c), (c,a) of every triangle in order.
// Edges shared by adjacent triangles are emitted once per triangle.
// A trailing partial triangle is ignored.
func ExtractWireframeIndices(triangles []uint32) []uint32 {
	n := len(triangles) / 3 * 3
	lines := make([]uint32, 0, n*2)
	for i := 0; i < n; i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		lines = append(lines, a, b, b, c, c, a)
	}
	return lines
}

// BoundsWireframe creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func BoundsWireframe(b Bounds) []float32 {
	minX, minY, minZ := b.Min.X, b.Min.Y, b.Min.Z
	maxX, maxY, maxZ := b.Max.X, b.Max.Y, b.Max.Z
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
