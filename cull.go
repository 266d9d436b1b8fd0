package sprig

// Bounded is implemented by drawables that track their own world-space
// bounding box. Sprite caches its box and recomputes it only after a change.
type Bounded interface {
	Bounds() Rect
}

// quadAABB returns the axis-aligned box around the four corners of a quad.
// Zero allocations.
func quadAABB(vd *[8]float32) Rect {
	minX, maxX := vd[0], vd[0]
	minY, maxY := vd[1], vd[1]
	for i := 2; i < 8; i += 2 {
		minX, maxX = min(minX, vd[i]), max(maxX, vd[i])
		minY, maxY = min(minY, vd[i+1]), max(maxY, vd[i+1])
	}
	return Rect{
		X:      float64(minX),
		Y:      float64(minY),
		Width:  float64(maxX - minX),
		Height: float64(maxY - minY),
	}
}

// itemBounds prefers the item's cached bounds and falls back to the quad
// in req, which must already be filled.
func itemBounds(item Drawable, req *SpriteDrawRequest) Rect {
	if b, ok := item.(Bounded); ok {
		return b.Bounds()
	}
	return quadAABB(&req.VertexData)
}

// shouldCull reports whether aabb lies entirely outside view. Boxes with no
// area information are never culled.
func shouldCull(aabb, view Rect) bool {
	if aabb.Width == 0 && aabb.Height == 0 {
		return false
	}
	return !aabb.Intersects(view)
}
