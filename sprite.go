package sprig

import "math"

// Sprite draws a Texture with a transform, anchor, tint and blend mode.
// World-space corners are cached and recomputed only when the transform,
// the texture frame or the anchor changed.
type Sprite struct {
	Transform

	Name      string
	Tint      Color
	Alpha     float64
	BlendMode BlendMode
	// Shader, when set, replaces the shared multi-texture shader.
	Shader  Shader
	Visible bool

	texture     *Texture
	anchor      Vec2
	anchorDirty bool

	vertexData        [8]float32
	cachedTransformID int
	cachedTextureID   int
	cachedTexture     *Texture
	boundsDirty       bool
	bounds            Rect
}

// NewSprite creates a visible sprite showing tex.
func NewSprite(name string, tex *Texture) *Sprite {
	return &Sprite{
		Transform:   NewTransform(),
		Name:        name,
		Tint:        ColorWhite,
		Alpha:       1,
		Visible:     true,
		texture:     tex,
		anchorDirty: true,
	}
}

// Texture returns the displayed texture.
func (s *Sprite) Texture() *Texture { return s.texture }

// SetTexture changes the displayed texture.
func (s *Sprite) SetTexture(tex *Texture) {
	s.texture = tex
}

// Anchor returns the normalized origin of the texture.
func (s *Sprite) Anchor() Vec2 { return s.anchor }

// SetAnchor sets the texture origin: (0, 0) is the top-left corner and
// (1, 1) the bottom-right.
func (s *Sprite) SetAnchor(x, y float64) {
	if s.anchor.X == x && s.anchor.Y == y {
		return
	}
	s.anchor = Vec2{x, y}
	s.anchorDirty = true
}

// stale reports whether the cached corners are out of date.
func (s *Sprite) stale(transformID int) bool {
	return s.anchorDirty ||
		s.cachedTransformID != transformID ||
		s.cachedTexture != s.texture ||
		s.cachedTextureID != s.texture.updateID
}

// calculateVertices refreshes the cached world-space corners when stale.
func (s *Sprite) calculateVertices() {
	transformID := s.UpdateID()
	if !s.stale(transformID) {
		return
	}
	s.cachedTransformID = transformID
	s.cachedTexture = s.texture
	s.cachedTextureID = s.texture.updateID
	s.anchorDirty = false
	s.boundsDirty = true

	wt := s.world
	a, b, c, d, tx, ty := wt[0], wt[1], wt[2], wt[3], wt[4], wt[5]

	tex := s.texture
	w1 := tex.trim.X - s.anchor.X*tex.orig.X
	w0 := w1 + tex.frame.Width
	h1 := tex.trim.Y - s.anchor.Y*tex.orig.Y
	h0 := h1 + tex.frame.Height

	vd := &s.vertexData
	vd[0] = float32(a*w1 + c*h1 + tx) // TL
	vd[1] = float32(b*w1 + d*h1 + ty)
	vd[2] = float32(a*w0 + c*h1 + tx) // TR
	vd[3] = float32(b*w0 + d*h1 + ty)
	vd[4] = float32(a*w0 + c*h0 + tx) // BR
	vd[5] = float32(b*w0 + d*h0 + ty)
	vd[6] = float32(a*w1 + c*h0 + tx) // BL
	vd[7] = float32(b*w1 + d*h0 + ty)
}

// VertexData returns the world-space corners in top-left, top-right,
// bottom-right, bottom-left order.
func (s *Sprite) VertexData() [8]float32 {
	if s.texture == nil {
		return [8]float32{}
	}
	s.calculateVertices()
	return s.vertexData
}

// Bounds returns the world-space axis-aligned bounding box.
func (s *Sprite) Bounds() Rect {
	if s.texture == nil {
		return Rect{}
	}
	s.calculateVertices()
	if !s.boundsDirty {
		return s.bounds
	}
	vd := &s.vertexData
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < 8; i += 2 {
		x, y := float64(vd[i]), float64(vd[i+1])
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	s.bounds = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	s.boundsDirty = false
	return s.bounds
}

// DrawRequest fills req for this frame. It reports false when there is
// nothing to draw.
func (s *Sprite) DrawRequest(req *SpriteDrawRequest) bool {
	if !s.Visible || s.texture == nil || s.Alpha <= 0 {
		return false
	}
	uvs, ok := s.texture.UVs()
	if !ok {
		return false
	}
	s.calculateVertices()
	req.VertexData = s.vertexData
	req.Texture = s.texture.base
	req.UVs = uvs
	req.Tint = PackTint(s.Tint, s.Alpha)
	req.BlendMode = s.BlendMode
	req.Shader = s.Shader
	return true
}
