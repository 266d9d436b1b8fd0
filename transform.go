package sprig

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform positions a sprite. Set fields directly and call MarkDirty, or
// use the setters. The world matrix is recomputed lazily and only when the
// transform or its parent changed; UpdateID advances on every recompute so
// dependents can cache derived data.
type Transform struct {
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	parent   *Transform
	world    [6]float64
	dirty    bool
	worldID  int
	parentID int // parent.worldID at the last recompute
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, dirty: true}
}

// computeLocalTransform computes the local affine matrix from the transform
// properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Skew -> Rotate -> Translate(X, Y)
func computeLocalTransform(t *Transform) [6]float64 {
	sx := t.ScaleX
	sy := t.ScaleY

	sin, cos := math.Sincos(t.Rotation)

	var tanSkewX, tanSkewY float64
	if t.SkewX != 0 {
		tanSkewX = math.Tan(t.SkewX)
	}
	if t.SkewY != 0 {
		tanSkewY = math.Tan(t.SkewY)
	}

	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	px := t.PivotX
	py := t.PivotY
	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + t.X, rty + t.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// update recomputes the world matrix when this transform or its parent
// changed since the last call.
func (t *Transform) update() {
	parentWorld := identityTransform
	parentID := 0
	if t.parent != nil {
		t.parent.update()
		parentWorld = t.parent.world
		parentID = t.parent.worldID
	}
	if !t.dirty && t.worldID != 0 && parentID == t.parentID {
		return
	}
	t.world = multiplyAffine(parentWorld, computeLocalTransform(t))
	t.parentID = parentID
	t.dirty = false
	t.worldID++
}

// World returns the world matrix [a, b, c, d, tx, ty].
func (t *Transform) World() [6]float64 {
	t.update()
	return t.world
}

// UpdateID returns a counter that changes whenever the world matrix does.
func (t *Transform) UpdateID() int {
	t.update()
	return t.worldID
}

// SetParent makes t relative to p. A nil parent places t in world space.
func (t *Transform) SetParent(p *Transform) {
	t.parent = p
	t.dirty = true
}

// Parent returns the parent transform, or nil.
func (t *Transform) Parent() *Transform {
	return t.parent
}

// --- Transform property setters ---

// SetPosition sets X and Y and marks the transform dirty.
func (t *Transform) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
	t.dirty = true
}

// SetScale sets ScaleX and ScaleY and marks the transform dirty.
func (t *Transform) SetScale(sx, sy float64) {
	t.ScaleX = sx
	t.ScaleY = sy
	t.dirty = true
}

// SetRotation sets the rotation (in radians) and marks the transform dirty.
func (t *Transform) SetRotation(r float64) {
	t.Rotation = r
	t.dirty = true
}

// SetSkew sets SkewX and SkewY and marks the transform dirty.
func (t *Transform) SetSkew(sx, sy float64) {
	t.SkewX = sx
	t.SkewY = sy
	t.dirty = true
}

// SetPivot sets PivotX and PivotY and marks the transform dirty.
func (t *Transform) SetPivot(px, py float64) {
	t.PivotX = px
	t.PivotY = py
	t.dirty = true
}

// MarkDirty forces recomputation of the world matrix. Call it after setting
// fields directly.
func (t *Transform) MarkDirty() {
	t.dirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to local space.
func (t *Transform) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(t.World()), wx, wy)
}

// LocalToWorld converts a local-space point to world space.
func (t *Transform) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(t.World(), lx, ly)
}
