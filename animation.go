package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Sprite simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenTint) and call Update(dt) each frame. The group writes the values
// and marks the sprite's transform dirty, so the cached corners are
// recomputed on the next draw.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Sprite
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// Stop finishes the group where it is. Fields keep their current values.
func (g *TweenGroup) Stop() {
	g.Done = true
}

// TweenPosition animates sprite.X and sprite.Y to the given coordinates.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: s}
	g.tweens[0] = gween.New(float32(s.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Y), float32(toY), duration, fn)
	g.fields[0] = &s.X
	g.fields[1] = &s.Y
	return g
}

// TweenScale animates sprite.ScaleX and sprite.ScaleY.
func TweenScale(s *Sprite, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: s}
	g.tweens[0] = gween.New(float32(s.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(s.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &s.ScaleX
	g.fields[1] = &s.ScaleY
	return g
}

// TweenTint animates all four components of sprite.Tint.
func TweenTint(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: s}
	g.tweens[0] = gween.New(float32(s.Tint.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(s.Tint.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(s.Tint.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(s.Tint.A), float32(to.A), duration, fn)
	g.fields[0] = &s.Tint.R
	g.fields[1] = &s.Tint.G
	g.fields[2] = &s.Tint.B
	g.fields[3] = &s.Tint.A
	return g
}

// TweenAlpha animates sprite.Alpha.
func TweenAlpha(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.Alpha), float32(to), duration, fn)
	g.fields[0] = &s.Alpha
	return g
}

// TweenRotation animates sprite.Rotation (radians).
func TweenRotation(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.Rotation), float32(to), duration, fn)
	g.fields[0] = &s.Rotation
	return g
}
