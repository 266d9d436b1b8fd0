package sprig

import (
	"math"
	"testing"
)

func assertVertices(t *testing.T, name string, got [8]float32, want [8]float32) {
	t.Helper()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

func newTestSprite(w, h int) *Sprite {
	return NewSprite("test", NewTexture(newTestBaseTexture(w, h)))
}

func TestSpriteVertexData(t *testing.T) {
	s := newTestSprite(10, 20)
	s.SetPosition(5, 5)
	assertVertices(t, "corners", s.VertexData(), [8]float32{5, 5, 15, 5, 15, 25, 5, 25})
}

func TestSpriteAnchor(t *testing.T) {
	s := newTestSprite(10, 20)
	s.SetAnchor(0.5, 0.5)
	assertVertices(t, "centered", s.VertexData(), [8]float32{-5, -10, 5, -10, 5, 10, -5, 10})

	s.SetAnchor(1, 1)
	assertVertices(t, "bottom-right", s.VertexData(), [8]float32{-10, -20, 0, -20, 0, 0, -10, 0})
}

func TestSpriteTrim(t *testing.T) {
	tex := NewTextureFrame(newTestBaseTexture(16, 16), Rect{Width: 6, Height: 6})
	tex.SetTrim(Vec2{10, 10}, Vec2{2, 3})
	s := NewSprite("trimmed", tex)
	assertVertices(t, "trimmed", s.VertexData(), [8]float32{2, 3, 8, 3, 8, 9, 2, 9})

	s.SetAnchor(0.5, 0.5)
	assertVertices(t, "trimmed centered", s.VertexData(), [8]float32{-3, -2, 3, -2, 3, 4, -3, 4})
}

func TestSpriteVerticesCached(t *testing.T) {
	s := newTestSprite(10, 10)
	s.VertexData()

	s.X = 100 // not marked dirty
	assertVertices(t, "stale", s.VertexData(), [8]float32{0, 0, 10, 0, 10, 10, 0, 10})

	s.MarkDirty()
	assertVertices(t, "fresh", s.VertexData(), [8]float32{100, 0, 110, 0, 110, 10, 100, 10})
}

func TestSpriteFollowsTextureFrame(t *testing.T) {
	tex := NewTexture(newTestBaseTexture(16, 16))
	s := NewSprite("frame", tex)
	s.VertexData()

	tex.SetFrame(Rect{Width: 4, Height: 2})
	assertVertices(t, "new frame", s.VertexData(), [8]float32{0, 0, 4, 0, 4, 2, 0, 2})

	other := NewTexture(newTestBaseTexture(8, 8))
	s.SetTexture(other)
	assertVertices(t, "new texture", s.VertexData(), [8]float32{0, 0, 8, 0, 8, 8, 0, 8})
}

func TestSpriteParent(t *testing.T) {
	parent := NewTransform()
	parent.SetPosition(100, 0)
	s := newTestSprite(10, 10)
	s.SetParent(&parent)
	s.SetPosition(5, 5)
	assertVertices(t, "child", s.VertexData(), [8]float32{105, 5, 115, 5, 115, 15, 105, 15})

	parent.SetPosition(200, 0)
	assertVertices(t, "moved parent", s.VertexData(), [8]float32{205, 5, 215, 5, 215, 15, 205, 15})
}

func TestSpriteBounds(t *testing.T) {
	s := newTestSprite(10, 20)
	s.SetRotation(math.Pi / 2)
	b := s.Bounds()
	want := Rect{X: -20, Y: 0, Width: 20, Height: 10}
	if math.Abs(b.X-want.X) > 1e-4 || math.Abs(b.Y-want.Y) > 1e-4 ||
		math.Abs(b.Width-want.Width) > 1e-4 || math.Abs(b.Height-want.Height) > 1e-4 {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}

	s.SetRotation(0)
	s.SetPosition(1, 2)
	if b := s.Bounds(); b != (Rect{X: 1, Y: 2, Width: 10, Height: 20}) {
		t.Errorf("Bounds after move = %+v", b)
	}
}

func TestSpriteBoundsFollowAnchor(t *testing.T) {
	s := newTestSprite(10, 10)
	s.Bounds()
	s.SetAnchor(0.5, 0.5)
	if b := s.Bounds(); b.X != -5 || b.Y != -5 {
		t.Errorf("Bounds after anchor = %+v, want origin (-5, -5)", b)
	}
}

func TestSpriteDrawRequest(t *testing.T) {
	s := newTestSprite(10, 10)
	s.Tint = Color{R: 1, G: 0, B: 0, A: 1}
	s.Alpha = 0.5
	s.BlendMode = BlendAdd

	var req SpriteDrawRequest
	if !s.DrawRequest(&req) {
		t.Fatal("DrawRequest = false for a visible sprite")
	}
	if req.Texture != TextureSource(s.Texture().Base()) {
		t.Error("request texture is not the sprite's base texture")
	}
	if req.Tint != PackTint(s.Tint, 0.5) {
		t.Errorf("Tint = %#x, want %#x", req.Tint, PackTint(s.Tint, 0.5))
	}
	if req.BlendMode != BlendAdd {
		t.Errorf("BlendMode = %+v, want BlendAdd", req.BlendMode)
	}
	wantUVs, _ := s.Texture().UVs()
	if req.UVs != wantUVs {
		t.Errorf("UVs = %#x, want %#x", req.UVs, wantUVs)
	}
	if req.VertexData != s.VertexData() {
		t.Error("VertexData differs from the sprite corners")
	}
}

func TestSpriteDrawRequestSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Sprite
	}{
		{"invisible", func() *Sprite { s := newTestSprite(4, 4); s.Visible = false; return s }},
		{"transparent", func() *Sprite { s := newTestSprite(4, 4); s.Alpha = 0; return s }},
		{"no texture", func() *Sprite { return NewSprite("empty", nil) }},
		{"pending texture", func() *Sprite {
			return NewSprite("pending", NewTextureFrame(NewPendingBaseTexture(4, 4), Rect{Width: 4, Height: 4}))
		}},
	}
	for _, tt := range tests {
		var req SpriteDrawRequest
		if tt.setup().DrawRequest(&req) {
			t.Errorf("%s: DrawRequest = true, want false", tt.name)
		}
	}
}

func TestSpriteNoTexture(t *testing.T) {
	s := NewSprite("empty", nil)
	if s.VertexData() != ([8]float32{}) || s.Bounds() != (Rect{}) {
		t.Error("sprite without texture should have empty geometry")
	}
}
