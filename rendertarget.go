package sprig

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTarget is a draw destination.
type RenderTarget interface {
	Size() (w, h int)
}

// ebitenTarget is implemented by targets the Ebitengine device can draw into.
type ebitenTarget interface {
	RenderTarget
	Image() *ebiten.Image
}

// Screen wraps the image passed to ebiten.Game.Draw. Reuse one Screen
// across frames and call Set each frame.
type Screen struct {
	image *ebiten.Image
}

// NewScreen wraps img.
func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{image: img}
}

// Set replaces the wrapped image.
func (s *Screen) Set(img *ebiten.Image) {
	s.image = img
}

// Image returns the wrapped image.
func (s *Screen) Image() *ebiten.Image {
	return s.image
}

// Size returns the image size in pixels.
func (s *Screen) Size() (w, h int) {
	if s.image == nil {
		return 0, 0
	}
	b := s.image.Bounds()
	return b.Dx(), b.Dy()
}

// RenderTexture is a persistent offscreen canvas. Render into it with
// Renderer.Render, then display it through its BaseTexture.
type RenderTexture struct {
	image *ebiten.Image
	base  *BaseTexture
	w, h  int
}

// NewRenderTexture creates an offscreen canvas of the given size.
func NewRenderTexture(w, h int) *RenderTexture {
	img := ebiten.NewImage(w, h)
	return &RenderTexture{
		image: img,
		base:  NewBaseTexture(img),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image.
func (rt *RenderTexture) Image() *ebiten.Image {
	return rt.image
}

// Size returns the texture size in pixels.
func (rt *RenderTexture) Size() (w, h int) {
	return rt.w, rt.h
}

// BaseTexture returns a texture source sampling this canvas. The Ebitengine
// device samples the canvas image directly instead of copying it.
func (rt *RenderTexture) BaseTexture() *BaseTexture {
	return rt.base
}

// Clear fills the texture with transparent black.
func (rt *RenderTexture) Clear() {
	rt.image.Clear()
}

// Fill fills the entire texture with c.
func (rt *RenderTexture) Fill(c Color) {
	rt.image.Fill(c.toRGBA())
}

// Dispose releases the GPU-side image. The RenderTexture must not be used
// afterward.
func (rt *RenderTexture) Dispose() {
	rt.base.Dispose()
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
}
