package sprig

import (
	"fmt"
	"image"
	_ "image/png"
	"io"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextureSource yields the per-context handle the batching renderer binds.
// A nil handle means the pixels are not available yet; the sprite is skipped
// this frame and picked up once the source becomes ready.
type TextureSource interface {
	TextureHandle(ctx *RenderContext) *TextureHandle
}

// TextureHandle is a BaseTexture's presence on one RenderContext. The GPU
// texture is uploaded lazily when the handle is first bound, and again after
// the image changes or the context is restored.
type TextureHandle struct {
	base *BaseTexture
	gpu  GPUTexture

	generation uint32 // context generation gpu was uploaded in
	version    int    // base.version uploaded into gpu

	// enabledTick equals the context tick while the handle occupies a unit
	// in the open batch group; unit is that unit.
	enabledTick uint32
	unit        int
}

// Base returns the texture this handle belongs to.
func (h *TextureHandle) Base() *BaseTexture { return h.base }

// Unit returns the texture unit assigned during the most recent flush.
func (h *TextureHandle) Unit() int { return h.unit }

// gpuTexture returns an up-to-date GPU texture, uploading if needed.
func (h *TextureHandle) gpuTexture(ctx *RenderContext) (GPUTexture, error) {
	if h.gpu != nil && h.generation == ctx.generation && h.version == h.base.version {
		return h.gpu, nil
	}
	if h.gpu != nil && h.generation == ctx.generation {
		h.gpu.Dispose()
	}
	h.gpu = nil
	t, err := ctx.device.NewTexture(h.base.img)
	if err != nil {
		return nil, err
	}
	h.gpu = t
	h.generation = ctx.generation
	h.version = h.base.version
	return t, nil
}

// baseTextureIDCounter is a plain counter; sprig is single-threaded.
var baseTextureIDCounter uint32

// BaseTexture owns source pixels. It may be created before its pixels exist
// (for example while an asset loads) and become ready later via SetImage.
type BaseTexture struct {
	id      uint32
	img     image.Image
	width   int
	height  int
	version int
	handles map[uint32]*TextureHandle // keyed by RenderContext.ID
}

// NewBaseTexture creates a ready texture from img.
func NewBaseTexture(img image.Image) *BaseTexture {
	b := NewPendingBaseTexture(0, 0)
	b.SetImage(img)
	return b
}

// LoadBaseTexture decodes an encoded image (PNG, or any format whose
// decoder is registered) into a ready texture.
func LoadBaseTexture(r io.Reader) (*BaseTexture, error) {
	img, _, err := ebitenutil.NewImageFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("sprig: decode texture: %w", err)
	}
	return NewBaseTexture(img), nil
}

// NewPendingBaseTexture creates a texture of the given size whose pixels are
// not available yet. Sprites using it are skipped until SetImage is called.
func NewPendingBaseTexture(w, h int) *BaseTexture {
	baseTextureIDCounter++
	return &BaseTexture{
		id:      baseTextureIDCounter,
		width:   w,
		height:  h,
		handles: make(map[uint32]*TextureHandle),
	}
}

// ID returns the texture's process-unique identifier.
func (b *BaseTexture) ID() uint32 { return b.id }

// SetImage supplies (or replaces) the pixels. Existing GPU copies are
// re-uploaded on their next bind.
func (b *BaseTexture) SetImage(img image.Image) {
	b.img = img
	if img != nil {
		r := img.Bounds()
		b.width, b.height = r.Dx(), r.Dy()
	}
	b.version++
}

// Ready reports whether pixels are available.
func (b *BaseTexture) Ready() bool {
	return b.img != nil && b.width > 0 && b.height > 0
}

// Size returns the texture size in pixels.
func (b *BaseTexture) Size() (w, h int) {
	return b.width, b.height
}

// Image returns the source pixels, or nil while pending.
func (b *BaseTexture) Image() image.Image {
	return b.img
}

// TextureHandle implements TextureSource. No GPU work happens here.
func (b *BaseTexture) TextureHandle(ctx *RenderContext) *TextureHandle {
	if !b.Ready() {
		return nil
	}
	h, ok := b.handles[ctx.id]
	if !ok {
		h = &TextureHandle{base: b}
		b.handles[ctx.id] = h
	}
	return h
}

// Dispose releases every GPU copy of the texture. The pixels are kept, so
// the texture uploads again if it is drawn later.
func (b *BaseTexture) Dispose() {
	for id, h := range b.handles {
		if h.gpu != nil {
			h.gpu.Dispose()
		}
		delete(b.handles, id)
	}
}

// Texture is a frame within a BaseTexture: the region sprites display.
type Texture struct {
	base *BaseTexture

	// Frame is the region in base pixels, in display orientation.
	frame Rect
	// rotated means the region is stored 90 degrees clockwise in the base.
	rotated bool
	// orig is the untrimmed size; trim is the offset of frame within it.
	orig Vec2
	trim Vec2

	uvs        [4]uint32
	uvsVersion int // base.version the uvs were computed against, 0 = never

	updateID int
}

// NewTexture creates a texture covering the whole of base.
func NewTexture(base *BaseTexture) *Texture {
	w, h := base.Size()
	return NewTextureFrame(base, Rect{Width: float64(w), Height: float64(h)})
}

// NewTextureFrame creates a texture showing frame of base.
func NewTextureFrame(base *BaseTexture, frame Rect) *Texture {
	t := &Texture{base: base}
	t.SetFrame(frame)
	return t
}

// Base returns the underlying BaseTexture.
func (t *Texture) Base() *BaseTexture { return t.base }

// Frame returns the displayed region in base pixels.
func (t *Texture) Frame() Rect { return t.frame }

// SetFrame changes the displayed region. The untrimmed size resets to the
// frame size.
func (t *Texture) SetFrame(frame Rect) {
	t.frame = frame
	t.orig = Vec2{frame.Width, frame.Height}
	t.trim = Vec2{}
	t.uvsVersion = 0
	t.updateID++
}

// SetTrim records that frame was cut from an untrimmed image of size orig,
// placed at offset within it.
func (t *Texture) SetTrim(orig, offset Vec2) {
	t.orig = orig
	t.trim = offset
	t.updateID++
}

// SetRotated marks the frame as stored 90 degrees clockwise in the base.
func (t *Texture) SetRotated(rotated bool) {
	t.rotated = rotated
	t.uvsVersion = 0
	t.updateID++
}

// Width returns the untrimmed display width.
func (t *Texture) Width() float64 { return t.orig.X }

// Height returns the untrimmed display height.
func (t *Texture) Height() float64 { return t.orig.Y }

// UpdateID changes whenever the frame geometry changes.
func (t *Texture) UpdateID() int { return t.updateID }

// UVs returns the packed texture coordinates of the four corners in
// top-left, top-right, bottom-right, bottom-left order. ok is false until the
// base texture is ready.
func (t *Texture) UVs() (uvs [4]uint32, ok bool) {
	if !t.base.Ready() {
		return uvs, false
	}
	if t.uvsVersion != t.base.version {
		t.updateUVs()
	}
	return t.uvs, true
}

func (t *Texture) updateUVs() {
	bw, bh := t.base.Size()
	tw, th := float32(bw), float32(bh)
	f := t.frame
	x0 := float32(f.X) / tw
	y0 := float32(f.Y) / th
	if t.rotated {
		// Stored rect is Height x Width.
		x1 := float32(f.X+f.Height) / tw
		y1 := float32(f.Y+f.Width) / th
		t.uvs = [4]uint32{
			PackUV(x1, y0), // TL
			PackUV(x1, y1), // TR
			PackUV(x0, y1), // BR
			PackUV(x0, y0), // BL
		}
	} else {
		x1 := float32(f.X+f.Width) / tw
		y1 := float32(f.Y+f.Height) / th
		t.uvs = [4]uint32{
			PackUV(x0, y0),
			PackUV(x1, y0),
			PackUV(x1, y1),
			PackUV(x0, y1),
		}
	}
	t.uvsVersion = t.base.version
}
