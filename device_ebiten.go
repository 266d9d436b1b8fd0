package sprig

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenDevice implements Device on top of Ebitengine. Textures are
// *ebiten.Image, shaders are Kage programs, and every DrawElements becomes
// one DrawTrianglesShader32 call.
//
// Ebitengine restores its own GPU state after a context loss, so
// IsContextLost always reports false.
type EbitenDevice struct {
	op       ebiten.DrawTrianglesShaderOptions
	target   *ebiten.Image
	shader   *ebitenShader
	slot     *ebitenVertexSlot
	indices  []uint32
	uniforms map[string]any
}

// NewEbitenDevice creates a device. It may be created before ebiten.RunGame.
func NewEbitenDevice() *EbitenDevice {
	d := &EbitenDevice{
		uniforms: make(map[string]any, uniformCount),
	}
	for id := UniformID(0); id < uniformCount; id++ {
		d.uniforms[uniformNames[id]] = make([]float32, 4)
	}
	d.op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	d.op.Uniforms = d.uniforms
	return d
}

// MaxTextureImageUnits returns the number of source images a Kage program
// can sample.
func (d *EbitenDevice) MaxTextureImageUnits() int {
	return len(d.op.Images)
}

// CompileShader compiles a Kage program.
func (d *EbitenDevice) CompileShader(src []byte) (Shader, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, err
	}
	return &ebitenShader{shader: s}, nil
}

// NewTexture wraps an *ebiten.Image directly and copies any other image.
func (d *EbitenDevice) NewTexture(img image.Image) (GPUTexture, error) {
	if ei, ok := img.(*ebiten.Image); ok {
		return &ebitenTexture{image: ei}, nil
	}
	return &ebitenTexture{image: ebiten.NewImageFromImage(img), owned: true}, nil
}

// NewVertexSlot returns an empty vertex slot.
func (d *EbitenDevice) NewVertexSlot() (VertexSlot, error) {
	return &ebitenVertexSlot{}, nil
}

// SetIndices keeps the shared index buffer; draws slice into it.
func (d *EbitenDevice) SetIndices(indices []uint32) {
	d.indices = indices
}

// BindTarget selects the destination image. Targets that are not backed by
// an *ebiten.Image unbind the destination, and draws become no-ops.
func (d *EbitenDevice) BindTarget(t RenderTarget) {
	d.target = nil
	if et, ok := t.(ebitenTarget); ok {
		d.target = et.Image()
	}
}

// UseShader activates a shader compiled by this device.
func (d *EbitenDevice) UseShader(s Shader) {
	d.shader, _ = s.(*ebitenShader)
}

// SetUniforms copies u into the uniform map passed to Kage.
func (d *EbitenDevice) SetUniforms(u Uniforms) {
	for id := UniformID(0); id < uniformCount; id++ {
		copy(d.uniforms[uniformNames[id]].([]float32), u[id][:])
	}
}

// SetBlend sets the blend used by following draws.
func (d *EbitenDevice) SetBlend(b BlendMode) {
	d.op.Blend = b.EbitenBlend()
}

// BindTexture binds t as source image unit.
func (d *EbitenDevice) BindTexture(unit int, t GPUTexture) {
	if unit < 0 || unit >= len(d.op.Images) {
		return
	}
	if et, ok := t.(*ebitenTexture); ok {
		d.op.Images[unit] = et.image
	}
}

// BindVertexSlot selects the vertices following draws read.
func (d *EbitenDevice) BindVertexSlot(v VertexSlot) {
	d.slot, _ = v.(*ebitenVertexSlot)
}

// DrawElements draws indices [first, first+count) of the shared index buffer.
// Source images are unbound afterward so a deallocated image is never
// carried into a later draw.
func (d *EbitenDevice) DrawElements(first, count int) {
	defer func() {
		for i := range d.op.Images {
			d.op.Images[i] = nil
		}
	}()
	if d.target == nil || d.shader == nil || d.slot == nil || count <= 0 {
		return
	}
	if first < 0 || first+count > len(d.indices) {
		return
	}
	d.target.DrawTrianglesShader32(d.slot.vertices, d.indices[first:first+count], d.shader.shader, &d.op)
}

// IsContextLost always reports false; Ebitengine recovers transparently.
func (d *EbitenDevice) IsContextLost() bool {
	return false
}

type ebitenShader struct {
	shader *ebiten.Shader
}

func (s *ebitenShader) Dispose() {
	s.shader.Deallocate()
}

type ebitenTexture struct {
	image *ebiten.Image
	owned bool
}

func (t *ebitenTexture) Size() (w, h int) {
	b := t.image.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ebitenTexture) Dispose() {
	if t.owned {
		t.image.Deallocate()
	}
}

// ebitenVertexSlot decodes interleaved sprite vertices into ebiten.Vertex.
// The texture unit goes to Custom0 and the normalized UV to Custom1/Custom2,
// matching multiTextureShaderSrc.
type ebitenVertexSlot struct {
	vertices []ebiten.Vertex
}

func (s *ebitenVertexSlot) Upload(data []byte) {
	n := len(data) / VertexStride
	if cap(s.vertices) < n {
		s.vertices = make([]ebiten.Vertex, n)
	}
	s.vertices = s.vertices[:n]
	ne := binary.NativeEndian
	for i := range s.vertices {
		o := i * VertexStride
		u, v := UnpackUV(ne.Uint32(data[o+8:]))
		r, g, b, a := UnpackTint(ne.Uint32(data[o+12:]))
		s.vertices[i] = ebiten.Vertex{
			DstX:    math.Float32frombits(ne.Uint32(data[o:])),
			DstY:    math.Float32frombits(ne.Uint32(data[o+4:])),
			ColorR:  r,
			ColorG:  g,
			ColorB:  b,
			ColorA:  a,
			Custom0: math.Float32frombits(ne.Uint32(data[o+16:])),
			Custom1: u,
			Custom2: v,
		}
	}
}

func (s *ebitenVertexSlot) Dispose() {
	s.vertices = nil
}
