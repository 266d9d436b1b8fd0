package sprig

import "image"

// Device is the GPU collaborator consumed by the batching renderer. It is
// stateful in the manner of a GL context: bindings persist until changed, and
// DrawElements draws with whatever is currently bound.
//
// A Device is used from a single goroutine. Calls made while IsContextLost
// reports true must be safe no-ops.
type Device interface {
	// MaxTextureImageUnits reports how many textures a fragment stage can
	// sample in one draw.
	MaxTextureImageUnits() int

	// CompileShader compiles a Kage program.
	CompileShader(src []byte) (Shader, error)

	// NewTexture uploads img and returns its GPU texture.
	NewTexture(img image.Image) (GPUTexture, error)

	// NewVertexSlot allocates a vertex buffer and its attribute layout.
	NewVertexSlot() (VertexSlot, error)

	// SetIndices uploads the shared quad index buffer.
	SetIndices(indices []uint32)

	BindTarget(t RenderTarget)
	UseShader(s Shader)
	SetUniforms(u Uniforms)
	SetBlend(b BlendMode)
	BindTexture(unit int, t GPUTexture)
	BindVertexSlot(v VertexSlot)

	// DrawElements draws count indices starting at index offset first.
	DrawElements(first, count int)

	// IsContextLost reports whether GPU objects are currently invalid.
	IsContextLost() bool
}

// Shader is a compiled program.
type Shader interface {
	Dispose()
}

// GPUTexture is a texture living on the device.
type GPUTexture interface {
	Size() (w, h int)
	Dispose()
}

// VertexSlot is a vertex buffer paired with its attribute layout. Each flush
// within a frame writes a different slot so the GPU never reads a buffer
// that is being rewritten.
type VertexSlot interface {
	// Upload replaces the slot contents with data, interleaved at
	// VertexStride bytes per vertex.
	Upload(data []byte)
	Dispose()
}

// UniformID names a uniform known to the sprite shaders.
type UniformID uint8

const (
	// UniformTint is a premultiplied RGBA color multiplied into every fragment.
	UniformTint UniformID = iota
	uniformCount
)

// uniformNames are the Kage variable names, indexed by UniformID.
var uniformNames = [uniformCount]string{
	UniformTint: "Tint",
}

// Uniforms holds the values of every sprite-shader uniform, indexed by
// UniformID.
type Uniforms [uniformCount][4]float32

// defaultUniforms leaves every fragment unchanged.
var defaultUniforms = Uniforms{
	UniformTint: {1, 1, 1, 1},
}
