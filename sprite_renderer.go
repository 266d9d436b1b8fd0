package sprig

import (
	"fmt"
)

// Vertex layout: position (2 x float32), packed UV (uint32), packed tint
// (uint32), texture unit (float32).
const (
	floatsPerVertex = 5
	VertexStride    = floatsPerVertex * 4 // bytes
	verticesPerQuad = 4
	indicesPerQuad  = 6
	floatsPerQuad   = floatsPerVertex * verticesPerQuad
	bytesPerQuad    = VertexStride * verticesPerQuad
)

// SpriteDrawRequest is one textured quad submitted for the current frame.
// It is copied into the batch by Render and not retained after the flush.
type SpriteDrawRequest struct {
	// VertexData holds the four world-space corners (x, y pairs) in
	// top-left, top-right, bottom-right, bottom-left order.
	VertexData [8]float32
	// Texture supplies the GPU texture. A source that is not ready drops
	// the request.
	Texture TextureSource
	// UVs are the packed texture coordinates of the four corners, in the
	// same order as VertexData. See PackUV.
	UVs [4]uint32
	// Tint is a packed premultiplied color. See PackTint.
	Tint uint32
	// BlendMode is the blend function; the zero value means BlendNormal.
	BlendMode BlendMode
	// Shader, when set, replaces the shared multi-texture shader and puts
	// the request in a batch group of its own.
	Shader Shader
}

type pendingSprite struct {
	req    SpriteDrawRequest
	handle *TextureHandle
}

// SpriteRenderer accumulates sprite draw requests and turns them into as few
// draw calls as possible while preserving submission order.
//
// A SpriteRenderer is not safe for concurrent use and is not reentrant.
type SpriteRenderer struct {
	ctx         *RenderContext
	size        int
	maxTextures int
	debug       bool

	pending []pendingSprite

	// buffers[k] holds 2^k quads.
	buffers []*GeometryBuffer
	indices []uint32

	// slots grows by one whenever a frame flushes more often than ever
	// before; slotIndex is the next slot to write this frame.
	slots     []VertexSlot
	slotIndex int

	shaders  *shaderCache
	groups   batchGroupPool
	uniforms Uniforms

	// bound holds the resolved GPU textures of the group being drawn.
	bound []GPUTexture

	stats FrameStats
}

// NewSpriteRenderer creates a renderer drawing through ctx.
func NewSpriteRenderer(ctx *RenderContext) (*SpriteRenderer, error) {
	size := ctx.MaxBatchSize()
	r := &SpriteRenderer{
		ctx:         ctx,
		size:        size,
		maxTextures: ctx.MaxTextures(),
		debug:       ctx.opts.debug,
		pending:     make([]pendingSprite, 0, size),
		indices:     IndicesForQuads(size),
		uniforms:    defaultUniforms,
		bound:       make([]GPUTexture, 0, ctx.MaxTextures()),
	}
	for k := 0; k <= log2(size); k++ {
		r.buffers = append(r.buffers, NewGeometryBuffer((1<<k)*bytesPerQuad))
	}
	r.groups = newBatchGroupPool(size, r.maxTextures)
	r.shaders = newShaderCache(ctx.device, r.maxTextures)

	if err := r.initGPU(); err != nil {
		return nil, err
	}
	return r, nil
}

// initGPU creates the GPU objects that do not depend on the frame: the
// index buffer, one vertex slot and the minimum shader set.
func (r *SpriteRenderer) initGPU() error {
	r.ctx.device.SetIndices(r.indices)
	if len(r.slots) == 0 {
		s, err := r.ctx.device.NewVertexSlot()
		if err != nil {
			return fmt.Errorf("sprig: create vertex slot: %w", err)
		}
		r.slots = append(r.slots, s)
	}
	return r.shaders.reset()
}

// MaxTextures returns the number of textures one draw call may bind.
func (r *SpriteRenderer) MaxTextures() int { return r.maxTextures }

// MaxBatchSize returns the number of sprites buffered before an automatic flush.
func (r *SpriteRenderer) MaxBatchSize() int { return r.size }

// Pending returns the number of sprites waiting for the next flush.
func (r *SpriteRenderer) Pending() int { return len(r.pending) }

// BufferCapacity returns the capacity, in quads, of the geometry buffer a
// flush of pending sprites writes into: the next power of two.
func (r *SpriteRenderer) BufferCapacity(pending int) int {
	if pending > r.size {
		pending = r.size
	}
	return r.buffers[log2(nextPow2(pending))].Len() / bytesPerQuad
}

// Groups returns the batch groups produced by the most recent flush. The
// slice is reused by the next flush.
func (r *SpriteRenderer) Groups() []BatchGroup {
	return r.groups.closed()
}

// SetGlobalTint multiplies every sprite drawn by this renderer by c.
func (r *SpriteRenderer) SetGlobalTint(c Color) {
	a := float32(c.A)
	r.uniforms[UniformTint] = [4]float32{float32(c.R) * a, float32(c.G) * a, float32(c.B) * a, a}
}

// PrepareFrame is called once at the start of every frame. Vertex slots are
// rewritten from the first one on.
func (r *SpriteRenderer) PrepareFrame() {
	r.slotIndex = 0
}

// Start makes the renderer the active batcher.
func (r *SpriteRenderer) Start() {
	if r.ctx.Lost() {
		return
	}
	r.ctx.state.SetUniforms(r.uniforms)
}

// Stop flushes whatever is pending. Called when another renderer takes over
// or at the end of the frame.
func (r *SpriteRenderer) Stop() {
	r.Flush()
}

// Render queues req for drawing. No GPU work happens here. Requests whose
// texture is not ready are silently skipped. A full batch is flushed first.
func (r *SpriteRenderer) Render(req *SpriteDrawRequest) {
	if req == nil || req.Texture == nil {
		return
	}
	h := req.Texture.TextureHandle(r.ctx)
	if h == nil {
		r.stats.Dropped++
		return
	}
	if len(r.pending) == r.size {
		r.Flush()
	}
	r.pending = append(r.pending, pendingSprite{req: *req, handle: h})
	r.stats.Requests++
}

// Flush groups the pending sprites, uploads their vertices and issues one
// draw call per group. Flushing with nothing pending does nothing.
func (r *SpriteRenderer) Flush() {
	n := len(r.pending)
	if n == 0 {
		return
	}
	if r.ctx.Lost() {
		// Nothing drawn this frame survives a lost context anyway.
		r.stats.Aborted++
		r.clearPending()
		return
	}

	buf := r.buffers[log2(nextPow2(n))]
	r.buildGroups(buf)

	slot, err := r.nextVertexSlot()
	if err != nil {
		Logger().Warn("sprig: vertex slot unavailable, dropping batch", "sprites", n, "error", err)
		r.stats.Aborted++
		r.clearPending()
		return
	}
	slot.Upload(buf.Bytes[:n*bytesPerQuad])
	r.ctx.device.BindVertexSlot(slot)
	r.ctx.state.SetUniforms(r.uniforms)

	if r.drawGroups() {
		r.stats.Flushes++
	}
	r.clearPending()
}

// buildGroups partitions the pending sprites into batch groups and packs
// their vertices into buf.
//
// A group closes when a sprite changes the blend mode, carries a custom
// shader (or follows one), or needs a texture while all units are taken.
// Texture reuse inside the open group is detected with the context tick: a
// handle whose enabledTick equals the tick already holds a unit.
func (r *SpriteRenderer) buildGroups(buf *GeometryBuffer) {
	r.groups.clear()
	tick := r.ctx.nextTick()

	first := &r.pending[0]
	blend := first.req.BlendMode.normalized()
	shader := first.req.Shader
	group := r.groups.open(0, blend, shader)

	var current *TextureHandle
	textureCount := 0

	for i := range r.pending {
		sp := &r.pending[i]

		spBlend := sp.req.BlendMode.normalized()
		if sp.req.Shader != nil || sp.req.Shader != shader || spBlend != blend {
			blend = spBlend
			shader = sp.req.Shader
			if i > group.Start {
				// Force the texture check below to open a new group.
				current = nil
				textureCount = r.maxTextures
				tick = r.ctx.nextTick()
			} else {
				group.Blend = blend
				group.Shader = shader
			}
		}

		h := sp.handle
		if h != current {
			current = h
			if h.enabledTick != tick {
				if textureCount == r.maxTextures {
					tick = r.ctx.nextTick()
					group.Size = i - group.Start
					textureCount = 0
					group = r.groups.open(i, blend, shader)
				}
				h.enabledTick = tick
				h.unit = textureCount
				group.Textures = append(group.Textures, h)
				textureCount++
			}
		}

		packSprite(buf, i, &sp.req, h.unit)
	}
	group.Size = len(r.pending) - group.Start
}

// packSprite writes the four vertices of sprite index into buf.
func packSprite(buf *GeometryBuffer, index int, req *SpriteDrawRequest, unit int) {
	f, u := buf.Float32, buf.Uint32
	o := index * floatsPerQuad
	unitID := float32(unit)
	for v := 0; v < verticesPerQuad; v++ {
		f[o+0] = req.VertexData[2*v]
		f[o+1] = req.VertexData[2*v+1]
		u[o+2] = req.UVs[v]
		u[o+3] = req.Tint
		f[o+4] = unitID
		o += floatsPerVertex
	}
}

// drawGroups issues one indexed draw per closed group. It reports false when
// the context was lost partway and the remaining groups were abandoned.
//
// A group whose textures cannot all be uploaded is skipped as a whole; its
// sprites would otherwise sample a unit left over from an earlier group.
func (r *SpriteRenderer) drawGroups() bool {
	dev := r.ctx.device
	state := r.ctx.state
	for i := range r.groups.closed() {
		g := &r.groups.groups[i]
		if len(g.Textures) == 0 {
			if r.debug {
				panic(fmt.Sprintf("sprig debug: batch group %d (start %d, size %d) has no textures", i, g.Start, g.Size))
			}
			continue
		}
		if r.ctx.Lost() {
			r.stats.Aborted++
			return false
		}

		if !r.resolveTextures(g) {
			r.stats.Dropped += g.Size
			continue
		}

		sh := g.Shader
		if sh == nil {
			var err error
			sh, err = r.shaders.get(len(g.Textures))
			if err != nil {
				Logger().Warn("sprig: multi-texture shader unavailable", "textures", len(g.Textures), "error", err)
				r.stats.Dropped += g.Size
				continue
			}
		}
		state.SetShader(sh)

		for unit, t := range r.bound {
			dev.BindTexture(unit, t)
		}

		state.SetBlendMode(g.Blend)
		dev.DrawElements(g.Start*indicesPerQuad, g.Size*indicesPerQuad)

		r.stats.Groups++
		r.stats.DrawCalls++
	}
	return true
}

// resolveTextures uploads every texture of g into r.bound, in unit order.
func (r *SpriteRenderer) resolveTextures(g *BatchGroup) bool {
	clear(r.bound)
	r.bound = r.bound[:0]
	for _, h := range g.Textures {
		t, err := h.gpuTexture(r.ctx)
		if err != nil {
			Logger().Warn("sprig: texture upload failed, dropping group",
				"texture", h.base.id, "sprites", g.Size, "error", err)
			return false
		}
		r.bound = append(r.bound, t)
	}
	return true
}

func (r *SpriteRenderer) nextVertexSlot() (VertexSlot, error) {
	if r.slotIndex >= len(r.slots) {
		s, err := r.ctx.device.NewVertexSlot()
		if err != nil {
			return nil, err
		}
		r.slots = append(r.slots, s)
		Logger().Debug("sprig: vertex slot pool grown", "slots", len(r.slots))
	}
	s := r.slots[r.slotIndex]
	r.slotIndex++
	return s, nil
}

func (r *SpriteRenderer) clearPending() {
	clear(r.pending)
	r.pending = r.pending[:0]
}

// VertexSlots returns the current size of the vertex slot pool.
func (r *SpriteRenderer) VertexSlots() int {
	return len(r.slots)
}

// ContextLost drops the pending batch. GPU objects are abandoned, not
// disposed: their handles died with the context.
func (r *SpriteRenderer) ContextLost() {
	r.clearPending()
	r.shaders.forget()
}

// ContextRestored recreates every GPU object: the index buffer, as many
// vertex slots as existed before the loss, and shader variants 1 and 2.
func (r *SpriteRenderer) ContextRestored() error {
	for i := range r.slots {
		s, err := r.ctx.device.NewVertexSlot()
		if err != nil {
			return fmt.Errorf("sprig: recreate vertex slot %d: %w", i, err)
		}
		r.slots[i] = s
	}
	r.slotIndex = 0
	return r.initGPU()
}

// Dispose releases the renderer's GPU objects.
func (r *SpriteRenderer) Dispose() {
	r.clearPending()
	for _, s := range r.slots {
		s.Dispose()
	}
	r.slots = nil
	r.shaders.dispose()
}

// takeStats returns the counters accumulated since the last call and
// resets them.
func (r *SpriteRenderer) takeStats() FrameStats {
	s := r.stats
	r.stats = FrameStats{}
	return s
}
