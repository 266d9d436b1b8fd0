package sprig

// BatchGroup is a contiguous run of pending sprites drawn with one call:
// same blend mode, same shader, and at most MaxTextures distinct textures.
type BatchGroup struct {
	// Textures lists the bound textures; Textures[i] is bound to unit i.
	Textures []*TextureHandle
	// Start is the index of the group's first sprite in the flushed batch.
	Start int
	// Size is the number of sprites. Final only once the group is closed.
	Size int
	// Blend is the group's blend mode.
	Blend BlendMode
	// Shader is the custom shader, or nil for the shared multi-texture shader.
	Shader Shader
}

func (g *BatchGroup) reset(start int, blend BlendMode, shader Shader) {
	for i := range g.Textures {
		g.Textures[i] = nil
	}
	g.Textures = g.Textures[:0]
	g.Start = start
	g.Size = 0
	g.Blend = blend
	g.Shader = shader
}

// batchGroupPool hands out groups in order during a flush. Groups are
// allocated once and reused across flushes.
type batchGroupPool struct {
	groups []BatchGroup
	count  int
}

func newBatchGroupPool(size, maxTextures int) batchGroupPool {
	groups := make([]BatchGroup, size)
	for i := range groups {
		groups[i].Textures = make([]*TextureHandle, 0, maxTextures)
	}
	return batchGroupPool{groups: groups}
}

// open starts the next group.
func (p *batchGroupPool) open(start int, blend BlendMode, shader Shader) *BatchGroup {
	g := &p.groups[p.count]
	p.count++
	g.reset(start, blend, shader)
	return g
}

// closed returns the groups produced by the current flush.
func (p *batchGroupPool) closed() []BatchGroup {
	return p.groups[:p.count]
}

func (p *batchGroupPool) clear() {
	p.count = 0
}
