package sprig

import "fmt"

// shaderCache holds the multi-texture shader variants of one renderer.
// shaders[i] samples exactly i+1 textures. Variants compile on first use.
type shaderCache struct {
	device  Device
	shaders []Shader
}

func newShaderCache(dev Device, maxTextures int) *shaderCache {
	return &shaderCache{
		device:  dev,
		shaders: make([]Shader, maxTextures),
	}
}

// get returns the variant binding exactly count textures.
func (c *shaderCache) get(count int) (Shader, error) {
	if count < 1 || count > len(c.shaders) {
		return nil, fmt.Errorf("sprig: no shader variant for %d textures (max %d)", count, len(c.shaders))
	}
	if sh := c.shaders[count-1]; sh != nil {
		return sh, nil
	}
	sh, err := c.device.CompileShader(multiTextureShaderSrc(count))
	if err != nil {
		return nil, fmt.Errorf("sprig: compile %d-texture shader: %w", count, err)
	}
	c.shaders[count-1] = sh
	return sh, nil
}

// reset discards every variant and rebuilds the minimum working set
// (one and two textures). Called at creation and after a context restore.
func (c *shaderCache) reset() error {
	c.forget()
	for count := 1; count <= 2 && count <= len(c.shaders); count++ {
		if _, err := c.get(count); err != nil {
			return err
		}
	}
	return nil
}

// forget drops variant references without disposing them.
func (c *shaderCache) forget() {
	for i := range c.shaders {
		c.shaders[i] = nil
	}
}

func (c *shaderCache) dispose() {
	for i, sh := range c.shaders {
		if sh != nil {
			sh.Dispose()
			c.shaders[i] = nil
		}
	}
}
