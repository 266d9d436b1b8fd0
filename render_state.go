package sprig

// RenderState tracks what is bound on a Device and forwards only the calls
// that change something. Every setter reports whether it reached the device.
type RenderState struct {
	device Device

	target      RenderTarget
	shader      Shader
	blend       BlendMode
	blendSet    bool
	uniforms    Uniforms
	uniformsSet bool

	// shaderSwitches and blendSwitches count forwarded changes since the last
	// ResetCounters, for frame stats.
	shaderSwitches int
	blendSwitches  int
}

func newRenderState(dev Device) *RenderState {
	return &RenderState{device: dev}
}

// SetRenderTarget binds t as the draw destination.
func (s *RenderState) SetRenderTarget(t RenderTarget) bool {
	if s.target == t {
		return false
	}
	s.target = t
	s.device.BindTarget(t)
	return true
}

// RenderTarget returns the currently bound target.
func (s *RenderState) RenderTarget() RenderTarget {
	return s.target
}

// SetShader activates sh.
func (s *RenderState) SetShader(sh Shader) bool {
	if s.shader == sh {
		return false
	}
	s.shader = sh
	s.shaderSwitches++
	s.device.UseShader(sh)
	return true
}

// Shader returns the active shader.
func (s *RenderState) Shader() Shader {
	return s.shader
}

// SetBlendMode sets the blend function. The zero BlendMode means BlendNormal.
func (s *RenderState) SetBlendMode(b BlendMode) bool {
	b = b.normalized()
	if s.blendSet && s.blend == b {
		return false
	}
	s.blend = b
	s.blendSet = true
	s.blendSwitches++
	s.device.SetBlend(b)
	return true
}

// SetUniforms uploads u when it differs from the bound values.
func (s *RenderState) SetUniforms(u Uniforms) bool {
	if s.uniformsSet && s.uniforms == u {
		return false
	}
	s.uniforms = u
	s.uniformsSet = true
	s.device.SetUniforms(u)
	return true
}

// invalidateTarget makes the next SetRenderTarget reach the device even for
// the same target, whose backing image may have changed between frames.
func (s *RenderState) invalidateTarget() {
	s.target = nil
}

// Reset forgets every cached binding so the next setter call always reaches
// the device. Used after a context restore, when bindings are gone.
func (s *RenderState) Reset() {
	s.target = nil
	s.shader = nil
	s.blendSet = false
	s.uniformsSet = false
}

// ResetCounters zeroes the switch counters.
func (s *RenderState) ResetCounters() {
	s.shaderSwitches = 0
	s.blendSwitches = 0
}
