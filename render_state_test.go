package sprig

import "testing"

func TestRenderStateShaderIdempotent(t *testing.T) {
	dev := newFakeDevice(16)
	s := newRenderState(dev)
	sh := &fakeShader{}

	if !s.SetShader(sh) {
		t.Error("first SetShader should reach the device")
	}
	if s.SetShader(sh) {
		t.Error("repeated SetShader should be skipped")
	}
	if dev.shaderUses != 1 {
		t.Errorf("UseShader calls = %d, want 1", dev.shaderUses)
	}
	if s.Shader() != sh {
		t.Error("Shader() does not return the active shader")
	}
}

func TestRenderStateBlendValueEquality(t *testing.T) {
	dev := newFakeDevice(16)
	s := newRenderState(dev)

	if !s.SetBlendMode(BlendMode{}) {
		t.Error("first SetBlendMode should reach the device")
	}
	if s.SetBlendMode(BlendNormal) {
		t.Error("zero blend and BlendNormal should compare equal")
	}
	custom := BlendMode{Src: BlendFactorOne, Dst: BlendFactorOneMinusSourceAlpha, Op: BlendOperationAdd}
	if s.SetBlendMode(custom) {
		t.Error("value-equal blend mode should be skipped")
	}
	if !s.SetBlendMode(BlendAdd) {
		t.Error("different blend mode should reach the device")
	}
	if dev.blendSets != 2 {
		t.Errorf("SetBlend calls = %d, want 2", dev.blendSets)
	}
	if dev.blend != BlendAdd {
		t.Errorf("device blend = %+v, want BlendAdd", dev.blend)
	}
}

func TestRenderStateTargetAndUniforms(t *testing.T) {
	dev := newFakeDevice(16)
	s := newRenderState(dev)
	target := &fakeTarget{w: 10, h: 10}

	s.SetRenderTarget(target)
	s.SetRenderTarget(target)
	if dev.targetBinds != 1 {
		t.Errorf("BindTarget calls = %d, want 1", dev.targetBinds)
	}
	s.invalidateTarget()
	s.SetRenderTarget(target)
	if dev.targetBinds != 2 {
		t.Errorf("BindTarget calls after invalidate = %d, want 2", dev.targetBinds)
	}

	s.SetUniforms(defaultUniforms)
	s.SetUniforms(defaultUniforms)
	if dev.uniformUpdate != 1 {
		t.Errorf("SetUniforms calls = %d, want 1", dev.uniformUpdate)
	}
}

func TestRenderStateReset(t *testing.T) {
	dev := newFakeDevice(16)
	s := newRenderState(dev)
	sh := &fakeShader{}
	s.SetShader(sh)
	s.SetBlendMode(BlendNormal)
	s.SetUniforms(defaultUniforms)

	s.Reset()

	if !s.SetShader(sh) || !s.SetBlendMode(BlendNormal) || !s.SetUniforms(defaultUniforms) {
		t.Error("setters after Reset should reach the device")
	}
}

func TestRenderStateCounters(t *testing.T) {
	s := newRenderState(newFakeDevice(16))
	s.SetShader(&fakeShader{})
	s.SetShader(&fakeShader{})
	s.SetBlendMode(BlendAdd)
	if s.shaderSwitches != 2 || s.blendSwitches != 1 {
		t.Errorf("switches = %d/%d, want 2/1", s.shaderSwitches, s.blendSwitches)
	}
	s.ResetCounters()
	if s.shaderSwitches != 0 || s.blendSwitches != 0 {
		t.Error("ResetCounters did not zero the counters")
	}
}
