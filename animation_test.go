package sprig

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	s := newTestSprite(4, 4)
	s.X = 10
	s.Y = 20

	g := TweenPosition(s, 100, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(s.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", s.X)
	}
	if math.Abs(s.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", s.Y)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	s := newTestSprite(4, 4)

	g := TweenScale(s, 2.0, 3.0, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(s.ScaleX-2.0) > 0.01 {
		t.Errorf("ScaleX = %f, want ~2.0", s.ScaleX)
	}
	if math.Abs(s.ScaleY-3.0) > 0.01 {
		t.Errorf("ScaleY = %f, want ~3.0", s.ScaleY)
	}
}

func TestTweenTintAllComponents(t *testing.T) {
	s := newTestSprite(4, 4)
	s.Tint = Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenTint(s, target, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	got := [4]float64{s.Tint.R, s.Tint.G, s.Tint.B, s.Tint.A}
	want := [4]float64{target.R, target.G, target.B, target.A}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 0.01 {
			t.Errorf("component %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	s := newTestSprite(4, 4)

	g := TweenAlpha(s, 0, 1.0, ease.Linear)
	g.Update(0.5)
	if math.Abs(s.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha at midpoint = %f, want ~0.5", s.Alpha)
	}
	g.Update(0.5)
	if !g.Done || math.Abs(s.Alpha) > 0.01 {
		t.Errorf("Alpha = %f (done %v), want ~0", s.Alpha, g.Done)
	}

	var req SpriteDrawRequest
	if s.DrawRequest(&req) {
		t.Error("fully faded sprite should not draw")
	}
}

func TestTweenRotationReachesTarget(t *testing.T) {
	s := newTestSprite(4, 4)

	g := TweenRotation(s, math.Pi, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected done after full duration")
	}
	if math.Abs(s.Rotation-math.Pi) > 0.05 {
		t.Errorf("Rotation = %f, want ~%f", s.Rotation, math.Pi)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	s := newTestSprite(4, 4)
	g := TweenPosition(s, 50, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}
	// Update after done is a no-op.
	x := s.X
	g.Update(0.1)
	if !g.Done || s.X != x {
		t.Fatal("should remain Done without writing")
	}
}

func TestTweenGroupInvalidatesCorners(t *testing.T) {
	s := newTestSprite(4, 4)
	before := s.VertexData()

	g := TweenPosition(s, 100, 0, 1.0, ease.Linear)
	g.Update(0.5)

	after := s.VertexData()
	if after == before {
		t.Fatal("sprite corners should move after a tween update")
	}
	if math.Abs(float64(after[0])-50) > 0.5 {
		t.Errorf("TL x = %v, want ~50", after[0])
	}
}

func TestTweenGroupStop(t *testing.T) {
	s := newTestSprite(4, 4)
	g := TweenPosition(s, 100, 0, 1.0, ease.Linear)
	g.Update(0.25)
	g.Stop()
	x := s.X
	g.Update(0.25)
	if !g.Done || s.X != x {
		t.Errorf("stopped group kept animating: X %v -> %v", x, s.X)
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	sL := newTestSprite(4, 4)
	sC := newTestSprite(4, 4)

	gL := TweenPosition(sL, 100, 0, 1.0, ease.Linear)
	gC := TweenPosition(sC, 100, 0, 1.0, ease.OutCubic)

	gL.Update(0.5)
	gC.Update(0.5)

	if math.Abs(sL.X-sC.X) < 1.0 {
		t.Errorf("easing curves should produce different values at midpoint: linear=%f cubic=%f", sL.X, sC.X)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	s := newTestSprite(4, 4)
	g := TweenPosition(s, 100, 100, 1.0, ease.Linear)

	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}
