package sprig

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Rect ---

func TestRectContains(t *testing.T) {
	view := Rect{X: -4, Y: 2, Width: 8, Height: 6}
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 5, true},
		{-4, 2, true}, // origin corner
		{4, 8, true},  // far corner
		{-4.5, 5, false},
		{4.5, 5, false},
		{0, 1.9, false},
		{0, 8.1, false},
	}
	for _, tt := range tests {
		if got := view.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersectsSymmetric(t *testing.T) {
	screen := Rect{Width: 64, Height: 32}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"sprite on screen", Rect{X: 10, Y: 10, Width: 4, Height: 4}, true},
		{"straddles left edge", Rect{X: -2, Y: 10, Width: 4, Height: 4}, true},
		{"touches right edge", Rect{X: 64, Y: 10, Width: 4, Height: 4}, true},
		{"past right edge", Rect{X: 64.5, Y: 10, Width: 4, Height: 4}, false},
		{"above screen", Rect{X: 10, Y: -8, Width: 4, Height: 4}, false},
		{"below screen", Rect{X: 10, Y: 40, Width: 4, Height: 4}, false},
		{"covers screen", Rect{X: -100, Y: -100, Width: 300, Height: 300}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screen.Intersects(tt.other); got != tt.want {
				t.Errorf("screen.Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(screen); got != tt.want {
				t.Errorf("reversed Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- BlendMode.EbitenBlend ---

func TestBlendModeEbitenBlend(t *testing.T) {
	modes := []struct {
		mode   BlendMode
		name   string
		expect ebiten.Blend
	}{
		{BlendNormal, "BlendNormal", ebiten.BlendSourceOver},
		{BlendMode{}, "zero", ebiten.BlendSourceOver},
		{BlendAdd, "BlendAdd", ebiten.BlendLighter},
		{BlendErase, "BlendErase", ebiten.BlendDestinationOut},
		{BlendNone, "BlendNone", ebiten.BlendCopy},
	}
	for _, tt := range modes {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mode.EbitenBlend()
			if got != tt.expect {
				t.Errorf("%s.EbitenBlend() = %v, want %v", tt.name, got, tt.expect)
			}
		})
	}

	sub := BlendMode{Src: BlendFactorOne, Dst: BlendFactorOne, Op: BlendOperationReverseSubtract}
	if got := sub.EbitenBlend().BlendOperationRGB; got != ebiten.BlendOperationReverseSubtract {
		t.Errorf("reverse subtract op = %v", got)
	}
	if got := BlendMultiply.EbitenBlend().BlendFactorSourceRGB; got != ebiten.BlendFactorDestinationColor {
		t.Errorf("BlendMultiply source factor = %v", got)
	}
}

func TestBlendModeNormalized(t *testing.T) {
	if (BlendMode{}).normalized() != BlendNormal {
		t.Error("zero BlendMode should normalize to BlendNormal")
	}
	if BlendAdd.normalized() != BlendAdd {
		t.Error("non-zero BlendMode should be unchanged")
	}
}

func TestColorWhite(t *testing.T) {
	if ColorWhite.R != 1 || ColorWhite.G != 1 || ColorWhite.B != 1 || ColorWhite.A != 1 {
		t.Errorf("ColorWhite = %v, want {1,1,1,1}", ColorWhite)
	}
}

// --- Benchmarks (verify zero allocations) ---

func BenchmarkBlendModeMapping(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = BlendNormal.EbitenBlend()
		_ = BlendAdd.EbitenBlend()
		_ = BlendMultiply.EbitenBlend()
		_ = BlendScreen.EbitenBlend()
		_ = BlendErase.EbitenBlend()
		_ = BlendNone.EbitenBlend()
	}
}
