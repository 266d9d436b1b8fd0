package sprig

import (
	"math"
	"math/bits"
)

// PackUV packs a normalized texture coordinate pair into one word: u in the
// low 16 bits and v in the high 16 bits, each scaled to [0, 65535].
func PackUV(u, v float32) uint32 {
	return uint32(unorm16(u)) | uint32(unorm16(v))<<16
}

// UnpackUV reverses PackUV.
func UnpackUV(p uint32) (u, v float32) {
	return float32(p&0xFFFF) / 65535, float32(p>>16) / 65535
}

func unorm16(f float32) uint16 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 0xFFFF
	}
	return uint16(math.Round(float64(f) * 65535))
}

// PackTint packs a tint color and an alpha multiplier into premultiplied
// RGBA bytes, R in the low byte.
func PackTint(c Color, alpha float64) uint32 {
	a := clamp01(c.A * alpha)
	r := uint32(math.Round(clamp01(c.R) * a * 255))
	g := uint32(math.Round(clamp01(c.G) * a * 255))
	b := uint32(math.Round(clamp01(c.B) * a * 255))
	return r | g<<8 | b<<16 | uint32(math.Round(a*255))<<24
}

// UnpackTint returns the premultiplied components of a packed tint.
func UnpackTint(p uint32) (r, g, b, a float32) {
	return float32(p&0xFF) / 255, float32(p>>8&0xFF) / 255, float32(p>>16&0xFF) / 255, float32(p>>24) / 255
}

// nextPow2 returns the smallest power of two >= n. nextPow2(0) is 1.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// log2 returns floor(log2(n)) for n >= 1.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
