package sprig

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the tint is packed into vertex data.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R*c.A) * 255)),
		G: uint8(math.Round(clamp01(c.G*c.A) * 255)),
		B: uint8(math.Round(clamp01(c.B*c.A) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, anchors and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// BlendFactor is one operand of a blend function.
type BlendFactor uint8

const (
	BlendFactorUnset BlendFactor = iota // zero value; a BlendMode made only of unset fields means BlendNormal
	BlendFactorZero
	BlendFactorOne
	BlendFactorSourceColor
	BlendFactorOneMinusSourceColor
	BlendFactorSourceAlpha
	BlendFactorOneMinusSourceAlpha
	BlendFactorDestinationColor
	BlendFactorOneMinusDestinationColor
	BlendFactorDestinationAlpha
	BlendFactorOneMinusDestinationAlpha
)

// BlendOperation combines the weighted source and destination.
type BlendOperation uint8

const (
	BlendOperationAdd BlendOperation = iota
	BlendOperationSubtract
	BlendOperationReverseSubtract
	BlendOperationMin
	BlendOperationMax
)

// BlendMode is a blend function/equation triple. Two modes are the same
// batch-wise exactly when they compare equal with ==. Factors apply to
// premultiplied colors.
//
// The zero BlendMode is treated as BlendNormal.
type BlendMode struct {
	Src BlendFactor
	Dst BlendFactor
	Op  BlendOperation
}

// Predefined blend modes.
var (
	BlendNormal   = BlendMode{BlendFactorOne, BlendFactorOneMinusSourceAlpha, BlendOperationAdd}        // source-over
	BlendAdd      = BlendMode{BlendFactorOne, BlendFactorOne, BlendOperationAdd}                        // additive / lighter
	BlendMultiply = BlendMode{BlendFactorDestinationColor, BlendFactorOneMinusSourceAlpha, BlendOperationAdd}
	BlendScreen   = BlendMode{BlendFactorOne, BlendFactorOneMinusSourceColor, BlendOperationAdd}
	BlendErase    = BlendMode{BlendFactorZero, BlendFactorOneMinusSourceAlpha, BlendOperationAdd}       // destination-out
	BlendNone     = BlendMode{BlendFactorOne, BlendFactorZero, BlendOperationAdd}                       // opaque copy
)

// normalized resolves the zero value to BlendNormal.
func (b BlendMode) normalized() BlendMode {
	if b == (BlendMode{}) {
		return BlendNormal
	}
	return b
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
// The same factors and operation are used for the color and alpha channels.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	b = b.normalized()
	src := b.Src.ebiten()
	dst := b.Dst.ebiten()
	op := b.Op.ebiten()
	return ebiten.Blend{
		BlendFactorSourceRGB:        src,
		BlendFactorSourceAlpha:      src,
		BlendFactorDestinationRGB:   dst,
		BlendFactorDestinationAlpha: dst,
		BlendOperationRGB:           op,
		BlendOperationAlpha:         op,
	}
}

func (f BlendFactor) ebiten() ebiten.BlendFactor {
	switch f {
	case BlendFactorZero:
		return ebiten.BlendFactorZero
	case BlendFactorOne:
		return ebiten.BlendFactorOne
	case BlendFactorSourceColor:
		return ebiten.BlendFactorSourceColor
	case BlendFactorOneMinusSourceColor:
		return ebiten.BlendFactorOneMinusSourceColor
	case BlendFactorSourceAlpha:
		return ebiten.BlendFactorSourceAlpha
	case BlendFactorOneMinusSourceAlpha:
		return ebiten.BlendFactorOneMinusSourceAlpha
	case BlendFactorDestinationColor:
		return ebiten.BlendFactorDestinationColor
	case BlendFactorOneMinusDestinationColor:
		return ebiten.BlendFactorOneMinusDestinationColor
	case BlendFactorDestinationAlpha:
		return ebiten.BlendFactorDestinationAlpha
	case BlendFactorOneMinusDestinationAlpha:
		return ebiten.BlendFactorOneMinusDestinationAlpha
	default:
		return ebiten.BlendFactorDefault
	}
}

func (o BlendOperation) ebiten() ebiten.BlendOperation {
	switch o {
	case BlendOperationSubtract:
		return ebiten.BlendOperationSubtract
	case BlendOperationReverseSubtract:
		return ebiten.BlendOperationReverseSubtract
	case BlendOperationMin:
		return ebiten.BlendOperationMin
	case BlendOperationMax:
		return ebiten.BlendOperationMax
	default:
		return ebiten.BlendOperationAdd
	}
}
