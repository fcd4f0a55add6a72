package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Inf is positive infinity as a float32. An infinite available extent means
// "take as much as you want".
var Inf = float32(math.Inf(1))

// Vec2 is a 2D point or vector in logical pixels.
type Vec2 struct {
	X float32
	Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Max returns the component-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// Min returns the component-wise minimum.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// IsInfinite reports whether either component is infinite.
func (v Vec2) IsInfinite() bool {
	return IsInf(v.X) || IsInf(v.Y)
}

// Sanitize replaces NaN and negative components with zero. Positive infinity
// is kept since it is a meaningful available size.
func (v Vec2) Sanitize() Vec2 {
	return Vec2{X: SanitizeExtent(v.X), Y: SanitizeExtent(v.Y)}
}

// Finite replaces NaN, negative and infinite components with zero.
func (v Vec2) Finite() Vec2 {
	return Vec2{X: FiniteExtent(v.X), Y: FiniteExtent(v.Y)}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// RectFromXYWH constructs a Rect from position and size components.
func RectFromXYWH(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFromPosSize constructs a Rect from a position and a size vector.
func RectFromPosSize(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Position returns the top-left corner.
func (r Rect) Position() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the extent as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width, Y: r.Height}
}

// Left returns the left edge.
func (r Rect) Left() float32 { return r.X }

// Top returns the top edge.
func (r Rect) Top() float32 { return r.Y }

// Right returns the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlap of r and other, or an empty rect positioned
// at the clamped corner when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{X: left, Y: top}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns a new rect offset by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	left := min(r.X, other.X)
	top := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Deflate shrinks r by the given thickness, clamping at zero size.
func (r Rect) Deflate(t Thickness) Rect {
	return Rect{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  max(0, r.Width-t.Horizontal()),
		Height: max(0, r.Height-t.Vertical()),
	}
}

// ApproxEqual reports whether all components differ by at most epsilon.
func (r Rect) ApproxEqual(o Rect) bool {
	return floatEqual(r.X, o.X) && floatEqual(r.Y, o.Y) &&
		floatEqual(r.Width, o.Width) && floatEqual(r.Height, o.Height)
}

// Thickness describes per-edge insets, used for margins and borders.
type Thickness struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// Uniform returns a thickness with the same value on every edge.
func Uniform(v float32) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Symmetric returns a thickness with h on the left/right edges and v on the
// top/bottom edges.
func Symmetric(h, v float32) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float32 {
	return t.Left + t.Right
}

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float32 {
	return t.Top + t.Bottom
}

// Offset returns the top-left inset as a vector.
func (t Thickness) Offset() Vec2 {
	return Vec2{X: t.Left, Y: t.Top}
}

// Sum returns the total insets per axis.
func (t Thickness) Sum() Vec2 {
	return Vec2{X: t.Horizontal(), Y: t.Vertical()}
}

// IsInf reports whether v is positive or negative infinity.
func IsInf(v float32) bool {
	return math.IsInf(float64(v), 0)
}

// IsNaN reports whether v is NaN.
func IsNaN(v float32) bool {
	return v != v
}

// NaN returns a float32 NaN, used to mark an unset explicit size.
func NaN() float32 {
	return float32(math.NaN())
}

// SanitizeExtent maps NaN and negative values to zero.
func SanitizeExtent(v float32) float32 {
	if IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// FiniteExtent maps NaN, negative and infinite values to zero.
func FiniteExtent(v float32) float32 {
	if IsNaN(v) || v < 0 || IsInf(v) {
		return 0
	}
	return v
}

// Clamp limits v to [lo, hi]. NaN input yields lo.
func Clamp(v, lo, hi float32) float32 {
	if IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floatEqual returns true if two float32 values are approximately equal.
func floatEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}
