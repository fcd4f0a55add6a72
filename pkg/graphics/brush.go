package graphics

import "fmt"

// BrushKind describes the brush variant.
type BrushKind int

const (
	// BrushNone paints nothing.
	BrushNone BrushKind = iota
	// BrushSolid fills with a single color.
	BrushSolid
	// BrushLinearGradient fills along a line between two points.
	BrushLinearGradient
	// BrushRadialGradient fills outward from a center point.
	BrushRadialGradient
)

// String returns a human-readable representation of the brush kind.
func (k BrushKind) String() string {
	switch k {
	case BrushNone:
		return "none"
	case BrushSolid:
		return "solid"
	case BrushLinearGradient:
		return "linear"
	case BrushRadialGradient:
		return "radial"
	default:
		return fmt.Sprintf("BrushKind(%d)", int(k))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float32 `json:"position"`
	Color    Color   `json:"color"`
}

// Brush is the fill descriptor handed to the renderer. Gradient coordinates
// are relative to the bounds of the shape being filled, in [0, 1].
type Brush struct {
	Kind   BrushKind      `json:"kind"`
	Color  Color          `json:"color,omitempty"`
	From   Vec2           `json:"from,omitempty"`
	To     Vec2           `json:"to,omitempty"`
	Center Vec2           `json:"center,omitempty"`
	Radius float32        `json:"radius,omitempty"`
	Stops  []GradientStop `json:"stops,omitempty"`
}

// SolidBrush returns a single-color brush.
func SolidBrush(c Color) Brush {
	return Brush{Kind: BrushSolid, Color: c}
}

// LinearGradientBrush returns a gradient brush from one point to another.
func LinearGradientBrush(from, to Vec2, stops ...GradientStop) Brush {
	return Brush{Kind: BrushLinearGradient, From: from, To: to, Stops: stops}
}

// RadialGradientBrush returns a gradient brush around center.
func RadialGradientBrush(center Vec2, radius float32, stops ...GradientStop) Brush {
	return Brush{Kind: BrushRadialGradient, Center: center, Radius: radius, Stops: stops}
}

// IsVisible reports whether the brush would paint anything.
func (b Brush) IsVisible() bool {
	switch b.Kind {
	case BrushSolid:
		return b.Color.A() != 0
	case BrushLinearGradient, BrushRadialGradient:
		for _, s := range b.Stops {
			if s.Color.A() != 0 {
				return true
			}
		}
	}
	return false
}

// Equal reports whether two brushes describe the same fill.
func (b Brush) Equal(o Brush) bool {
	if b.Kind != o.Kind || b.Color != o.Color || b.From != o.From || b.To != o.To ||
		b.Center != o.Center || b.Radius != o.Radius || len(b.Stops) != len(o.Stops) {
		return false
	}
	for i := range b.Stops {
		if b.Stops[i] != o.Stops[i] {
			return false
		}
	}
	return true
}
