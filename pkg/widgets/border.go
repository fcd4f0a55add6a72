package widgets

import (
	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// BorderThickness sets the stroke thickness of a Border.
type BorderThickness struct{ Thickness graphics.Thickness }

// Border fills its background, strokes its outline with the foreground
// brush and lays its children out inside the stroke.
type Border struct {
	ui.Widget
	thickness graphics.Thickness
}

// Thickness returns the stroke width on each side.
func (b *Border) Thickness() graphics.Thickness { return b.thickness }

// MeasureOverride measures the children inside the thickness and adds it back.
func (b *Border) MeasureOverride(u *ui.UserInterface, available graphics.Vec2) graphics.Vec2 {
	inset := b.thickness.Sum()
	inner := available.Sub(inset).Max(graphics.Vec2{})
	var size graphics.Vec2
	for _, child := range b.Children() {
		u.MeasureNode(child, inner)
		if w := u.Widget(child); w != nil {
			size = size.Max(w.DesiredSize())
		}
	}
	return size.Add(inset)
}

// ArrangeOverride places every child in the rect left after the thickness.
func (b *Border) ArrangeOverride(u *ui.UserInterface, finalSize graphics.Vec2) graphics.Vec2 {
	inner := graphics.RectFromPosSize(graphics.Vec2{}, finalSize).Deflate(b.thickness)
	for _, child := range b.Children() {
		u.ArrangeNode(child, inner)
	}
	return finalSize
}

// Draw fills the background and strokes the outline with the foreground.
func (b *Border) Draw(dc *graphics.DrawingContext) {
	bounds := b.ScreenBounds()
	dc.FillRect(bounds, b.Background())
	dc.StrokeRect(bounds, b.thickness, b.Foreground())
}

// HandleRoutedMessage applies BorderThickness requests.
func (b *Border) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	b.Widget.HandleRoutedMessage(u, msg)
	if msg.Destination != b.Handle() || msg.Direction != ui.ToWidget {
		return
	}
	if m, ok := msg.Data.(BorderThickness); ok && m.Thickness != b.thickness {
		b.thickness = m.Thickness
		u.InvalidateLayout(b.Handle())
		u.Send(msg.Reverse())
	}
}

// BorderBuilder builds a Border. The default stroke is one unit wide.
type BorderBuilder struct {
	wb        *ui.WidgetBuilder
	thickness graphics.Thickness
}

// NewBorderBuilder creates a builder for a Border.
func NewBorderBuilder(wb *ui.WidgetBuilder) *BorderBuilder {
	return &BorderBuilder{wb: wb, thickness: graphics.Uniform(1)}
}

// WithThickness sets the stroke width.
func (b *BorderBuilder) WithThickness(t graphics.Thickness) *BorderBuilder {
	b.thickness = t
	return b
}

// Build adds the border to u and returns its handle.
func (b *BorderBuilder) Build(u *ui.UserInterface) ui.Handle {
	return u.AddNode(&Border{Widget: b.wb.Build(), thickness: b.thickness})
}
