package ui

import "github.com/go-drift/retained/pkg/graphics"

// Canvas places each child at its desired position with its desired size.
// The root of every UserInterface is a Canvas.
type Canvas struct {
	Widget
}

// NewCanvas builds a Canvas from b.
func NewCanvas(b *WidgetBuilder) *Canvas {
	return &Canvas{Widget: b.Build()}
}

// MeasureOverride measures children with unbounded space. A canvas has no
// size of its own.
func (c *Canvas) MeasureOverride(ui *UserInterface, available graphics.Vec2) graphics.Vec2 {
	unbounded := graphics.V2(graphics.Inf, graphics.Inf)
	for _, child := range c.children {
		ui.MeasureNode(child, unbounded)
	}
	return graphics.Vec2{}
}

// ArrangeOverride places children at their desired positions.
func (c *Canvas) ArrangeOverride(ui *UserInterface, finalSize graphics.Vec2) graphics.Vec2 {
	for _, child := range c.children {
		w := ui.Widget(child)
		if w == nil {
			continue
		}
		ui.ArrangeNode(child, graphics.RectFromPosSize(w.desiredLocalPosition, w.desiredSize))
	}
	return finalSize
}
