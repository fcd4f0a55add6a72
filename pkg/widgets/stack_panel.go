package widgets

import (
	"fmt"

	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// Orientation is the main axis of a panel.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

func (o Orientation) main(v graphics.Vec2) float32 {
	if o == Horizontal {
		return v.X
	}
	return v.Y
}

func (o Orientation) cross(v graphics.Vec2) float32 {
	if o == Horizontal {
		return v.Y
	}
	return v.X
}

func (o Orientation) vec(main, cross float32) graphics.Vec2 {
	if o == Horizontal {
		return graphics.V2(main, cross)
	}
	return graphics.V2(cross, main)
}

// StackPanel requests.
type (
	StackPanelOrientation struct{ Orientation Orientation }
	StackPanelSpacing     struct{ Spacing float32 }
)

// StackPanel places visible children one after another along its
// orientation. Each child gets unbounded space on the main axis and the
// panel's space on the cross axis.
type StackPanel struct {
	ui.Widget
	orientation Orientation
	spacing     float32
}

func (s *StackPanel) Orientation() Orientation { return s.orientation }
func (s *StackPanel) Spacing() float32         { return s.spacing }

// MeasureOverride stacks the visible children along the orientation.
func (s *StackPanel) MeasureOverride(u *ui.UserInterface, available graphics.Vec2) graphics.Vec2 {
	o := s.orientation
	childAvailable := o.vec(graphics.Inf, o.cross(available))

	var mainExtent, crossExtent float32
	count := 0
	for _, child := range s.Children() {
		u.MeasureNode(child, childAvailable)
		w := u.Widget(child)
		if w == nil || !w.Visibility() {
			continue
		}
		if count > 0 {
			mainExtent += s.spacing
		}
		mainExtent += o.main(w.DesiredSize())
		crossExtent = max(crossExtent, o.cross(w.DesiredSize()))
		count++
	}
	return o.vec(mainExtent, crossExtent)
}

func (s *StackPanel) ArrangeOverride(u *ui.UserInterface, finalSize graphics.Vec2) graphics.Vec2 {
	o := s.orientation
	cross := o.cross(finalSize)

	var offset float32
	count := 0
	for _, child := range s.Children() {
		w := u.Widget(child)
		if w == nil {
			continue
		}
		if !w.Visibility() {
			u.ArrangeNode(child, graphics.Rect{})
			continue
		}
		if count > 0 {
			offset += s.spacing
		}
		extent := o.main(w.DesiredSize())
		u.ArrangeNode(child, graphics.RectFromPosSize(o.vec(offset, 0), o.vec(extent, cross)))
		offset += extent
		count++
	}
	return finalSize
}

// HandleRoutedMessage applies StackPanelOrientation and StackPanelSpacing.
func (s *StackPanel) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	s.Widget.HandleRoutedMessage(u, msg)
	if msg.Destination != s.Handle() || msg.Direction != ui.ToWidget {
		return
	}
	switch m := msg.Data.(type) {
	case StackPanelOrientation:
		if s.orientation != m.Orientation {
			s.orientation = m.Orientation
			u.InvalidateLayout(s.Handle())
			u.Send(msg.Reverse())
		}
	case StackPanelSpacing:
		if s.spacing != m.Spacing {
			s.spacing = max(m.Spacing, 0)
			u.InvalidateLayout(s.Handle())
			u.Send(msg.Reverse())
		}
	}
}

// StackPanelBuilder builds a StackPanel. The default orientation is
// vertical.
type StackPanelBuilder struct {
	wb          *ui.WidgetBuilder
	orientation Orientation
	spacing     float32
}

// NewStackPanelBuilder creates a builder for a vertical StackPanel.
func NewStackPanelBuilder(wb *ui.WidgetBuilder) *StackPanelBuilder {
	return &StackPanelBuilder{wb: wb}
}

// WithOrientation sets the stacking axis.
func (b *StackPanelBuilder) WithOrientation(o Orientation) *StackPanelBuilder {
	b.orientation = o
	return b
}

// WithSpacing sets the gap between visible children.
func (b *StackPanelBuilder) WithSpacing(spacing float32) *StackPanelBuilder {
	b.spacing = max(spacing, 0)
	return b
}

// Build adds the panel to u.
func (b *StackPanelBuilder) Build(u *ui.UserInterface) ui.Handle {
	return u.AddNode(&StackPanel{
		Widget:      b.wb.Build(),
		orientation: b.orientation,
		spacing:     b.spacing,
	})
}
