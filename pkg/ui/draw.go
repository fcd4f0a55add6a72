package ui

import (
	"fmt"

	"github.com/go-drift/retained/pkg/graphics"
)

const disabledOpacity = 0.4

// OwnerID packs a handle into the Owner field of drawing commands.
func OwnerID(h Handle) uint64 {
	return uint64(h.Index())<<32 | uint64(h.Generation())
}

// Draw records the visible tree into the UI's drawing context, parents
// before children and siblings in order, and returns it. Opacity multiplies
// down the tree; disabled subtrees are dimmed. The context is reused by the
// next call.
func (ui *UserInterface) Draw() *graphics.DrawingContext {
	dc := ui.drawingContext
	dc.Reset()
	ui.walkVisible(func(h Handle, c Control, opacity float32) {
		w := c.Base()
		dc.SetState(w.clipBounds, opacity, OwnerID(h))
		if !w.ScreenBounds().Intersect(w.clipBounds).IsEmpty() {
			c.Draw(dc)
		}
	})
	if ui.cfg.Debug.Visual {
		ui.drawDebug(dc)
	}
	return dc
}

func (ui *UserInterface) drawDebug(dc *graphics.DrawingContext) {
	screen := graphics.RectFromPosSize(graphics.Vec2{}, ui.screenSize)
	outline := func(h Handle, color graphics.Color) {
		if w := ui.Widget(h); w != nil && w.globalVisibility {
			dc.SetState(screen, 1, OwnerID(h))
			dc.StrokeRect(w.ScreenBounds(), graphics.Uniform(1), graphics.SolidBrush(color))
		}
	}
	outline(ui.picked, graphics.ColorWhite)
	outline(ui.focused, graphics.ColorGreen)
	outline(ui.captured, graphics.ColorRed)
}

// walkVisible visits globally visible nodes in paint order with their
// effective opacity.
func (ui *UserInterface) walkVisible(visit func(h Handle, c Control, opacity float32)) {
	var walk func(h Handle, parentOpacity float32)
	walk = func(h Handle, parentOpacity float32) {
		c, ok := ui.nodes.Borrow(h)
		if !ok {
			return
		}
		w := c.Base()
		if !w.globalVisibility {
			return
		}
		opacity := parentOpacity * w.opacity
		if !w.enabled {
			opacity *= disabledOpacity
		}
		visit(h, c, opacity)
		for _, child := range w.children {
			walk(child, opacity)
		}
	}
	walk(ui.root, 1)
}

// Visual is the resolved state of one visible node, for tests and
// tooling that need the tree without replaying drawing commands.
type Visual struct {
	Handle     Handle         `json:"-"`
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Type       string         `json:"type"`
	Bounds     graphics.Rect  `json:"bounds"`
	Clip       graphics.Rect  `json:"clip"`
	Order      int            `json:"order"`
	ZIndex     int            `json:"zIndex,omitempty"`
	Opacity    float32        `json:"opacity"`
	Background graphics.Brush `json:"background"`
	Enabled    bool           `json:"enabled"`
}

// Snapshot lists the visible nodes in paint order.
func (ui *UserInterface) Snapshot() []Visual {
	var out []Visual
	ui.walkVisible(func(h Handle, c Control, opacity float32) {
		w := c.Base()
		out = append(out, Visual{
			Handle:     h,
			ID:         h.String(),
			Name:       w.name,
			Type:       fmt.Sprintf("%T", c),
			Bounds:     w.ScreenBounds(),
			Clip:       w.clipBounds,
			Order:      len(out),
			ZIndex:     w.zIndex,
			Opacity:    opacity,
			Background: w.background,
			Enabled:    w.enabled,
		})
	})
	return out
}
