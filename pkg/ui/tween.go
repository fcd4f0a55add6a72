package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-drift/retained/pkg/graphics"
)

// TweenGroup animates up to two values of one node. Each step sends a
// ToWidget message with the new value, so the change goes through normal
// routing and shows up after the next drain. The group stops when its node
// is removed or CancelTweens is called.
type TweenGroup struct {
	target Handle
	tweens [2]*gween.Tween
	count  int
	apply  func(vals [2]float32) any
	Done   bool
}

// Target returns the animated node.
func (g *TweenGroup) Target() Handle { return g.target }

// Cancel stops the group without a final step.
func (g *TweenGroup) Cancel() { g.Done = true }

func (g *TweenGroup) update(ui *UserInterface, dt float32) {
	if g.Done {
		return
	}
	if !ui.nodes.IsValid(g.target) {
		g.Done = true
		return
	}
	var vals [2]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	ui.Send(To(g.target, g.apply(vals)))
}

// TweenOpacity fades h from its current opacity to the given value. A nil
// fn means linear. It returns nil when h is not a live node.
func (ui *UserInterface) TweenOpacity(h Handle, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	w := ui.Widget(h)
	if w == nil {
		return nil
	}
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{target: h, count: 1}
	g.tweens[0] = gween.New(w.opacity, graphics.Clamp(to, 0, 1), duration, fn)
	g.apply = func(vals [2]float32) any { return WidgetOpacity{Opacity: vals[0]} }
	ui.tweens = append(ui.tweens, g)
	return g
}

// TweenPosition moves h from its desired position to the given one. Only
// nodes placed by a Canvas follow their desired position.
func (ui *UserInterface) TweenPosition(h Handle, to graphics.Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	w := ui.Widget(h)
	if w == nil {
		return nil
	}
	if fn == nil {
		fn = ease.Linear
	}
	from := w.desiredLocalPosition
	g := &TweenGroup{target: h, count: 2}
	g.tweens[0] = gween.New(from.X, to.X, duration, fn)
	g.tweens[1] = gween.New(from.Y, to.Y, duration, fn)
	g.apply = func(vals [2]float32) any {
		return WidgetDesiredPosition{Position: graphics.V2(vals[0], vals[1])}
	}
	ui.tweens = append(ui.tweens, g)
	return g
}

// CancelTweens stops every running group that animates h.
func (ui *UserInterface) CancelTweens(h Handle) {
	for _, g := range ui.tweens {
		if g.target == h {
			g.Cancel()
		}
	}
}

// ActiveTweens returns the number of groups still running.
func (ui *UserInterface) ActiveTweens() int {
	n := 0
	for _, g := range ui.tweens {
		if !g.Done {
			n++
		}
	}
	return n
}

func (ui *UserInterface) updateTweens(dt float32) {
	live := ui.tweens[:0]
	for _, g := range ui.tweens {
		g.update(ui, dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(ui.tweens[len(live):])
	ui.tweens = live
}
