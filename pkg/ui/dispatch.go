package ui

import (
	"fmt"
	"slices"

	"github.com/go-drift/retained/pkg/errors"
	"github.com/go-drift/retained/pkg/graphics"
)

// PollMessage takes the next message from the queue, routes it through the
// tree and returns it so the application can react. Messages whose
// destination no longer exists are dropped silently. It returns false once
// the queue is empty.
//
// Routing order: an optional layout pass, preview by ancestors (root
// first), the destination's handler, then each ancestor's handler up to the
// root, and finally the built-in handling of structural requests.
func (ui *UserInterface) PollMessage() (*Message, bool) {
	for {
		msg, ok := ui.queue.pop()
		if !ok {
			return nil, false
		}
		if !ui.nodes.IsValid(msg.Destination) {
			continue
		}
		ui.dispatch(msg)
		return msg, true
	}
}

// DrainMessages polls until the queue is empty or the per-tick budget from
// the configuration is spent, passing each routed message to observe. When
// the budget runs out the rest stay queued and ErrMessageBudget is
// reported. It returns the number of messages routed.
func (ui *UserInterface) DrainMessages(observe func(*Message)) int {
	budget := ui.cfg.Messages.MaxPerTick
	n := 0
	for budget <= 0 || n < budget {
		msg, ok := ui.PollMessage()
		if !ok {
			return n
		}
		n++
		if observe != nil {
			observe(msg)
		}
	}
	if pending := ui.queue.len(); pending > 0 {
		ui.report("ui.DrainMessages", errors.KindMessage, None,
			fmt.Errorf("%w: routed %d, %d still queued", errors.ErrMessageBudget, n, pending))
	}
	return n
}

// Tick drains messages and then runs Update. It is the usual per-frame
// entry point for an embedder.
func (ui *UserInterface) Tick(screenSize graphics.Vec2, dt float32, observe func(*Message)) int {
	n := ui.DrainMessages(observe)
	ui.Update(screenSize, dt)
	return n
}

func (ui *UserInterface) dispatch(msg *Message) {
	defer errors.RecoverTo(ui.errors, "ui.dispatch", nil)

	ui.captureRenewed = false
	if msg.PerformLayout {
		ui.UpdateLayout()
	}

	chain := ui.routeChain(msg.Destination)
	for i := len(chain) - 1; i >= 1; i-- {
		c, ok := ui.nodes.Borrow(chain[i])
		if !ok || !c.Base().previewMessages {
			continue
		}
		if p, ok := c.(MessagePreviewer); ok {
			p.PreviewMessage(ui, msg)
		}
	}
	for _, h := range chain {
		if c, ok := ui.nodes.Borrow(h); ok {
			c.HandleRoutedMessage(ui, msg)
		}
	}

	if msg.Direction == ToWidget {
		ui.applyStructural(msg)
	} else {
		ui.afterNotification(msg)
	}
}

// routeChain returns dest followed by its ancestors up to the root.
func (ui *UserInterface) routeChain(dest Handle) []Handle {
	var chain []Handle
	for cur := dest; cur.IsSome(); {
		w := ui.Widget(cur)
		if w == nil {
			break
		}
		chain = append(chain, cur)
		cur = w.parent
	}
	return chain
}

func (ui *UserInterface) applyStructural(msg *Message) {
	dest := msg.Destination
	w := ui.Widget(dest)
	if w == nil {
		return
	}
	switch m := msg.Data.(type) {
	case WidgetZIndex:
		if p := ui.Widget(w.parent); p != nil {
			ui.sortByZIndex(p)
		}
	case WidgetTopmost:
		ui.MakeTopmost(dest)
	case WidgetUnlink:
		pos := w.screenPosition
		ui.UnlinkNode(dest)
		ui.Send(To(dest, WidgetDesiredPosition{Position: pos}))
	case WidgetLinkWith:
		ui.LinkNodes(dest, m.Parent)
	case WidgetLinkWithFront:
		ui.LinkNodesFront(dest, m.Parent)
	case WidgetRemove:
		ui.RemoveNode(dest)
	case WidgetCenter:
		area := ui.screenSize
		if p := ui.Widget(w.parent); p != nil && w.parent != ui.root {
			area = p.actualSize
		}
		pos := area.Sub(w.actualSize).Scale(0.5)
		ui.Send(To(dest, WidgetDesiredPosition{Position: pos}))
	case WidgetFocus:
		ui.setFocus(dest)
	}
}

func (ui *UserInterface) sortByZIndex(p *Widget) {
	slices.SortStableFunc(p.children, func(a, b Handle) int {
		wa, wb := ui.Widget(a), ui.Widget(b)
		if wa == nil || wb == nil {
			return 0
		}
		return wa.zIndex - wb.zIndex
	})
}

// afterNotification releases an implicit capture once the captured node has
// seen the button go up, unless a handler captured again while routing it.
func (ui *UserInterface) afterNotification(msg *Message) {
	if _, ok := msg.Data.(WidgetMouseUp); !ok {
		return
	}
	if msg.Destination == ui.captured && !ui.captureRenewed && ui.cfg.ReleaseCaptureOnMouseUp() {
		ui.ReleaseMouseCapture()
	}
}

func (ui *UserInterface) setFocus(h Handle) {
	if h == ui.focused {
		return
	}
	if ui.nodes.IsValid(ui.focused) {
		ui.Send(From(ui.focused, WidgetLostFocus{}))
	}
	ui.focused = h
	if ui.nodes.IsValid(h) {
		ui.Send(From(h, WidgetGotFocus{}))
	}
}

// FocusedNode returns the node that receives keyboard input.
func (ui *UserInterface) FocusedNode() Handle { return ui.focused }
