package ui

import "github.com/go-drift/retained/pkg/graphics"

// Control is the capability set the UserInterface calls through for every
// node. Embedding Widget provides defaults for all of it; a control
// overrides only what differs.
type Control interface {
	// Base returns the shared widget record.
	Base() *Widget
	// MeasureOverride returns the desired size of the content given the
	// space available to it, margins already removed. Children must be
	// measured through ui.MeasureNode.
	MeasureOverride(ui *UserInterface, available graphics.Vec2) graphics.Vec2
	// ArrangeOverride places children through ui.ArrangeNode and returns
	// the size actually used.
	ArrangeOverride(ui *UserInterface, finalSize graphics.Vec2) graphics.Vec2
	// Draw records drawing commands in screen space.
	Draw(dc *graphics.DrawingContext)
	// HandleRoutedMessage is called for messages addressed to the control
	// and, during bubbling, for messages addressed to its descendants.
	HandleRoutedMessage(ui *UserInterface, msg *Message)
}

// MessagePreviewer is implemented by controls that observe messages bound
// for their descendants before the destination handles them. The widget's
// preview flag must also be set.
type MessagePreviewer interface {
	PreviewMessage(ui *UserInterface, msg *Message)
}

// OSEventHandler is implemented by controls that observe raw input
// regardless of picking. The widget's OS-event flag must also be set.
type OSEventHandler interface {
	HandleOSEvent(self Handle, ui *UserInterface, ev OSEvent)
}

// Updater is implemented by controls with per-frame work.
type Updater interface {
	Update(ui *UserInterface, dt float32)
}

// RefRemover is implemented by controls that keep handles to other nodes.
// RemoveRef is called once per removed node so the control can drop
// references that would otherwise dangle.
type RefRemover interface {
	RemoveRef(removed Handle)
}

// TryCast returns the node behind h as a T.
func TryCast[T Control](ui *UserInterface, h Handle) (T, bool) {
	var zero T
	c, ok := ui.nodes.Borrow(h)
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}

// TryCastUp walks from h towards the root and returns the first node that
// is a T, starting with h itself.
func TryCastUp[T Control](ui *UserInterface, h Handle) (Handle, T, bool) {
	var zero T
	for cur := h; cur.IsSome(); {
		c, ok := ui.nodes.Borrow(cur)
		if !ok {
			break
		}
		if t, ok := c.(T); ok {
			return cur, t, true
		}
		cur = c.Base().parent
	}
	return None, zero, false
}
