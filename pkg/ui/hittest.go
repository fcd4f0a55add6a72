package ui

import "github.com/go-drift/retained/pkg/graphics"

// HitTest returns the node under pt. A live mouse capture wins outright.
// Otherwise the picking-restriction stack is searched from the top: each
// entry limits picking to its subtree, and an entry with Stop set ends the
// search when nothing in its subtree was hit. With no restrictions the
// whole tree is searched.
//
// Within a subtree the last hit in depth-first order wins, which is the
// deepest node drawn last. Nodes that are hidden, disabled or not hit-test
// visible exclude their whole subtree.
func (ui *UserInterface) HitTest(pt graphics.Vec2) Handle {
	if ui.nodes.IsValid(ui.captured) {
		return ui.captured
	}
	if len(ui.pickingStack) == 0 {
		return ui.pickNode(ui.root, pt)
	}
	for i := len(ui.pickingStack) - 1; i >= 0; i-- {
		r := ui.pickingStack[i]
		if ui.nodes.IsValid(r.Handle) {
			if h := ui.pickNode(r.Handle, pt); h.IsSome() {
				return h
			}
		}
		if r.Stop {
			break
		}
	}
	return None
}

func (ui *UserInterface) pickNode(h Handle, pt graphics.Vec2) Handle {
	w := ui.Widget(h)
	if w == nil || !w.hitTestVisible || !w.enabled || !w.globalVisibility {
		return None
	}
	picked := None
	if w.containsPoint(pt) {
		picked = h
	}
	for _, child := range w.children {
		if p := ui.pickNode(child, pt); p.IsSome() {
			picked = p
		}
	}
	return picked
}

// containsPoint tests pt against the visible part of the widget.
func (w *Widget) containsPoint(pt graphics.Vec2) bool {
	return w.ScreenBounds().Contains(pt) && w.clipBounds.Contains(pt)
}

// CaptureMouse routes all pointer input to h until released. It fails when
// h is invalid or another node holds the capture.
func (ui *UserInterface) CaptureMouse(h Handle) bool {
	if !ui.nodes.IsValid(h) {
		return false
	}
	if ui.nodes.IsValid(ui.captured) && ui.captured != h {
		return false
	}
	ui.captured = h
	ui.captureRenewed = true
	return true
}

// ReleaseMouseCapture ends any capture.
func (ui *UserInterface) ReleaseMouseCapture() {
	ui.captured = None
	ui.captureRenewed = false
}

// CapturedNode returns the node holding the capture, or None.
func (ui *UserInterface) CapturedNode() Handle {
	if !ui.nodes.IsValid(ui.captured) {
		return None
	}
	return ui.captured
}

// PushPickingRestriction limits picking to e.Handle's subtree. Pushing the
// entry already on top is a no-op.
func (ui *UserInterface) PushPickingRestriction(e RestrictionEntry) {
	if top, ok := ui.TopPickingRestriction(); ok && top.Handle == e.Handle {
		return
	}
	ui.pickingStack = append(ui.pickingStack, e)
}

// RemovePickingRestriction removes the entry for h wherever it sits.
func (ui *UserInterface) RemovePickingRestriction(h Handle) {
	for i, e := range ui.pickingStack {
		if e.Handle == h {
			ui.pickingStack = append(ui.pickingStack[:i], ui.pickingStack[i+1:]...)
			return
		}
	}
}

// TopPickingRestriction returns the most recent restriction.
func (ui *UserInterface) TopPickingRestriction() (RestrictionEntry, bool) {
	if len(ui.pickingStack) == 0 {
		return RestrictionEntry{}, false
	}
	return ui.pickingStack[len(ui.pickingStack)-1], true
}

// PickingRestrictions returns a copy of the stack, bottom first.
func (ui *UserInterface) PickingRestrictions() []RestrictionEntry {
	return append([]RestrictionEntry(nil), ui.pickingStack...)
}

// DropPickingRestrictions clears the stack.
func (ui *UserInterface) DropPickingRestrictions() {
	ui.pickingStack = ui.pickingStack[:0]
}

// PickedNode returns the node found under the cursor by the last input
// event.
func (ui *UserInterface) PickedNode() Handle { return ui.picked }

// CursorPosition returns the last reported cursor position.
func (ui *UserInterface) CursorPosition() graphics.Vec2 { return ui.cursorPosition }

// KeyboardModifiers returns the modifier state.
func (ui *UserInterface) KeyboardModifiers() KeyboardModifiers { return ui.modifiers }

// MouseState returns the button state.
func (ui *UserInterface) MouseState() MouseState { return ui.mouseState }

// IsDragging reports whether a drag is in progress, and of which node.
func (ui *UserInterface) IsDragging() (Handle, bool) {
	return ui.drag.node, ui.drag.dragging
}
