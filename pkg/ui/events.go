package ui

// ProcessOSEvent turns raw input into routed notifications. Pointer events
// go to the node under the cursor (or the captured node), keyboard events
// go to the focused node. Afterwards every control that opted in to raw
// input sees the event. It reports whether some node received a
// notification.
func (ui *UserInterface) ProcessOSEvent(ev OSEvent) bool {
	processed := false

	switch e := ev.(type) {
	case MouseInput:
		ui.setButton(e.Button, e.State)
		if e.State == Pressed {
			ui.picked = ui.HitTest(ui.cursorPosition)
			if ui.picked.IsSome() {
				ui.drag.node = ui.FindUp(ui.picked, func(c Control) bool { return c.Base().allowDrag })
				ui.drag.clickPos = ui.cursorPosition
			}
			ui.setFocus(ui.picked)
			if ui.picked.IsSome() {
				ui.Send(From(ui.picked, WidgetMouseDown{Position: ui.cursorPosition, Button: e.Button}))
				processed = true
			}
		} else {
			if ui.picked.IsSome() {
				if ui.drag.dragging {
					if w := ui.Widget(ui.picked); w != nil && w.allowDrop {
						ui.Send(From(ui.picked, WidgetDrop{Node: ui.drag.node}))
					}
				}
				ui.Send(From(ui.picked, WidgetMouseUp{Position: ui.cursorPosition, Button: e.Button}))
				processed = true
			}
			ui.drag = dragContext{}
		}

	case CursorMoved:
		ui.cursorPosition = e.Position
		ui.picked = ui.HitTest(e.Position)

		if !ui.drag.dragging && ui.mouseState.Left == Pressed &&
			ui.picked.IsSome() && ui.nodes.IsValid(ui.drag.node) &&
			e.Position.Sub(ui.drag.clickPos).Len() > ui.cfg.Input.DragThreshold {
			ui.drag.dragging = true
			ui.Send(From(ui.picked, WidgetDragStarted{Node: ui.drag.node}))
		}

		if ui.picked != ui.prevPicked {
			if w := ui.Widget(ui.prevPicked); w != nil {
				w.mouseOver = false
				ui.Send(From(ui.prevPicked, WidgetMouseLeave{}))
			}
		}
		if ui.picked.IsSome() {
			if ui.picked != ui.prevPicked {
				if w := ui.Widget(ui.picked); w != nil {
					w.mouseOver = true
				}
				ui.Send(From(ui.picked, WidgetMouseEnter{}))
			}
			ui.Send(From(ui.picked, WidgetMouseMove{Position: e.Position, State: ui.mouseState}))
			if ui.drag.dragging {
				ui.Send(From(ui.picked, WidgetDragOver{Node: ui.drag.node}))
			}
			processed = true
		}

	case MouseWheel:
		if ui.picked.IsSome() {
			ui.Send(From(ui.picked, WidgetMouseWheel{Position: ui.cursorPosition, Amount: e.Y}))
			processed = true
		}

	case Character:
		if ui.nodes.IsValid(ui.focused) {
			ui.Send(From(ui.focused, WidgetText{Rune: e.Rune}))
			processed = true
		}

	case KeyboardInput:
		if ui.nodes.IsValid(ui.focused) {
			if e.State == Pressed {
				ui.Send(From(ui.focused, WidgetKeyDown{Key: e.Key}))
			} else {
				ui.Send(From(ui.focused, WidgetKeyUp{Key: e.Key}))
			}
			processed = true
		}

	case ModifiersChanged:
		ui.modifiers = e.Modifiers
	}

	ui.prevPicked = ui.picked

	var observers []Handle
	for h, c := range ui.nodes.All() {
		if _, ok := c.(OSEventHandler); ok && c.Base().handleOSEvents {
			observers = append(observers, h)
		}
	}
	for _, h := range observers {
		if c, ok := ui.nodes.Borrow(h); ok {
			c.(OSEventHandler).HandleOSEvent(h, ui, ev)
		}
	}
	return processed
}

func (ui *UserInterface) setButton(b MouseButton, s ButtonState) {
	switch b {
	case MouseLeft:
		ui.mouseState.Left = s
	case MouseRight:
		ui.mouseState.Right = s
	case MouseMiddle:
		ui.mouseState.Middle = s
	}
}
