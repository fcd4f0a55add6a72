package testing

import (
	"fmt"

	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// dragSteps is the number of cursor moves a simulated drag is split into.
const dragSteps = 4

func (t *Tester) center(f Finder, op string) (graphics.Vec2, error) {
	t.Pump()
	res := t.Find(f)
	if !res.Exists() {
		return graphics.Vec2{}, fmt.Errorf("%s: finder matched no nodes: %s", op, f.Description())
	}
	w := t.ui.Widget(res.First())
	if !w.IsGloballyVisible() {
		return graphics.Vec2{}, fmt.Errorf("%s: node is hidden: %s", op, f.Description())
	}
	return w.ScreenBounds().Center(), nil
}

// Event feeds a raw event and pumps.
func (t *Tester) Event(ev ui.OSEvent) bool {
	ok := t.ui.ProcessOSEvent(ev)
	t.Pump()
	return ok
}

// MoveMouse moves the cursor to pos.
func (t *Tester) MoveMouse(pos graphics.Vec2) {
	t.Event(ui.CursorMoved{Position: pos})
}

// Press presses button at the current cursor position.
func (t *Tester) Press(button ui.MouseButton) {
	t.Event(ui.MouseInput{Button: button, State: ui.Pressed})
}

// Release releases button at the current cursor position.
func (t *Tester) Release(button ui.MouseButton) {
	t.Event(ui.MouseInput{Button: button, State: ui.Released})
}

// Click clicks the left button at the center of the first node matched by
// f.
func (t *Tester) Click(f Finder) error {
	pos, err := t.center(f, "Click")
	if err != nil {
		return err
	}
	t.ClickAt(pos)
	return nil
}

// ClickAt moves to pos and clicks the left button there.
func (t *Tester) ClickAt(pos graphics.Vec2) {
	t.MoveMouse(pos)
	t.Press(ui.MouseLeft)
	t.Release(ui.MouseLeft)
}

// Drag presses the left button at the center of the first node matched by
// f, moves by delta and releases.
func (t *Tester) Drag(f Finder, delta graphics.Vec2) error {
	start, err := t.center(f, "Drag")
	if err != nil {
		return err
	}
	t.DragFrom(start, delta)
	return nil
}

// DragFrom presses the left button at start, moves by delta in a few steps
// and releases.
func (t *Tester) DragFrom(start, delta graphics.Vec2) {
	t.MoveMouse(start)
	t.Press(ui.MouseLeft)
	for i := 1; i <= dragSteps; i++ {
		t.MoveMouse(start.Add(delta.Scale(float32(i) / dragSteps)))
	}
	t.Release(ui.MouseLeft)
}

// PressKey presses and releases key.
func (t *Tester) PressKey(key ui.KeyCode) {
	t.Event(ui.KeyboardInput{Key: key, State: ui.Pressed})
	t.Event(ui.KeyboardInput{Key: key, State: ui.Released})
}

// TypeText sends one character event per rune.
func (t *Tester) TypeText(s string) {
	for _, r := range s {
		t.Event(ui.Character{Rune: r})
	}
}

// Focus moves keyboard focus to the first node matched by f.
func (t *Tester) Focus(f Finder) error {
	res := t.Find(f)
	if !res.Exists() {
		return fmt.Errorf("Focus: finder matched no nodes: %s", f.Description())
	}
	t.Send(res.First(), ui.WidgetFocus{})
	t.Pump()
	return nil
}
