package widgets

import (
	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// CheckBoxChecked sets the checked state when sent ToWidget. The check box
// echoes it FromWidget only when the state changes.
type CheckBoxChecked struct{ Checked bool }

// CheckBox toggles when clicked or when Space is pressed while it has
// focus. The check mark node is shown only while checked.
type CheckBox struct {
	ui.Widget
	checked   bool
	checkMark ui.Handle
	pressed   bool
}

// IsChecked reports the current state.
func (c *CheckBox) IsChecked() bool { return c.checked }

// CheckMark returns the check mark node, or ui.None.
func (c *CheckBox) CheckMark() ui.Handle { return c.checkMark }

// HandleRoutedMessage toggles on click and Space and applies CheckBoxChecked.
func (c *CheckBox) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	c.Widget.HandleRoutedMessage(u, msg)
	self := c.Handle()

	if msg.Direction == ui.FromWidget {
		if msg.Destination != self && !u.HasDescendant(msg.Destination, self) {
			return
		}
		switch m := msg.Data.(type) {
		case ui.WidgetMouseDown:
			if m.Button == ui.MouseLeft && !msg.Handled() {
				c.pressed = u.CaptureMouse(self)
				msg.SetHandled(true)
			}
		case ui.WidgetMouseUp:
			if m.Button != ui.MouseLeft || !c.pressed {
				return
			}
			c.pressed = false
			if u.CapturedNode() == self {
				u.ReleaseMouseCapture()
			}
			if c.ScreenBounds().Contains(u.CursorPosition()) {
				u.Send(ui.To(self, CheckBoxChecked{Checked: !c.checked}))
			}
			msg.SetHandled(true)
		case ui.WidgetKeyDown:
			if msg.Destination == self && m.Key == ui.KeySpace && !msg.Handled() {
				u.Send(ui.To(self, CheckBoxChecked{Checked: !c.checked}))
				msg.SetHandled(true)
			}
		}
		return
	}

	if msg.Destination != self {
		return
	}
	if m, ok := msg.Data.(CheckBoxChecked); ok && m.Checked != c.checked {
		c.checked = m.Checked
		if c.checkMark.IsSome() {
			u.Send(ui.To(c.checkMark, ui.WidgetVisibility{Visible: c.checked}))
		}
		u.Send(msg.Reverse())
	}
}

// RemoveRef drops the check mark handle when that node is removed.
func (c *CheckBox) RemoveRef(removed ui.Handle) {
	if c.checkMark == removed {
		c.checkMark = ui.None
	}
}

// CheckBoxBuilder builds a CheckBox.
type CheckBoxBuilder struct {
	wb        *ui.WidgetBuilder
	checked   bool
	checkMark ui.Handle
}

// NewCheckBoxBuilder creates a builder for a CheckBox.
func NewCheckBoxBuilder(wb *ui.WidgetBuilder) *CheckBoxBuilder {
	return &CheckBoxBuilder{wb: wb}
}

// Checked sets the initial state.
func (b *CheckBoxBuilder) Checked(checked bool) *CheckBoxBuilder {
	b.checked = checked
	return b
}

// WithCheckMark uses an existing node as the check mark. Without one a
// filled square inset from the box is created.
func (b *CheckBoxBuilder) WithCheckMark(h ui.Handle) *CheckBoxBuilder {
	b.checkMark = h
	return b
}

// Build adds the check box to u, creating a default mark when none was given.
func (b *CheckBoxBuilder) Build(u *ui.UserInterface) ui.Handle {
	mark := b.checkMark
	if mark.IsNone() {
		mark = u.AddNode(ui.NewPlain(ui.NewWidgetBuilder().
			WithMargin(graphics.Uniform(3)).
			WithVisibility(b.checked).
			WithHitTestVisibility(false).
			WithBackground(graphics.SolidBrush(graphics.ColorWhite))))
	} else {
		u.Send(ui.To(mark, ui.WidgetVisibility{Visible: b.checked}))
	}
	return u.AddNode(&CheckBox{
		Widget:    b.wb.WithChild(mark).Build(),
		checked:   b.checked,
		checkMark: mark,
	})
}
