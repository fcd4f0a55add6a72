package widgets

import (
	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// ButtonClick is sent FromWidget when the button is activated.
type ButtonClick struct{}

// ButtonContent replaces the content node. The previous content is
// removed from the tree.
type ButtonContent struct{ Content ui.Handle }

// Button reports a click when the left button is pressed and released over
// it, or when Enter or Space is pressed while it has focus. Presses on the
// content count as presses on the button.
type Button struct {
	ui.Widget
	content      ui.Handle
	pressed      bool
	pressedBrush graphics.Brush
}

// Content returns the content node, or ui.None.
func (b *Button) Content() ui.Handle { return b.content }

// IsPressed reports whether the button holds the mouse capture from a
// press.
func (b *Button) IsPressed() bool { return b.pressed }

func (b *Button) fromSelf(u *ui.UserInterface, msg *ui.Message) bool {
	return msg.Destination == b.Handle() || u.HasDescendant(msg.Destination, b.Handle())
}

// HandleRoutedMessage presses on mouse down, clicks on release over the button and on Enter.
func (b *Button) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	b.Widget.HandleRoutedMessage(u, msg)

	if msg.Direction == ui.FromWidget {
		if !b.fromSelf(u, msg) {
			return
		}
		switch m := msg.Data.(type) {
		case ui.WidgetMouseDown:
			if m.Button == ui.MouseLeft && !msg.Handled() {
				if u.CaptureMouse(b.Handle()) {
					b.pressed = true
				}
				msg.SetHandled(true)
			}
		case ui.WidgetMouseUp:
			if m.Button != ui.MouseLeft || !b.pressed {
				return
			}
			if b.ScreenBounds().Contains(u.CursorPosition()) && !msg.Handled() {
				u.Send(ui.From(b.Handle(), ButtonClick{}))
			}
			b.pressed = false
			if u.CapturedNode() == b.Handle() {
				u.ReleaseMouseCapture()
			}
			msg.SetHandled(true)
		case ui.WidgetKeyDown:
			if msg.Destination == b.Handle() && !msg.Handled() && (m.Key == ui.KeyEnter || m.Key == ui.KeySpace) {
				u.Send(ui.From(b.Handle(), ButtonClick{}))
				msg.SetHandled(true)
			}
		}
		return
	}

	if msg.Destination != b.Handle() {
		return
	}
	if m, ok := msg.Data.(ButtonContent); ok && m.Content != b.content {
		if b.content.IsSome() {
			u.RemoveNode(b.content)
		}
		b.content = m.Content
		if m.Content.IsSome() {
			u.LinkNodes(m.Content, b.Handle())
		}
		u.Send(msg.Reverse())
	}
}

func (b *Button) Draw(dc *graphics.DrawingContext) {
	if b.pressed && b.pressedBrush.IsVisible() {
		dc.FillRect(b.ScreenBounds(), b.pressedBrush)
		return
	}
	b.Widget.Draw(dc)
}

// RemoveRef drops the content handle when the content node is removed.
func (b *Button) RemoveRef(removed ui.Handle) {
	if b.content == removed {
		b.content = ui.None
	}
}

// ButtonBuilder builds a Button.
type ButtonBuilder struct {
	wb           *ui.WidgetBuilder
	content      ui.Handle
	text         string
	pressedBrush graphics.Brush
}

// NewButtonBuilder creates a builder for a Button.
func NewButtonBuilder(wb *ui.WidgetBuilder) *ButtonBuilder {
	return &ButtonBuilder{wb: wb}
}

// WithContent uses an existing node as the content.
func (b *ButtonBuilder) WithContent(h ui.Handle) *ButtonBuilder {
	b.content = h
	return b
}

// WithText creates a centered Text as the content when no other content
// is set.
func (b *ButtonBuilder) WithText(text string) *ButtonBuilder {
	b.text = text
	return b
}

// WithPressedBrush sets the background used while pressed.
func (b *ButtonBuilder) WithPressedBrush(brush graphics.Brush) *ButtonBuilder {
	b.pressedBrush = brush
	return b
}

// Build adds the button and its content to u.
func (b *ButtonBuilder) Build(u *ui.UserInterface) ui.Handle {
	content := b.content
	if content.IsNone() && b.text != "" {
		content = NewTextBuilder(ui.NewWidgetBuilder().
			WithHorizontalAlignment(ui.HAlignCenter).
			WithVerticalAlignment(ui.VAlignCenter)).
			WithText(b.text).
			Build(u)
	}
	return u.AddNode(&Button{
		Widget:       b.wb.WithChild(content).Build(),
		content:      content,
		pressedBrush: b.pressedBrush,
	})
}
