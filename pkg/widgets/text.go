package widgets

import (
	"slices"
	"strings"

	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// Text requests. Both are echoed FromWidget only when they change the
// control.
type (
	TextMessage     struct{ Text string }
	TextWrapMessage struct{ Wrap bool }
)

// Text displays a string measured with the interface font.
//
// Without wrapping the text keeps one line per explicit newline and may
// overflow its slot. With wrapping it breaks at whitespace to fit the
// width it is given; the measure pass wraps against the available width
// and the arrange pass wraps again against the final width. MaxLines
// limits the number of lines kept, zero meaning no limit.
type Text struct {
	ui.Widget
	text     string
	wrap     bool
	maxLines int
	font     *graphics.Font
	lines    []string
}

func (t *Text) Text() string  { return t.text }
func (t *Text) Wrap() bool    { return t.wrap }
func (t *Text) MaxLines() int { return t.maxLines }

// Lines returns the lines produced by the last layout pass.
func (t *Text) Lines() []string { return slices.Clone(t.lines) }

func (t *Text) layoutLines(width float32) []string {
	var lines []string
	if t.wrap {
		lines = t.font.Wrap(t.text, width)
	} else {
		lines = strings.Split(t.text, "\n")
	}
	if t.maxLines > 0 && len(lines) > t.maxLines {
		lines = lines[:t.maxLines]
	}
	return lines
}

func (t *Text) extent(lines []string) graphics.Vec2 {
	if t.text == "" {
		return graphics.Vec2{}
	}
	var width float32
	for _, l := range lines {
		width = max(width, t.font.Advance(l))
	}
	return graphics.V2(width, t.font.LineHeight()*float32(len(lines)))
}

// MeasureOverride lays the text out against the available width.
func (t *Text) MeasureOverride(u *ui.UserInterface, available graphics.Vec2) graphics.Vec2 {
	t.font = u.Font()
	t.lines = t.layoutLines(available.X)
	size := t.extent(t.lines)
	for _, child := range t.Children() {
		u.MeasureNode(child, available)
	}
	return size
}

func (t *Text) ArrangeOverride(u *ui.UserInterface, finalSize graphics.Vec2) graphics.Vec2 {
	if t.font == nil {
		t.font = u.Font()
	}
	if t.wrap {
		t.lines = t.layoutLines(finalSize.X)
	}
	return t.Widget.ArrangeOverride(u, finalSize)
}

// Draw emits one text command per line.
func (t *Text) Draw(dc *graphics.DrawingContext) {
	t.Widget.Draw(dc)
	if t.font == nil {
		return
	}
	brush := t.Foreground()
	if !brush.IsVisible() {
		brush = graphics.SolidBrush(graphics.ColorWhite)
	}
	bounds := t.ScreenBounds()
	lineHeight := t.font.LineHeight()
	for i, l := range t.lines {
		r := graphics.RectFromXYWH(bounds.X, bounds.Y+float32(i)*lineHeight, t.font.Advance(l), lineHeight)
		dc.Text(r, l, brush)
	}
}

func (t *Text) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	t.Widget.HandleRoutedMessage(u, msg)
	if msg.Destination != t.Handle() || msg.Direction != ui.ToWidget {
		return
	}
	switch m := msg.Data.(type) {
	case TextMessage:
		if t.text != m.Text {
			t.text = m.Text
			u.InvalidateLayout(t.Handle())
			u.Send(msg.Reverse())
		}
	case TextWrapMessage:
		if t.wrap != m.Wrap {
			t.wrap = m.Wrap
			u.InvalidateLayout(t.Handle())
			u.Send(msg.Reverse())
		}
	}
}

// TextBuilder builds a Text.
type TextBuilder struct {
	wb       *ui.WidgetBuilder
	text     string
	wrap     bool
	maxLines int
}

// NewTextBuilder creates a builder for a Text.
func NewTextBuilder(wb *ui.WidgetBuilder) *TextBuilder {
	return &TextBuilder{wb: wb}
}

func (b *TextBuilder) WithText(text string) *TextBuilder {
	b.text = text
	return b
}

// WithWrap breaks lines at word boundaries to fit the width.
func (b *TextBuilder) WithWrap(wrap bool) *TextBuilder {
	b.wrap = wrap
	return b
}

// WithMaxLines drops lines past n. Zero means no limit.
func (b *TextBuilder) WithMaxLines(n int) *TextBuilder {
	b.maxLines = max(n, 0)
	return b
}

// Build adds the text to u.
func (b *TextBuilder) Build(u *ui.UserInterface) ui.Handle {
	return u.AddNode(&Text{
		Widget:   b.wb.Build(),
		text:     b.text,
		wrap:     b.wrap,
		maxLines: b.maxLines,
		font:     u.Font(),
	})
}
