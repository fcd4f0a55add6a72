package ui

import (
	"testing"

	"github.com/go-drift/retained/pkg/errors"
	"github.com/go-drift/retained/pkg/graphics"
)

var testScreen = graphics.V2(200, 100)

func newTestUI(t *testing.T, opts ...Option) (*UserInterface, *errors.RecordingHandler) {
	t.Helper()
	rec := &errors.RecordingHandler{}
	u, err := New(testScreen, append([]Option{WithErrorHandler(rec)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return u, rec
}

// box is a fixed-size node placed at pos on the root canvas.
func box(name string, pos graphics.Vec2, w, h float32) *Plain {
	return NewPlain(NewWidgetBuilder().
		WithName(name).
		WithDesiredPosition(pos).
		WithWidth(w).
		WithHeight(h))
}

func drain(u *UserInterface) []*Message {
	var out []*Message
	u.DrainMessages(func(m *Message) { out = append(out, m) })
	return out
}

func frame(u *UserInterface) []*Message {
	msgs := drain(u)
	u.Update(testScreen, 0)
	return msgs
}

// recorder logs every message routed through it.
type recorder struct {
	Widget
	tag string
	log *[]string
	got []*Message
}

func newRecorder(tag string, log *[]string, b *WidgetBuilder) *recorder {
	return &recorder{Widget: b.Build(), tag: tag, log: log}
}

func (r *recorder) HandleRoutedMessage(ui *UserInterface, msg *Message) {
	r.Widget.HandleRoutedMessage(ui, msg)
	r.got = append(r.got, msg)
	if r.log != nil {
		*r.log = append(*r.log, r.tag)
	}
}

func (r *recorder) PreviewMessage(ui *UserInterface, msg *Message) {
	if r.log != nil {
		*r.log = append(*r.log, "preview:"+r.tag)
	}
	msg.SetHandled(true)
}

func dataTypes(msgs []*Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, typeName(m.Data))
	}
	return out
}

func typeName(v any) string {
	switch v.(type) {
	case WidgetMouseDown:
		return "down"
	case WidgetMouseUp:
		return "up"
	case WidgetMouseMove:
		return "move"
	case WidgetMouseEnter:
		return "enter"
	case WidgetMouseLeave:
		return "leave"
	case WidgetGotFocus:
		return "got_focus"
	case WidgetLostFocus:
		return "lost_focus"
	case WidgetKeyDown:
		return "key_down"
	case WidgetText:
		return "text"
	case WidgetDragStarted:
		return "drag_started"
	case WidgetDragOver:
		return "drag_over"
	case WidgetDrop:
		return "drop"
	default:
		return "other"
	}
}
