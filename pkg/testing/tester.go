package testing

import (
	"testing"

	"github.com/go-drift/retained/pkg/errors"
	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

const (
	// DefaultTestWidth is the default logical width of the test screen.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height of the test screen.
	DefaultTestHeight = 600
)

// Tester drives a UserInterface without a window. Errors reported by the
// interface are recorded instead of logged.
type Tester struct {
	t         testing.TB
	ui        *ui.UserInterface
	errors    *errors.RecordingHandler
	size      graphics.Vec2
	collected []*ui.Message
}

// NewTester creates a tester with a screen of the given size. A zero size
// uses the default test screen.
func NewTester(t testing.TB, size graphics.Vec2, opts ...ui.Option) *Tester {
	t.Helper()
	if size == (graphics.Vec2{}) {
		size = graphics.V2(DefaultTestWidth, DefaultTestHeight)
	}
	rec := &errors.RecordingHandler{}
	u, err := ui.New(size, append([]ui.Option{ui.WithErrorHandler(rec)}, opts...)...)
	if err != nil {
		t.Fatalf("ui.New: %v", err)
	}
	return &Tester{t: t, ui: u, errors: rec, size: size}
}

// UI returns the interface under test.
func (t *Tester) UI() *ui.UserInterface { return t.ui }

// Errors returns the handler that recorded reported errors.
func (t *Tester) Errors() *errors.RecordingHandler { return t.errors }

// Size returns the screen size.
func (t *Tester) Size() graphics.Vec2 { return t.size }

// SetSize changes the screen size used by later pumps.
func (t *Tester) SetSize(size graphics.Vec2) {
	t.size = size
}

// Pump drains the message queue and runs one layout pass. It returns the
// number of messages dispatched.
func (t *Tester) Pump() int {
	return t.PumpFor(0)
}

// PumpFor is Pump with a frame time, which advances tweens.
func (t *Tester) PumpFor(dt float32) int {
	return t.ui.Tick(t.size, dt, t.observe)
}

// PumpAndSettle pumps until the queue stays empty after a pump, up to
// maxFrames frames. It reports whether the interface settled.
func (t *Tester) PumpAndSettle(maxFrames int) bool {
	for range maxFrames {
		t.Pump()
		if t.ui.QueueLen() == 0 {
			return true
		}
	}
	return false
}

func (t *Tester) observe(m *ui.Message) {
	if m.Direction == ui.FromWidget {
		t.collected = append(t.collected, m)
	}
}

// Collect returns the FromWidget messages seen since the last call and
// forgets them.
func (t *Tester) Collect() []*ui.Message {
	out := t.collected
	t.collected = nil
	return out
}

// Collected returns the payloads of type T among the FromWidget messages
// seen so far, without forgetting them.
func Collected[T any](t *Tester) []T {
	var out []T
	for _, m := range t.collected {
		if v, ok := m.Data.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Send queues a ToWidget message.
func (t *Tester) Send(dest ui.Handle, data any) {
	t.ui.Send(ui.To(dest, data))
}

// Widget returns the base record of the first match, failing the test
// when nothing matches.
func (t *Tester) Widget(f Finder) *ui.Widget {
	t.t.Helper()
	res := t.Find(f)
	if !res.Exists() {
		t.t.Fatalf("finder matched no nodes: %s", f.Description())
	}
	return t.ui.Widget(res.First())
}

// Bounds returns the screen bounds of the first match.
func (t *Tester) Bounds(f Finder) graphics.Rect {
	t.t.Helper()
	return t.Widget(f).ScreenBounds()
}
