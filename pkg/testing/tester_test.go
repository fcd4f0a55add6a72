package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// clicker reports a click-like notification for every mouse up it sees.
type clicker struct {
	ui.Widget
	ups  int
	keys []ui.KeyCode
	text []rune
}

type clicked struct{}

func (c *clicker) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	c.Widget.HandleRoutedMessage(u, msg)
	if msg.Destination != c.Handle() || msg.Direction != ui.FromWidget {
		return
	}
	switch m := msg.Data.(type) {
	case ui.WidgetMouseUp:
		c.ups++
		u.Send(ui.From(c.Handle(), clicked{}))
	case ui.WidgetKeyDown:
		c.keys = append(c.keys, m.Key)
	case ui.WidgetText:
		c.text = append(c.text, m.Rune)
	}
}

func addBox(tester *Tester, name string, pos graphics.Vec2, w, h float32) ui.Handle {
	return tester.UI().AddNode(ui.NewPlain(ui.NewWidgetBuilder().
		WithName(name).
		WithDesiredPosition(pos).
		WithWidth(w).
		WithHeight(h)))
}

func TestNewTester_Defaults(t *testing.T) {
	tester := NewTester(t, graphics.Vec2{})
	if tester.Size() != graphics.V2(DefaultTestWidth, DefaultTestHeight) {
		t.Errorf("expected default size, got %+v", tester.Size())
	}
	if tester.UI().ScreenSize() != tester.Size() {
		t.Errorf("screen size %+v does not match tester", tester.UI().ScreenSize())
	}
}

func TestPumpRunsLayout(t *testing.T) {
	tester := NewTester(t, graphics.V2(100, 100))
	addBox(tester, "a", graphics.V2(10, 20), 30, 40)
	tester.Pump()

	if got := tester.Bounds(ByName("a")); got != graphics.RectFromXYWH(10, 20, 30, 40) {
		t.Errorf("bounds = %+v", got)
	}
}

func TestFinders(t *testing.T) {
	tester := NewTester(t, graphics.V2(100, 100))
	parent := addBox(tester, "parent", graphics.Vec2{}, 50, 50)
	child := tester.UI().AddNodeTo(ui.NewPlain(ui.NewWidgetBuilder().WithName("child")), parent)
	addBox(tester, "other", graphics.V2(60, 0), 10, 10)

	if got := tester.Find(ByName("child")).First(); got != child {
		t.Errorf("ByName = %v, want %v", got, child)
	}
	// parent, child and other; the root is a Canvas.
	if got := tester.Find(ByType[*ui.Plain]()).Count(); got != 3 {
		t.Errorf("ByType count = %d, want 3", got)
	}
	if got := tester.Find(Descendant(ByName("parent"), ByType[*ui.Plain]())).All(); len(got) != 1 || got[0] != child {
		t.Errorf("Descendant = %v", got)
	}
	if tester.Find(ByName("missing")).Exists() {
		t.Error("missing name found")
	}
	if tester.Find(ByName("missing")).FirstOrNone().IsSome() {
		t.Error("FirstOrNone returned a handle")
	}
	if !tester.Find(ByHandle(parent)).Exists() {
		t.Error("ByHandle did not match")
	}
}

func TestFinderResult_FirstPanicsWhenEmpty(t *testing.T) {
	tester := NewTester(t, graphics.V2(10, 10))
	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), `name "x"`) {
			t.Errorf("recover = %v", r)
		}
	}()
	tester.Find(ByName("x")).First()
}

func TestClickAndCollect(t *testing.T) {
	tester := NewTester(t, graphics.V2(100, 100))
	c := &clicker{Widget: ui.NewWidgetBuilder().
		WithName("btn").
		WithDesiredPosition(graphics.V2(10, 10)).
		WithWidth(20).WithHeight(20).
		Build()}
	tester.UI().AddNode(c)

	if err := tester.Click(ByName("btn")); err != nil {
		t.Fatal(err)
	}
	if c.ups != 1 {
		t.Fatalf("mouse ups = %d, want 1", c.ups)
	}
	if got := Collected[clicked](tester); len(got) != 1 {
		t.Fatalf("collected clicks = %d, want 1", len(got))
	}
	if msgs := tester.Collect(); len(msgs) == 0 {
		t.Fatal("Collect returned nothing")
	}
	if msgs := tester.Collect(); len(msgs) != 0 {
		t.Fatalf("Collect did not forget: %d", len(msgs))
	}
}

func TestClickMissingNode(t *testing.T) {
	tester := NewTester(t, graphics.V2(100, 100))
	if err := tester.Click(ByName("nope")); err == nil {
		t.Fatal("expected error")
	}
}

func TestKeyboardGoesToFocused(t *testing.T) {
	tester := NewTester(t, graphics.V2(100, 100))
	c := &clicker{Widget: ui.NewWidgetBuilder().WithName("field").Build()}
	tester.UI().AddNode(c)

	if err := tester.Focus(ByName("field")); err != nil {
		t.Fatal(err)
	}
	tester.PressKey(ui.KeyEnter)
	tester.TypeText("hi")

	if len(c.keys) != 1 || c.keys[0] != ui.KeyEnter {
		t.Errorf("keys = %v", c.keys)
	}
	if string(c.text) != "hi" {
		t.Errorf("text = %q", string(c.text))
	}
}

func TestDragStartsDrag(t *testing.T) {
	tester := NewTester(t, graphics.V2(100, 100))
	tester.UI().AddNode(ui.NewPlain(ui.NewWidgetBuilder().
		WithName("src").
		WithWidth(20).WithHeight(20).
		WithAllowDrag(true)))

	if err := tester.Drag(ByName("src"), graphics.V2(40, 0)); err != nil {
		t.Fatal(err)
	}
	if got := Collected[ui.WidgetDragStarted](tester); len(got) != 1 {
		t.Fatalf("drag started = %d, want 1", len(got))
	}
}

func TestSnapshotFile(t *testing.T) {
	tester := NewTester(t, graphics.V2(100, 100))
	addBox(tester, "a", graphics.V2(5, 5), 10, 10)
	tester.UI().AddNode(ui.NewPlain(ui.NewWidgetBuilder().WithName("hidden").WithVisibility(false)))

	snap := tester.CaptureSnapshot()
	if snap.Find("hidden") != nil {
		t.Error("hidden node captured")
	}
	a := snap.Find("a")
	if a == nil || a.ID != "Plain#0" || a.Bounds != [4]float64{5, 5, 10, 10} {
		t.Fatalf("node a = %+v", a)
	}

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	snap.MatchesFile(t, path)

	addBox(tester, "b", graphics.V2(50, 50), 10, 10)
	changed := tester.CaptureSnapshot()
	loaded, err := loadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := changed.Diff(loaded); !strings.Contains(diff, `"b"`) {
		t.Errorf("diff does not mention new node:\n%s", diff)
	}
}

type fakeT struct {
	fatals []string
	errs   []string
}

func (f *fakeT) Helper()                           {}
func (f *fakeT) Fatalf(format string, args ...any) { f.fatals = append(f.fatals, format) }
func (f *fakeT) Errorf(format string, args ...any) { f.errs = append(f.errs, format) }
func (f *fakeT) Name() string                      { return "fake" }

func TestMatchesFile_Missing(t *testing.T) {
	tester := NewTester(t, graphics.V2(10, 10))
	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, filepath.Join(t.TempDir(), "none.json"))
	if len(ft.fatals) != 1 {
		t.Fatalf("fatals = %v", ft.fatals)
	}
}

func TestPumpAndSettle(t *testing.T) {
	tester := NewTester(t, graphics.V2(10, 10))
	h := addBox(tester, "a", graphics.Vec2{}, 5, 5)
	tester.Send(h, ui.WidgetWidth{Value: 8})
	if !tester.PumpAndSettle(5) {
		t.Fatal("did not settle")
	}
	if got := tester.UI().Widget(h).ActualSize().X; got != 8 {
		t.Errorf("width = %v, want 8", got)
	}
}
