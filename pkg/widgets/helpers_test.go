package widgets_test

import (
	"testing"

	"github.com/go-drift/retained/pkg/graphics"
	uitest "github.com/go-drift/retained/pkg/testing"
	"github.com/go-drift/retained/pkg/ui"
)

var testScreen = graphics.V2(200, 100)

func newTester(t *testing.T) (*uitest.Tester, *ui.UserInterface) {
	t.Helper()
	tester := uitest.NewTester(t, testScreen)
	return tester, tester.UI()
}

// fixed builds a detached fixed-size node for use as a child.
func fixed(u *ui.UserInterface, name string, w, h float32) ui.Handle {
	return u.AddNode(ui.NewPlain(ui.NewWidgetBuilder().
		WithName(name).
		WithWidth(w).
		WithHeight(h)))
}

func cast[T ui.Control](t *testing.T, u *ui.UserInterface, h ui.Handle) T {
	t.Helper()
	c, ok := ui.TryCast[T](u, h)
	if !ok {
		t.Fatalf("node %v has the wrong type", h)
	}
	return c
}

func slot(u *ui.UserInterface, h ui.Handle) graphics.Rect {
	return u.Widget(h).PreviousArrange()
}
