package ui

import (
	"testing"

	"github.com/go-drift/retained/pkg/config"
	"github.com/go-drift/retained/pkg/errors"
	"github.com/go-drift/retained/pkg/graphics"
)

type refHolder struct {
	Widget
	ref     Handle
	removed []Handle
}

func (r *refHolder) RemoveRef(h Handle) {
	r.removed = append(r.removed, h)
	if r.ref == h {
		r.ref = None
	}
}

func TestAddNodeLinksUnderRoot(t *testing.T) {
	u, _ := newTestUI(t)
	a := u.AddNode(box("a", graphics.Vec2{}, 10, 10))

	if got := u.Widget(a).Parent(); got != u.Root() {
		t.Fatalf("parent = %v, want root %v", got, u.Root())
	}
	if !u.Widget(u.Root()).HasChild(a) {
		t.Fatal("root does not list the new node")
	}
	if u.Len() != 2 {
		t.Fatalf("Len = %d, want 2", u.Len())
	}
}

func TestBuilderChildrenAreRelinked(t *testing.T) {
	u, _ := newTestUI(t)
	c1 := u.AddNode(box("c1", graphics.Vec2{}, 1, 1))
	c2 := u.AddNode(box("c2", graphics.Vec2{}, 1, 1))
	p := u.AddNode(NewPlain(NewWidgetBuilder().WithChildren(c1, c2)))

	children := u.Widget(p).Children()
	if len(children) != 2 || children[0] != c1 || children[1] != c2 {
		t.Fatalf("children = %v, want [%v %v]", children, c1, c2)
	}
	if u.Widget(u.Root()).HasChild(c1) {
		t.Fatal("c1 still listed under root")
	}
	if u.Widget(c1).Parent() != p {
		t.Fatal("c1 parent not updated")
	}
}

func TestLinkNodesFront(t *testing.T) {
	u, _ := newTestUI(t)
	p := u.AddNode(NewPlain(NewWidgetBuilder()))
	a := u.AddNode(box("a", graphics.Vec2{}, 1, 1))
	b := u.AddNode(box("b", graphics.Vec2{}, 1, 1))
	u.LinkNodes(a, p)
	u.LinkNodesFront(b, p)

	children := u.Widget(p).Children()
	if len(children) != 2 || children[0] != b || children[1] != a {
		t.Fatalf("children = %v, want [b a]", children)
	}
}

func TestLinkRejectsCycle(t *testing.T) {
	u, rec := newTestUI(t)
	a := u.AddNode(NewPlain(NewWidgetBuilder()))
	b := u.AddNodeTo(NewPlain(NewWidgetBuilder()), a)
	c := u.AddNodeTo(NewPlain(NewWidgetBuilder()), b)

	if u.LinkNodes(a, c) {
		t.Fatal("linking a node under its own descendant succeeded")
	}
	if u.LinkNodes(a, a) {
		t.Fatal("linking a node to itself succeeded")
	}
	if u.Widget(a).Parent() != u.Root() {
		t.Fatal("rejected link changed the tree")
	}
	errs := rec.Errors()
	if len(errs) != 2 {
		t.Fatalf("reported %d errors, want 2", len(errs))
	}
	for _, e := range errs {
		if !errors.Is(e, errors.ErrCycle) || e.Kind != errors.KindStructure {
			t.Fatalf("unexpected error %v", e)
		}
	}
}

func TestLinkCycleCheckDisabledStillRejectsSelf(t *testing.T) {
	off := false
	cfg := config.Default()
	cfg.Layout.RejectCycles = &off
	u, _ := newTestUI(t, WithConfig(cfg))
	a := u.AddNode(NewPlain(NewWidgetBuilder()))
	if u.LinkNodes(a, a) {
		t.Fatal("self link succeeded")
	}
}

func TestHasDescendant(t *testing.T) {
	u, _ := newTestUI(t)
	a := u.AddNode(NewPlain(NewWidgetBuilder()))
	b := u.AddNodeTo(NewPlain(NewWidgetBuilder()), a)
	c := u.AddNodeTo(NewPlain(NewWidgetBuilder()), b)

	tests := []struct {
		candidate, of Handle
		want          bool
	}{
		{c, a, true},
		{b, a, true},
		{a, c, false},
		{a, a, false},
		{c, u.Root(), true},
		{None, a, false},
	}
	for _, tt := range tests {
		if got := u.HasDescendant(tt.candidate, tt.of); got != tt.want {
			t.Errorf("HasDescendant(%v, %v) = %v, want %v", tt.candidate, tt.of, got, tt.want)
		}
	}
}

func TestRemoveNodeFreesSubtree(t *testing.T) {
	u, _ := newTestUI(t)
	a := u.AddNode(NewPlain(NewWidgetBuilder()))
	b := u.AddNodeTo(NewPlain(NewWidgetBuilder()), a)
	c := u.AddNodeTo(NewPlain(NewWidgetBuilder()), b)

	u.RemoveNode(a)
	for _, h := range []Handle{a, b, c} {
		if u.IsValid(h) {
			t.Fatalf("%v still valid after removing its subtree", h)
		}
	}
	if u.Len() != 1 {
		t.Fatalf("Len = %d, want 1", u.Len())
	}
	if u.Widget(u.Root()).HasChild(a) {
		t.Fatal("root still lists removed node")
	}

	// A reused slot gets a new generation, so old handles stay dead.
	d := u.AddNode(NewPlain(NewWidgetBuilder()))
	if d == a || d == b || d == c {
		t.Fatalf("new node reused a stale handle %v", d)
	}
	if u.IsValid(a) {
		t.Fatal("stale handle resolves after slot reuse")
	}
}

func TestRemoveRootIgnored(t *testing.T) {
	u, _ := newTestUI(t)
	u.RemoveNode(u.Root())
	if !u.IsValid(u.Root()) {
		t.Fatal("root was removed")
	}
}

func TestRemoveNodeNotifiesRefRemovers(t *testing.T) {
	u, _ := newTestUI(t)
	target := u.AddNode(NewPlain(NewWidgetBuilder()))
	child := u.AddNodeTo(NewPlain(NewWidgetBuilder()), target)
	holder := &refHolder{Widget: NewWidgetBuilder().Build(), ref: target}
	u.AddNode(holder)

	u.RemoveNode(target)
	if holder.ref != None {
		t.Fatalf("holder still references %v", holder.ref)
	}
	if len(holder.removed) != 2 {
		t.Fatalf("RemoveRef called %d times, want 2", len(holder.removed))
	}
	seen := map[Handle]bool{}
	for _, h := range holder.removed {
		seen[h] = true
	}
	if !seen[target] || !seen[child] {
		t.Fatalf("removed = %v, want target and child", holder.removed)
	}
}

func TestRemoveNodeClearsInputState(t *testing.T) {
	u, _ := newTestUI(t)
	a := u.AddNode(box("a", graphics.Vec2{}, 50, 50))
	u.Update(testScreen, 0)

	u.ProcessOSEvent(CursorMoved{Position: graphics.V2(10, 10)})
	u.ProcessOSEvent(MouseInput{Button: MouseLeft, State: Pressed})
	u.CaptureMouse(a)
	u.PushPickingRestriction(RestrictionEntry{Handle: a, Stop: true})

	u.RemoveNode(a)
	if u.PickedNode() != None || u.FocusedNode() != None || u.CapturedNode() != None {
		t.Fatalf("input state still refers to removed node: picked=%v focused=%v captured=%v",
			u.PickedNode(), u.FocusedNode(), u.CapturedNode())
	}
	if len(u.PickingRestrictions()) != 0 {
		t.Fatal("restriction for removed node kept")
	}
}

func TestUnlinkNodeMovesUnderRoot(t *testing.T) {
	u, _ := newTestUI(t)
	p := u.AddNode(NewPlain(NewWidgetBuilder()))
	c := u.AddNodeTo(NewPlain(NewWidgetBuilder()), p)
	u.UnlinkNode(c)
	if u.Widget(c).Parent() != u.Root() || u.Widget(p).HasChild(c) {
		t.Fatal("node not moved under root")
	}
}

func TestFindByName(t *testing.T) {
	u, _ := newTestUI(t)
	p := u.AddNode(NewPlain(NewWidgetBuilder().WithName("panel")))
	c := u.AddNodeTo(NewPlain(NewWidgetBuilder().WithName("item")), p)

	if got := u.FindByName(u.Root(), "item"); got != c {
		t.Fatalf("FindByName = %v, want %v", got, c)
	}
	if got := u.FindByName(u.Root(), "missing"); got != None {
		t.Fatalf("FindByName(missing) = %v", got)
	}
	up := u.FindUp(c, func(c Control) bool { return c.Base().Name() == "panel" })
	if up != p {
		t.Fatalf("FindUp = %v, want %v", up, p)
	}
}

func TestTryCast(t *testing.T) {
	u, _ := newTestUI(t)
	holder := &refHolder{Widget: NewWidgetBuilder().Build()}
	h := u.AddNode(holder)
	c := u.AddNodeTo(NewPlain(NewWidgetBuilder()), h)

	if got, ok := TryCast[*refHolder](u, h); !ok || got != holder {
		t.Fatal("TryCast failed on matching type")
	}
	if _, ok := TryCast[*refHolder](u, c); ok {
		t.Fatal("TryCast succeeded on wrong type")
	}
	found, got, ok := TryCastUp[*refHolder](u, c)
	if !ok || found != h || got != holder {
		t.Fatalf("TryCastUp = %v, %v", found, ok)
	}
}
