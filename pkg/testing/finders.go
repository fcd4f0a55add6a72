package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/retained/pkg/ui"
)

// Finder locates nodes in the tree.
type Finder interface {
	// Evaluate returns all matching nodes under root in depth-first
	// pre-order, root included.
	Evaluate(u *ui.UserInterface, root ui.Handle) []ui.Handle
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	handles []ui.Handle
	finder  Finder
}

// First returns the first match. Panics if there are no matches.
func (r FinderResult) First() ui.Handle {
	if len(r.handles) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.handles[0]
}

// FirstOrNone returns the first match, or ui.None.
func (r FinderResult) FirstOrNone() ui.Handle {
	if len(r.handles) == 0 {
		return ui.None
	}
	return r.handles[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) ui.Handle {
	if index < 0 || index >= len(r.handles) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.handles), r.describe()))
	}
	return r.handles[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []ui.Handle {
	return r.handles
}

func (r FinderResult) Count() int {
	return len(r.handles)
}

func (r FinderResult) Exists() bool {
	return len(r.handles) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// Find evaluates f over the whole tree.
func (t *Tester) Find(f Finder) FinderResult {
	return FinderResult{handles: f.Evaluate(t.ui, t.ui.Root()), finder: f}
}

type predicateFinder struct {
	match func(ui.Control) bool
	desc  string
}

func (f *predicateFinder) Evaluate(u *ui.UserInterface, root ui.Handle) []ui.Handle {
	var out []ui.Handle
	walkTree(u, root, func(h ui.Handle, c ui.Control) {
		if f.match(c) {
			out = append(out, h)
		}
	})
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByName matches nodes with the given name.
func ByName(name string) Finder {
	return &predicateFinder{
		match: func(c ui.Control) bool { return c.Base().Name() == name },
		desc:  fmt.Sprintf("name %q", name),
	}
}

// ByType matches nodes whose concrete control is a T.
func ByType[T ui.Control]() Finder {
	return &predicateFinder{
		match: func(c ui.Control) bool {
			_, ok := c.(T)
			return ok
		},
		desc: fmt.Sprintf("type %v", reflect.TypeFor[T]()),
	}
}

// ByHandle matches exactly h.
func ByHandle(h ui.Handle) Finder {
	return &predicateFinder{
		match: func(c ui.Control) bool { return c.Base().Handle() == h },
		desc:  fmt.Sprintf("handle %v", h),
	}
}

// ByPredicate matches nodes for which fn returns true.
func ByPredicate(fn func(ui.Control) bool) Finder {
	return &predicateFinder{match: fn, desc: "predicate"}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(u *ui.UserInterface, root ui.Handle) []ui.Handle {
	var out []ui.Handle
	seen := make(map[ui.Handle]bool)
	for _, anc := range f.of.Evaluate(u, root) {
		for _, h := range f.matching.Evaluate(u, anc) {
			if h != anc && !seen[h] {
				seen[h] = true
				out = append(out, h)
			}
		}
	}
	return out
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("%s descending from %s", f.matching.Description(), f.of.Description())
}

// Descendant matches nodes found by matching below a node found by of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func walkTree(u *ui.UserInterface, h ui.Handle, visit func(ui.Handle, ui.Control)) {
	c, ok := u.Node(h)
	if !ok {
		return
	}
	visit(h, c)
	for _, child := range c.Base().Children() {
		walkTree(u, child, visit)
	}
}
