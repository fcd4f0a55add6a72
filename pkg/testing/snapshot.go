package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-drift/retained/pkg/ui"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the resolved geometry of the visible tree.
type Snapshot struct {
	Tree *Node `json:"tree"`
}

// Node is one visible node in a snapshot. IDs are the type name and a
// per-type counter in traversal order, so they do not depend on handles.
type Node struct {
	ID       string     `json:"id"`
	Name     string     `json:"name,omitempty"`
	Bounds   [4]float64 `json:"bounds"`
	Clipped  bool       `json:"clipped,omitempty"`
	Disabled bool       `json:"disabled,omitempty"`
	Children []*Node    `json:"children,omitempty"`
}

// CaptureSnapshot pumps once and captures the visible tree.
func (t *Tester) CaptureSnapshot() *Snapshot {
	t.Pump()
	counter := &typeCounter{}
	return &Snapshot{Tree: captureNode(t.ui, t.ui.Root(), counter)}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff. When UI_UPDATE_SNAPSHOTS=1 is set, the file is updated
// instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("UI_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: UI_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: UI_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.MarshalIndent()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MarshalIndent encodes the snapshot as indented JSON.
func (s *Snapshot) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Diff returns a line diff between other and this snapshot, or "" when
// they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.MarshalIndent()
	b, _ := other.MarshalIndent()
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

// Find returns the first node with the given name, or nil.
func (s *Snapshot) Find(name string) *Node {
	var found *Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || found != nil {
			return
		}
		if n.Name == name {
			found = n
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.Tree)
	return found
}

type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(u *ui.UserInterface, h ui.Handle, counter *typeCounter) *Node {
	c, ok := u.Node(h)
	if !ok {
		return nil
	}
	w := c.Base()
	if !w.IsGloballyVisible() {
		return nil
	}
	b := w.ScreenBounds()
	node := &Node{
		ID:       counter.next(controlTypeName(c)),
		Name:     w.Name(),
		Bounds:   [4]float64{round2(b.X), round2(b.Y), round2(b.Width), round2(b.Height)},
		Clipped:  !b.IsEmpty() && b.Intersect(w.ClipBounds()) != b,
		Disabled: !w.Enabled(),
	}
	for _, child := range w.Children() {
		if n := captureNode(u, child, counter); n != nil {
			node.Children = append(node.Children, n)
		}
	}
	return node
}

func controlTypeName(c ui.Control) string {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func round2(f float32) float64 {
	return math.Round(float64(f)*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// lineDiff produces a simple line-oriented diff.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
