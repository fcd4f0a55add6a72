package graphics

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", RectFromXYWH(0, 0, 10, 10), RectFromXYWH(5, 5, 10, 10), RectFromXYWH(5, 5, 5, 5)},
		{"contained", RectFromXYWH(0, 0, 10, 10), RectFromXYWH(2, 2, 3, 3), RectFromXYWH(2, 2, 3, 3)},
		{"disjoint", RectFromXYWH(0, 0, 10, 10), RectFromXYWH(20, 20, 5, 5), RectFromXYWH(20, 20, 0, 0)},
	}
	for _, tt := range tests {
		got := tt.a.Intersect(tt.b)
		if got != tt.want {
			t.Errorf("%s: Intersect = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestRectContainsExclusiveEdges(t *testing.T) {
	r := RectFromXYWH(10, 10, 20, 20)
	if !r.Contains(V2(10, 10)) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(V2(30, 15)) {
		t.Error("right edge should be outside")
	}
	if r.Contains(V2(15, 30)) {
		t.Error("bottom edge should be outside")
	}
}

func TestRectUnionAndDeflate(t *testing.T) {
	u := RectFromXYWH(0, 0, 10, 10).Union(RectFromXYWH(20, 5, 5, 10))
	if u != RectFromXYWH(0, 0, 25, 15) {
		t.Fatalf("Union = %+v", u)
	}
	d := RectFromXYWH(0, 0, 10, 10).Deflate(Uniform(6))
	if d.Width != 0 || d.Height != 0 {
		t.Fatalf("Deflate should clamp at zero, got %+v", d)
	}
}

func TestSanitizeExtent(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-5, 0},
		{NaN(), 0},
		{3, 3},
		{Inf, Inf},
	}
	for _, tt := range tests {
		if got := SanitizeExtent(tt.in); got != tt.want {
			t.Errorf("SanitizeExtent(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := FiniteExtent(Inf); got != 0 {
		t.Errorf("FiniteExtent(Inf) = %v, want 0", got)
	}
}

func TestColorChannels(t *testing.T) {
	c := RGBA8(1, 2, 3, 4)
	if c.R() != 1 || c.G() != 2 || c.B() != 3 || c.A() != 4 {
		t.Fatalf("channels = %d %d %d %d", c.R(), c.G(), c.B(), c.A())
	}
	if got := ColorWhite.WithAlpha(0); got.A() != 0 {
		t.Errorf("WithAlpha(0) alpha = %d", got.A())
	}
	if got := ColorBlack.Lerp(ColorWhite, 1); got != ColorWhite {
		t.Errorf("Lerp(1) = %v, want white", got)
	}
}

func TestBrushVisibility(t *testing.T) {
	if (Brush{}).IsVisible() {
		t.Error("empty brush should not be visible")
	}
	if SolidBrush(ColorTransparent).IsVisible() {
		t.Error("transparent brush should not be visible")
	}
	if !LinearGradientBrush(V2(0, 0), V2(1, 0), GradientStop{0, ColorTransparent}, GradientStop{1, ColorRed}).IsVisible() {
		t.Error("gradient with an opaque stop should be visible")
	}
}

func TestDrawingContextRecordsState(t *testing.T) {
	d := NewDrawingContext()
	clip := RectFromXYWH(0, 0, 50, 50)
	d.SetState(clip, 0.5, 7)
	d.FillRect(RectFromXYWH(1, 2, 3, 4), SolidBrush(ColorRed))
	d.FillRect(RectFromXYWH(1, 2, 3, 4), SolidBrush(ColorTransparent))
	d.Text(RectFromXYWH(0, 0, 10, 10), "", SolidBrush(ColorRed))

	cmds := d.Commands()
	if len(cmds) != 1 {
		t.Fatalf("recorded %d commands, want 1", len(cmds))
	}
	if cmds[0].Clip != clip || cmds[0].Opacity != 0.5 || cmds[0].Owner != 7 {
		t.Fatalf("command state = %+v", cmds[0])
	}
	d.Reset()
	if d.Len() != 0 {
		t.Fatal("Reset did not clear commands")
	}
}

func TestDefaultFontMetrics(t *testing.T) {
	f := DefaultFont()
	if got := f.Advance("abc"); got != 21 {
		t.Errorf("Advance(abc) = %v, want 21", got)
	}
	if got := f.LineHeight(); got != 13 {
		t.Errorf("LineHeight = %v, want 13", got)
	}
	if got := f.Measure("ab\nabcd"); got != V2(28, 26) {
		t.Errorf("Measure = %+v, want {28 26}", got)
	}
}

func TestFontWrap(t *testing.T) {
	f := DefaultFont()
	// Each glyph is 7 wide; 35 fits five glyphs.
	lines := f.Wrap("aa bb cc", 35)
	want := []string{"aa bb", "cc"}
	if len(lines) != len(want) {
		t.Fatalf("Wrap = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("Wrap = %q, want %q", lines, want)
		}
	}

	long := f.Wrap("abcdefgh", 21)
	if len(long) != 3 || long[0] != "abc" || long[2] != "gh" {
		t.Fatalf("Wrap long word = %q", long)
	}

	if got := f.Wrap("a b", Inf); len(got) != 1 {
		t.Fatalf("Wrap with infinite width = %q", got)
	}
}
