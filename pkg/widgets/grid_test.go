package widgets_test

import (
	"slices"
	"testing"

	"github.com/go-drift/retained/pkg/graphics"
	uitest "github.com/go-drift/retained/pkg/testing"
	"github.com/go-drift/retained/pkg/ui"
	"github.com/go-drift/retained/pkg/widgets"
)

func gridCell(u *ui.UserInterface, name string, row, column int, w, h float32) ui.Handle {
	return u.AddNode(ui.NewPlain(ui.NewWidgetBuilder().
		WithName(name).
		OnRow(row).
		OnColumn(column).
		WithWidth(w).
		WithHeight(h)))
}

func TestGrid_StrictAutoStretch(t *testing.T) {
	tester, u := newTester(t)
	cells := []struct {
		name     string
		row, col int
		w, h     float32
	}{
		{"a", 0, 0, 15, 10},
		{"b", 0, 1, 50, 10},
		{"c", 1, 0, 15, 30},
		{"d", 1, 1, 50, 30},
	}
	var children []ui.Handle
	for _, c := range cells {
		children = append(children, gridCell(u, c.name, c.row, c.col, c.w, c.h))
	}
	h := widgets.NewGridBuilder(ui.NewWidgetBuilder().
		WithWidth(200).
		WithHeight(100).
		WithChildren(children...)).
		WithRows(widgets.StrictRow(20), widgets.StretchRow()).
		WithColumns(widgets.AutoColumn(), widgets.StretchColumn()).
		Build(u)
	tester.Pump()

	g := cast[*widgets.Grid](t, u, h)
	if got := g.ColumnWidths(); !slices.Equal(got, []float32{15, 185}) {
		t.Errorf("column widths = %v, want [15 185]", got)
	}
	if got := g.RowHeights(); !slices.Equal(got, []float32{20, 80}) {
		t.Errorf("row heights = %v, want [20 80]", got)
	}
	for i, c := range cells {
		want := g.CellRect(c.row, c.col)
		if got := slot(u, children[i]); got != want {
			t.Errorf("%s slot = %+v, want %+v", c.name, got, want)
		}
	}
	if got := g.CellRect(1, 1); got != graphics.RectFromXYWH(15, 20, 185, 80) {
		t.Errorf("cell (1,1) = %+v", got)
	}
	if got := tester.Bounds(uitest.ByName("d")); got != graphics.RectFromXYWH(15+67.5, 20+25, 50, 30) {
		t.Errorf("d bounds = %+v", got)
	}
}

func TestGrid_StretchSharesRemainder(t *testing.T) {
	tests := []struct {
		name    string
		columns []widgets.Column
		width   float32
		want    []float32
	}{
		{"all stretch", []widgets.Column{widgets.StretchColumn(), widgets.StretchColumn()}, 100, []float32{50, 50}},
		{"strict and stretch", []widgets.Column{widgets.StrictColumn(30), widgets.StretchColumn(), widgets.StretchColumn()}, 100, []float32{30, 35, 35}},
		{"overfull strict", []widgets.Column{widgets.StrictColumn(80), widgets.StrictColumn(40), widgets.StretchColumn()}, 100, []float32{80, 40, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester, u := newTester(t)
			h := widgets.NewGridBuilder(ui.NewWidgetBuilder().WithWidth(tt.width).WithHeight(10)).
				WithRows(widgets.StretchRow()).
				WithColumns(tt.columns...).
				Build(u)
			tester.Pump()
			if got := cast[*widgets.Grid](t, u, h).ColumnWidths(); !slices.Equal(got, tt.want) {
				t.Errorf("widths = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrid_UnboundedStretchUsesChildren(t *testing.T) {
	tester, u := newTester(t)
	a := gridCell(u, "a", 0, 0, 30, 10)
	h := widgets.NewGridBuilder(ui.NewWidgetBuilder().WithChild(a)).
		WithRows(widgets.AutoRow()).
		WithColumns(widgets.StretchColumn()).
		Build(u)
	tester.Pump()

	g := cast[*widgets.Grid](t, u, h)
	if got := g.DesiredSize(); got != graphics.V2(30, 10) {
		t.Errorf("desired = %+v, want (30,10)", got)
	}
}

func TestGrid_UnboundedStretchPerLine(t *testing.T) {
	tests := []struct {
		name    string
		columns []widgets.Column
		cells   [][4]float32 // row, column, width, height
		want    graphics.Vec2
	}{
		{
			name:    "stacked in one column",
			columns: []widgets.Column{widgets.StretchColumn()},
			cells:   [][4]float32{{0, 0, 50, 10}, {1, 0, 50, 10}},
			want:    graphics.V2(50, 20),
		},
		{
			name:    "two stretch columns",
			columns: []widgets.Column{widgets.StretchColumn(), widgets.StretchColumn()},
			cells:   [][4]float32{{0, 0, 50, 10}, {1, 0, 50, 10}, {0, 1, 20, 10}, {1, 1, 30, 5}},
			want:    graphics.V2(80, 20),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, u := newTester(t)
			var children []ui.Handle
			for _, c := range tt.cells {
				children = append(children, gridCell(u, "", int(c[0]), int(c[1]), c[2], c[3]))
			}
			h := widgets.NewGridBuilder(ui.NewWidgetBuilder().WithChildren(children...)).
				WithRows(widgets.AutoRow(), widgets.AutoRow()).
				WithColumns(tt.columns...).
				Build(u)

			u.MeasureNode(h, graphics.V2(graphics.Inf, graphics.Inf))
			if got := u.Widget(h).DesiredSize(); got != tt.want {
				t.Errorf("desired = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGrid_WithoutLinesActsAsPanel(t *testing.T) {
	tester, u := newTester(t)
	a := fixed(u, "a", 20, 10)
	h := widgets.NewGridBuilder(ui.NewWidgetBuilder().WithWidth(80).WithHeight(40).WithChild(a)).Build(u)
	tester.Pump()

	if got := slot(u, a); got != graphics.RectFromXYWH(0, 0, 80, 40) {
		t.Errorf("slot = %+v, want the full grid", got)
	}
	if got := cast[*widgets.Grid](t, u, h).CellRect(3, 3); got != graphics.RectFromXYWH(0, 0, 80, 40) {
		t.Errorf("cell = %+v", got)
	}
}

func TestGrid_OutOfRangeIndicesClamp(t *testing.T) {
	tester, u := newTester(t)
	a := gridCell(u, "a", 7, -2, 5, 5)
	h := widgets.NewGridBuilder(ui.NewWidgetBuilder().WithWidth(100).WithHeight(100).WithChild(a)).
		WithRows(widgets.StrictRow(10), widgets.StretchRow()).
		WithColumns(widgets.StrictColumn(10), widgets.StretchColumn()).
		Build(u)
	tester.Pump()

	if got, want := slot(u, a), cast[*widgets.Grid](t, u, h).CellRect(1, 0); got != want {
		t.Errorf("slot = %+v, want last row first column %+v", got, want)
	}
}

func TestGrid_Messages(t *testing.T) {
	tester, u := newTester(t)
	h := widgets.NewGridBuilder(ui.NewWidgetBuilder().WithWidth(100).WithHeight(100)).
		WithRows(widgets.StretchRow()).
		WithColumns(widgets.StretchColumn()).
		Build(u)
	tester.Pump()

	rows := []widgets.Row{widgets.StrictRow(30), widgets.StretchRow()}
	tester.Send(h, widgets.GridRows{Rows: rows})
	tester.Pump()
	tester.Send(h, widgets.GridRows{Rows: rows})
	tester.Pump()

	if got := uitest.Collected[widgets.GridRows](tester); len(got) != 1 {
		t.Fatalf("echoes = %d, want 1", len(got))
	}
	g := cast[*widgets.Grid](t, u, h)
	if got := g.RowHeights(); !slices.Equal(got, []float32{30, 70}) {
		t.Errorf("row heights = %v", got)
	}
	if !slices.Equal(g.Rows(), rows) {
		t.Errorf("rows = %v", g.Rows())
	}
}

func TestGrid_NegativeDefinitionEchoesOnce(t *testing.T) {
	tester, u := newTester(t)
	h := widgets.NewGridBuilder(ui.NewWidgetBuilder().WithWidth(100).WithHeight(100)).
		WithRows(widgets.StretchRow()).
		WithColumns(widgets.StretchColumn()).
		Build(u)
	tester.Pump()

	columns := []widgets.Column{widgets.StrictColumn(-5), widgets.StretchColumn()}
	for range 3 {
		tester.Send(h, widgets.GridColumns{Columns: columns})
		tester.Pump()
	}
	if got := uitest.Collected[widgets.GridColumns](tester); len(got) != 1 {
		t.Fatalf("echoes = %d, want 1", len(got))
	}
	if got := cast[*widgets.Grid](t, u, h).ColumnWidths(); !slices.Equal(got, []float32{0, 100}) {
		t.Errorf("column widths = %v, want [0 100]", got)
	}
}

func TestGrid_DrawBorder(t *testing.T) {
	tester, u := newTester(t)
	h := widgets.NewGridBuilder(ui.NewWidgetBuilder().
		WithWidth(100).WithHeight(100).
		WithForeground(graphics.SolidBrush(graphics.ColorGray))).
		WithRows(widgets.StretchRow(), widgets.StretchRow()).
		WithColumns(widgets.StretchColumn(), widgets.StretchColumn()).
		WithBorder(true).
		Build(u)
	tester.Pump()

	var kinds []graphics.CommandKind
	for _, c := range u.Draw().Commands() {
		if c.Owner == ui.OwnerID(h) {
			kinds = append(kinds, c.Kind)
		}
	}
	want := []graphics.CommandKind{graphics.CommandStrokeRect, graphics.CommandLine, graphics.CommandLine}
	if !slices.Equal(kinds, want) {
		t.Errorf("commands = %v, want %v", kinds, want)
	}
}
