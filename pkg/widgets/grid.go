package widgets

import (
	"slices"

	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// SizeMode selects how a grid row or column gets its size.
type SizeMode int

const (
	// SizeStrict uses the fixed size given with the line.
	SizeStrict SizeMode = iota
	// SizeAuto fits the largest visible child in the line.
	SizeAuto
	// SizeStretch shares the space left after strict and auto lines
	// equally with the other stretch lines.
	SizeStretch
)

func (m SizeMode) String() string {
	switch m {
	case SizeStrict:
		return "strict"
	case SizeAuto:
		return "auto"
	case SizeStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// Row describes one grid row. Height is used by SizeStrict and is the
// minimum for SizeAuto.
type Row struct {
	Mode   SizeMode
	Height float32
}

// Column describes one grid column. Width is used by SizeStrict and is the
// minimum for SizeAuto.
type Column struct {
	Mode  SizeMode
	Width float32
}

// StrictRow returns a row of exactly height.
func StrictRow(height float32) Row { return Row{Mode: SizeStrict, Height: height} }
func AutoRow() Row                 { return Row{Mode: SizeAuto} }
func StretchRow() Row              { return Row{Mode: SizeStretch} }

// StrictColumn returns a column of exactly width.
func StrictColumn(width float32) Column { return Column{Mode: SizeStrict, Width: width} }
func AutoColumn() Column                { return Column{Mode: SizeAuto} }
func StretchColumn() Column             { return Column{Mode: SizeStretch} }

// Grid requests, sent ToWidget and echoed FromWidget when applied.
type (
	GridRows       struct{ Rows []Row }
	GridColumns    struct{ Columns []Column }
	GridDrawBorder struct{ Draw bool }
)

type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) of(v graphics.Vec2) float32 {
	if a == axisX {
		return v.X
	}
	return v.Y
}

// line is a resolved row or column.
type line struct {
	mode    SizeMode
	desired float32
	actual  float32
	offset  float32
}

// Grid arranges children in cells addressed by the row and column set on
// each child's widget record. Indices outside the grid are clamped to the
// last row or column. A grid without rows or columns behaves like the
// default panel.
type Grid struct {
	ui.Widget
	rows            []line
	columns         []line
	drawBorder      bool
	borderThickness float32
}

func rowLines(rows []Row) []line {
	out := make([]line, len(rows))
	for i, r := range rows {
		out[i] = line{mode: r.Mode, desired: max(r.Height, 0)}
	}
	return out
}

func columnLines(columns []Column) []line {
	out := make([]line, len(columns))
	for i, c := range columns {
		out[i] = line{mode: c.Mode, desired: max(c.Width, 0)}
	}
	return out
}

// Rows returns the row definitions.
func (g *Grid) Rows() []Row {
	out := make([]Row, len(g.rows))
	for i, l := range g.rows {
		out[i] = Row{Mode: l.mode, Height: l.desired}
	}
	return out
}

// Columns returns the column definitions.
func (g *Grid) Columns() []Column {
	out := make([]Column, len(g.columns))
	for i, l := range g.columns {
		out[i] = Column{Mode: l.mode, Width: l.desired}
	}
	return out
}

// RowHeights returns the heights resolved by the last arrange.
func (g *Grid) RowHeights() []float32 { return actuals(g.rows) }

// ColumnWidths returns the widths resolved by the last arrange.
func (g *Grid) ColumnWidths() []float32 { return actuals(g.columns) }

func actuals(lines []line) []float32 {
	out := make([]float32, len(lines))
	for i, l := range lines {
		out[i] = l.actual
	}
	return out
}

// CellRect returns the local rectangle of a cell after the last arrange.
func (g *Grid) CellRect(row, column int) graphics.Rect {
	if len(g.rows) == 0 || len(g.columns) == 0 {
		return graphics.RectFromPosSize(graphics.Vec2{}, g.ActualSize())
	}
	r := g.rows[clampIndex(row, len(g.rows))]
	c := g.columns[clampIndex(column, len(g.columns))]
	return graphics.RectFromXYWH(c.offset, r.offset, c.actual, r.actual)
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}

func (g *Grid) lines(a axis) []line {
	if a == axisX {
		return g.columns
	}
	return g.rows
}

func (g *Grid) lineIndex(w *ui.Widget, a axis) int {
	if a == axisX {
		return clampIndex(w.Column(), len(g.columns))
	}
	return clampIndex(w.Row(), len(g.rows))
}

// presetSize resolves strict and auto lines and returns their sum.
func (g *Grid) presetSize(u *ui.UserInterface, a axis) float32 {
	lines := g.lines(a)
	var preset float32
	for i := range lines {
		l := &lines[i]
		switch l.mode {
		case SizeStrict:
			l.actual = l.desired
		case SizeAuto:
			l.actual = l.desired
			for _, child := range g.Children() {
				w := u.Widget(child)
				if w != nil && w.Visibility() && g.lineIndex(w, a) == i {
					l.actual = max(l.actual, a.of(w.DesiredSize()))
				}
			}
		default:
			continue
		}
		preset += l.actual
	}
	return preset
}

// fitStretch shares what is left of available among stretch lines. With
// unbounded space each stretch line takes the largest desired size of the
// visible children placed in it.
func (g *Grid) fitStretch(u *ui.UserInterface, a axis, available, preset float32) {
	lines := g.lines(a)
	count := 0
	for _, l := range lines {
		if l.mode == SizeStretch {
			count++
		}
	}
	if count == 0 {
		return
	}

	if graphics.IsInf(available) {
		for i := range lines {
			if lines[i].mode == SizeStretch {
				lines[i].actual = 0
			}
		}
		for _, child := range g.Children() {
			w := u.Widget(child)
			if w == nil || !w.Visibility() {
				continue
			}
			if l := &lines[g.lineIndex(w, a)]; l.mode == SizeStretch {
				l.actual = max(l.actual, a.of(w.DesiredSize()))
			}
		}
		return
	}

	per := max(available-preset, 0) / float32(count)
	for i := range lines {
		if lines[i].mode == SizeStretch {
			lines[i].actual = per
		}
	}
}

// sameDefinition compares the requested part of two lines and ignores what
// layout resolved.
func sameDefinition(a, b line) bool {
	return a.mode == b.mode && a.desired == b.desired
}

func placeLines(lines []line) {
	var offset float32
	for i := range lines {
		lines[i].offset = offset
		offset += lines[i].actual
	}
}

func (g *Grid) resolve(u *ui.UserInterface, size graphics.Vec2) {
	presetW := g.presetSize(u, axisX)
	presetH := g.presetSize(u, axisY)
	g.fitStretch(u, axisX, size.X, presetW)
	g.fitStretch(u, axisY, size.Y, presetH)
}

// MeasureOverride sizes the lines from the children and returns their total.
func (g *Grid) MeasureOverride(u *ui.UserInterface, available graphics.Vec2) graphics.Vec2 {
	if len(g.rows) == 0 || len(g.columns) == 0 {
		return g.Widget.MeasureOverride(u, available)
	}

	for _, child := range g.Children() {
		u.MeasureNode(child, available)
	}
	g.resolve(u, available)

	// Children outside auto lines are measured again with their cell size
	// so that wrapping content sees its real width.
	for _, child := range g.Children() {
		w := u.Widget(child)
		if w == nil {
			continue
		}
		c := g.columns[g.lineIndex(w, axisX)]
		r := g.rows[g.lineIndex(w, axisY)]
		if c.mode != SizeAuto && r.mode != SizeAuto {
			u.MeasureNode(child, graphics.V2(c.actual, r.actual))
		}
	}

	var desired graphics.Vec2
	for _, c := range g.columns {
		desired.X += c.actual
	}
	for _, r := range g.rows {
		desired.Y += r.actual
	}
	return desired
}

// ArrangeOverride resolves the lines against finalSize and places every child in its cell.
func (g *Grid) ArrangeOverride(u *ui.UserInterface, finalSize graphics.Vec2) graphics.Vec2 {
	if len(g.rows) == 0 || len(g.columns) == 0 {
		return g.Widget.ArrangeOverride(u, finalSize)
	}

	g.resolve(u, finalSize)
	placeLines(g.rows)
	placeLines(g.columns)

	for _, child := range g.Children() {
		w := u.Widget(child)
		if w == nil {
			continue
		}
		c := g.columns[g.lineIndex(w, axisX)]
		r := g.rows[g.lineIndex(w, axisY)]
		u.ArrangeNode(child, graphics.RectFromXYWH(c.offset, r.offset, c.actual, r.actual))
	}
	return finalSize
}

// Draw strokes the outline and the cell borders when border drawing is on.
func (g *Grid) Draw(dc *graphics.DrawingContext) {
	g.Widget.Draw(dc)
	if !g.drawBorder {
		return
	}
	b := g.ScreenBounds()
	brush := g.Foreground()
	dc.StrokeRect(b, graphics.Uniform(g.borderThickness), brush)
	for _, c := range g.columns[min(1, len(g.columns)):] {
		x := b.X + c.offset
		dc.Line(graphics.V2(x, b.Y), graphics.V2(x, b.Bottom()), g.borderThickness, brush)
	}
	for _, r := range g.rows[min(1, len(g.rows)):] {
		y := b.Y + r.offset
		dc.Line(graphics.V2(b.X, y), graphics.V2(b.Right(), y), g.borderThickness, brush)
	}
}

// HandleRoutedMessage applies GridRows, GridColumns and GridDrawBorder requests.
func (g *Grid) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	g.Widget.HandleRoutedMessage(u, msg)
	if msg.Destination != g.Handle() || msg.Direction != ui.ToWidget {
		return
	}
	switch m := msg.Data.(type) {
	case GridRows:
		if next := rowLines(m.Rows); !slices.EqualFunc(g.rows, next, sameDefinition) {
			g.rows = next
			u.InvalidateLayout(g.Handle())
			u.Send(msg.Reverse())
		}
	case GridColumns:
		if next := columnLines(m.Columns); !slices.EqualFunc(g.columns, next, sameDefinition) {
			g.columns = next
			u.InvalidateLayout(g.Handle())
			u.Send(msg.Reverse())
		}
	case GridDrawBorder:
		if g.drawBorder != m.Draw {
			g.drawBorder = m.Draw
			u.Send(msg.Reverse())
		}
	}
}

// GridBuilder builds a Grid.
type GridBuilder struct {
	wb              *ui.WidgetBuilder
	rows            []Row
	columns         []Column
	drawBorder      bool
	borderThickness float32
}

// NewGridBuilder creates a builder for a Grid with no rows or columns.
func NewGridBuilder(wb *ui.WidgetBuilder) *GridBuilder {
	return &GridBuilder{wb: wb, borderThickness: 1}
}

// WithRows sets the row definitions.
func (b *GridBuilder) WithRows(rows ...Row) *GridBuilder {
	b.rows = append(b.rows, rows...)
	return b
}

// WithColumns sets the column definitions.
func (b *GridBuilder) WithColumns(columns ...Column) *GridBuilder {
	b.columns = append(b.columns, columns...)
	return b
}

// WithBorder draws the outline and the lines between cells with the
// foreground brush.
func (b *GridBuilder) WithBorder(draw bool) *GridBuilder {
	b.drawBorder = draw
	return b
}

// WithBorderThickness sets the line width used for cell borders.
func (b *GridBuilder) WithBorderThickness(t float32) *GridBuilder {
	b.borderThickness = t
	return b
}

// BuildGrid returns the control without adding it to a tree.
func (b *GridBuilder) BuildGrid() *Grid {
	return &Grid{
		Widget:          b.wb.Build(),
		rows:            rowLines(b.rows),
		columns:         columnLines(b.columns),
		drawBorder:      b.drawBorder,
		borderThickness: b.borderThickness,
	}
}

// Build adds the grid to u and returns its handle.
func (b *GridBuilder) Build(u *ui.UserInterface) ui.Handle {
	return u.AddNode(b.BuildGrid())
}
