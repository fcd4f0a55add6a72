package widgets

import (
	"fmt"
	"slices"

	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// WrapAlignment positions children along the main axis within each run.
type WrapAlignment int

const (
	WrapStart WrapAlignment = iota
	WrapEnd
	WrapCenter
	// WrapSpaceBetween puts no space before the first or after the last
	// child of a run.
	WrapSpaceBetween
	// WrapSpaceAround puts half-sized spaces at the ends of a run.
	WrapSpaceAround
	WrapSpaceEvenly
)

func (a WrapAlignment) String() string {
	switch a {
	case WrapStart:
		return "start"
	case WrapEnd:
		return "end"
	case WrapCenter:
		return "center"
	case WrapSpaceBetween:
		return "space_between"
	case WrapSpaceAround:
		return "space_around"
	case WrapSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("WrapAlignment(%d)", int(a))
	}
}

// CrossAlignment positions a child across the run it sits in.
type CrossAlignment int

const (
	CrossStart CrossAlignment = iota
	CrossEnd
	CrossCenter
)

func (a CrossAlignment) String() string {
	switch a {
	case CrossStart:
		return "start"
	case CrossEnd:
		return "end"
	case CrossCenter:
		return "center"
	default:
		return fmt.Sprintf("CrossAlignment(%d)", int(a))
	}
}

// WrapPanel requests.
type (
	WrapPanelOrientation struct{ Orientation Orientation }
	WrapPanelSpacing     struct{ Spacing, RunSpacing float32 }
)

type run struct {
	children []ui.Handle
	main     float32
	cross    float32
}

// partition is a cached line partition. It is reused while the limit and
// the desired sizes of the children it was built from are unchanged.
type partition struct {
	limit float32
	sizes []graphics.Vec2
	runs  []run
}

// WrapPanel places children along its orientation and starts a new run
// when the next child would overflow the available main extent. With an
// unbounded main axis every child lands in a single run.
type WrapPanel struct {
	ui.Widget
	orientation    Orientation
	spacing        float32
	runSpacing     float32
	alignment      WrapAlignment
	crossAlignment CrossAlignment
	cache          partition
	cached         bool
}

func (p *WrapPanel) Orientation() Orientation { return p.orientation }

// Lines returns the children of each run from the last layout pass.
func (p *WrapPanel) Lines() [][]ui.Handle {
	out := make([][]ui.Handle, len(p.cache.runs))
	for i, r := range p.cache.runs {
		out[i] = slices.Clone(r.children)
	}
	return out
}

func (p *WrapPanel) visibleSizes(u *ui.UserInterface) ([]ui.Handle, []graphics.Vec2) {
	var handles []ui.Handle
	var sizes []graphics.Vec2
	for _, child := range p.Children() {
		w := u.Widget(child)
		if w == nil || !w.Visibility() {
			continue
		}
		handles = append(handles, child)
		sizes = append(sizes, w.DesiredSize())
	}
	return handles, sizes
}

func (p *WrapPanel) runs(u *ui.UserInterface, limit float32) []run {
	handles, sizes := p.visibleSizes(u)
	if p.cached && p.cache.limit == limit && slices.Equal(p.cache.sizes, sizes) {
		return p.cache.runs
	}

	o := p.orientation
	var runs []run
	var cur run
	for i, child := range handles {
		childMain := o.main(sizes[i])
		spacing := float32(0)
		if len(cur.children) > 0 {
			spacing = p.spacing
		}
		if len(cur.children) > 0 && cur.main+spacing+childMain > limit {
			runs = append(runs, cur)
			cur = run{}
			spacing = 0
		}
		cur.children = append(cur.children, child)
		cur.main += spacing + childMain
		cur.cross = max(cur.cross, o.cross(sizes[i]))
	}
	if len(cur.children) > 0 {
		runs = append(runs, cur)
	}

	p.cache = partition{limit: limit, sizes: sizes, runs: runs}
	p.cached = true
	return runs
}

func (p *WrapPanel) extent(runs []run) graphics.Vec2 {
	var mainExtent, crossExtent float32
	for i, r := range runs {
		mainExtent = max(mainExtent, r.main)
		crossExtent += r.cross
		if i > 0 {
			crossExtent += p.runSpacing
		}
	}
	return p.orientation.vec(mainExtent, crossExtent)
}

// MeasureOverride breaks the children into runs and returns their bounding size.
func (p *WrapPanel) MeasureOverride(u *ui.UserInterface, available graphics.Vec2) graphics.Vec2 {
	for _, child := range p.Children() {
		u.MeasureNode(child, available)
	}
	return p.extent(p.runs(u, p.orientation.main(available)))
}

// ArrangeOverride places each run, distributing free space by the alignments.
func (p *WrapPanel) ArrangeOverride(u *ui.UserInterface, finalSize graphics.Vec2) graphics.Vec2 {
	o := p.orientation
	limit := o.main(finalSize)
	runs := p.runs(u, limit)

	for _, child := range p.Children() {
		if w := u.Widget(child); w != nil && !w.Visibility() {
			u.ArrangeNode(child, graphics.Rect{})
		}
	}

	var crossCursor float32
	for _, r := range runs {
		free := max(limit-r.main, 0)
		between, offset := p.mainSpacing(free, len(r.children))
		mainCursor := offset
		for i, child := range r.children {
			size := u.Widget(child).DesiredSize()
			childMain := o.main(size)
			childCross := o.cross(size)
			pos := o.vec(mainCursor, crossCursor+p.crossOffset(r.cross, childCross))
			u.ArrangeNode(child, graphics.RectFromPosSize(pos, o.vec(childMain, childCross)))
			mainCursor += childMain + between
			if i < len(r.children)-1 {
				mainCursor += p.spacing
			}
		}
		crossCursor += r.cross + p.runSpacing
	}
	return finalSize
}

func (p *WrapPanel) mainSpacing(free float32, count int) (between, offset float32) {
	if count == 0 || graphics.IsInf(free) {
		return 0, 0
	}
	switch p.alignment {
	case WrapEnd:
		offset = free
	case WrapCenter:
		offset = free * 0.5
	case WrapSpaceBetween:
		if count > 1 {
			between = free / float32(count-1)
		}
	case WrapSpaceAround:
		between = free / float32(count)
		offset = between * 0.5
	case WrapSpaceEvenly:
		between = free / float32(count+1)
		offset = between
	}
	return between, offset
}

func (p *WrapPanel) crossOffset(runCross, childCross float32) float32 {
	free := runCross - childCross
	if free <= 0 {
		return 0
	}
	switch p.crossAlignment {
	case CrossEnd:
		return free
	case CrossCenter:
		return free * 0.5
	default:
		return 0
	}
}

// HandleRoutedMessage applies the WrapPanel requests.
func (p *WrapPanel) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	p.Widget.HandleRoutedMessage(u, msg)
	if msg.Destination != p.Handle() || msg.Direction != ui.ToWidget {
		return
	}
	switch m := msg.Data.(type) {
	case WrapPanelOrientation:
		if p.orientation != m.Orientation {
			p.orientation = m.Orientation
			p.cached = false
			u.InvalidateLayout(p.Handle())
			u.Send(msg.Reverse())
		}
	case WrapPanelSpacing:
		if p.spacing != m.Spacing || p.runSpacing != m.RunSpacing {
			p.spacing = max(m.Spacing, 0)
			p.runSpacing = max(m.RunSpacing, 0)
			p.cached = false
			u.InvalidateLayout(p.Handle())
			u.Send(msg.Reverse())
		}
	}
}

// WrapPanelBuilder builds a WrapPanel. The default orientation is
// horizontal.
type WrapPanelBuilder struct {
	wb             *ui.WidgetBuilder
	orientation    Orientation
	spacing        float32
	runSpacing     float32
	alignment      WrapAlignment
	crossAlignment CrossAlignment
}

// NewWrapPanelBuilder creates a builder for a horizontal WrapPanel.
func NewWrapPanelBuilder(wb *ui.WidgetBuilder) *WrapPanelBuilder {
	return &WrapPanelBuilder{wb: wb, orientation: Horizontal}
}

// WithOrientation sets the run axis.
func (b *WrapPanelBuilder) WithOrientation(o Orientation) *WrapPanelBuilder {
	b.orientation = o
	return b
}

// WithSpacing sets the gap between children in a run and between runs.
func (b *WrapPanelBuilder) WithSpacing(spacing, runSpacing float32) *WrapPanelBuilder {
	b.spacing = max(spacing, 0)
	b.runSpacing = max(runSpacing, 0)
	return b
}

// WithAlignment sets how each run uses free space along its axis.
func (b *WrapPanelBuilder) WithAlignment(a WrapAlignment) *WrapPanelBuilder {
	b.alignment = a
	return b
}

// WithCrossAlignment sets how children sit inside the run height.
func (b *WrapPanelBuilder) WithCrossAlignment(a CrossAlignment) *WrapPanelBuilder {
	b.crossAlignment = a
	return b
}

// Build adds the panel to u.
func (b *WrapPanelBuilder) Build(u *ui.UserInterface) ui.Handle {
	return u.AddNode(&WrapPanel{
		Widget:         b.wb.Build(),
		orientation:    b.orientation,
		spacing:        b.spacing,
		runSpacing:     b.runSpacing,
		alignment:      b.alignment,
		crossAlignment: b.crossAlignment,
	})
}
