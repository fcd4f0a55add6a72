package ui

import "github.com/go-drift/retained/pkg/graphics"

// InvalidateLayout marks h as needing both measure and arrange, together
// with every ancestor. The upward walk stops at the first ancestor that is
// already invalid, since its own ancestors were invalidated with it.
func (ui *UserInterface) InvalidateLayout(h Handle) {
	ui.invalidate(h, true)
}

// InvalidateMeasure is an alias of InvalidateLayout: a new desired size
// always needs a new arrangement.
func (ui *UserInterface) InvalidateMeasure(h Handle) {
	ui.invalidate(h, true)
}

// InvalidateArrange marks h and its ancestors as needing arrange only.
func (ui *UserInterface) InvalidateArrange(h Handle) {
	ui.invalidate(h, false)
}

// invalidate collects the chain first and writes the flags afterwards, so
// no flag is changed while the tree is being walked.
func (ui *UserInterface) invalidate(h Handle, measure bool) {
	chain := ui.invalidateChain[:0]
	for cur := h; cur.IsSome(); {
		w := ui.Widget(cur)
		if w == nil {
			break
		}
		if cur != h && !w.arrangeValid && (!measure || !w.measureValid) {
			break
		}
		chain = append(chain, cur)
		cur = w.parent
	}
	for _, c := range chain {
		w := ui.Widget(c)
		if measure {
			w.measureValid = false
		}
		w.arrangeValid = false
	}
	ui.invalidateChain = chain[:0]
}

// explicitExtent returns the explicit size and true, or false when the
// extent is automatic (NaN or infinite).
func explicitExtent(v float32) (float32, bool) {
	if graphics.IsNaN(v) || graphics.IsInf(v) {
		return 0, false
	}
	return max(v, 0), true
}

func clampVec(v, lo, hi graphics.Vec2) graphics.Vec2 {
	return graphics.V2(clampExtent(v.X, lo.X, hi.X), clampExtent(v.Y, lo.Y, hi.Y))
}

func clampExtent(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// MeasureNode computes the desired size of h for the given available
// size. It returns false when the cached result was reused. Negative and
// NaN input is treated as zero; infinite input means unbounded.
func (ui *UserInterface) MeasureNode(h Handle, available graphics.Vec2) bool {
	c, ok := ui.nodes.Borrow(h)
	if !ok {
		return false
	}
	w := c.Base()
	available = available.Sanitize()

	if w.measureValid && w.prevMeasure == available {
		return false
	}
	if !w.visibility {
		w.commitMeasure(available, graphics.Vec2{})
		return true
	}

	margin := w.margin.Sum()
	size := available.Sub(margin).Max(graphics.Vec2{})
	width, hasWidth := explicitExtent(w.width)
	height, hasHeight := explicitExtent(w.height)
	if hasWidth {
		size.X = width
	}
	if hasHeight {
		size.Y = height
	}
	size = clampVec(size, w.minSize, w.maxSize)

	desired := c.MeasureOverride(ui, size).Finite()
	if hasWidth {
		desired.X = width
	}
	if hasHeight {
		desired.Y = height
	}
	desired = clampVec(desired, w.minSize, w.maxSize).Finite()
	desired = desired.Add(margin).Min(available)

	w.commitMeasure(available, desired)
	return true
}

func sanitizeRect(r graphics.Rect, fallback graphics.Vec2) graphics.Rect {
	pos := r.Position()
	if graphics.IsNaN(pos.X) || graphics.IsInf(pos.X) {
		pos.X = 0
	}
	if graphics.IsNaN(pos.Y) || graphics.IsInf(pos.Y) {
		pos.Y = 0
	}
	size := r.Size()
	if graphics.IsInf(size.X) {
		size.X = fallback.X
	}
	if graphics.IsInf(size.Y) {
		size.Y = fallback.Y
	}
	return graphics.RectFromPosSize(pos, size.Finite())
}

// ArrangeNode places h inside final, given in its parent's coordinates.
// It returns false when the cached arrangement was reused.
func (ui *UserInterface) ArrangeNode(h Handle, final graphics.Rect) bool {
	c, ok := ui.nodes.Borrow(h)
	if !ok {
		return false
	}
	w := c.Base()
	final = sanitizeRect(final, w.desiredSize)

	if w.arrangeValid && w.prevArrange == final {
		return false
	}
	if !w.visibility {
		w.commitArrange(final, final.Position(), graphics.Vec2{})
		return true
	}

	margin := w.margin.Sum()
	available := final.Size().Sub(margin).Max(graphics.Vec2{})
	size := available
	content := w.desiredSize.Sub(margin).Max(graphics.Vec2{})
	if w.hAlign != HAlignStretch {
		size.X = min(size.X, content.X)
	}
	if w.vAlign != VAlignStretch {
		size.Y = min(size.Y, content.Y)
	}
	if width, ok := explicitExtent(w.width); ok {
		size.X = width
	}
	if height, ok := explicitExtent(w.height); ok {
		size.Y = height
	}
	size = clampVec(size, w.minSize, w.maxSize)

	size = c.ArrangeOverride(ui, size).Finite()
	size = size.Min(final.Size())

	origin := final.Position().Add(w.margin.Offset())
	switch w.hAlign {
	case HAlignCenter, HAlignStretch:
		origin.X += (available.X - size.X) * 0.5
	case HAlignRight:
		origin.X += available.X - size.X
	}
	switch w.vAlign {
	case VAlignCenter, VAlignStretch:
		origin.Y += (available.Y - size.Y) * 0.5
	case VAlignBottom:
		origin.Y += available.Y - size.Y
	}

	w.commitArrange(final, origin, size)
	return true
}

// UpdateLayout runs the visibility, measure, arrange and transform passes
// over the whole tree. Only invalidated subtrees are recomputed; screen
// positions are always recomputed.
func (ui *UserInterface) UpdateLayout() {
	ui.updateVisibility()
	ui.MeasureNode(ui.root, ui.screenSize)
	ui.ArrangeNode(ui.root, graphics.RectFromPosSize(graphics.Vec2{}, ui.screenSize))
	ui.updateTransform()
}

// Update runs one frame: layout, per-control updates, tweens and cursor
// resolution. Messages are not drained; see Tick.
func (ui *UserInterface) Update(screenSize graphics.Vec2, dt float32) {
	ui.SetScreenSize(screenSize)
	ui.UpdateLayout()
	ui.updateControls(dt)
	ui.updateTweens(dt)
	ui.updateCursor()
}

func (ui *UserInterface) updateVisibility() {
	stack := append(ui.scratch[:0], ui.root)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w := ui.Widget(h)
		if w == nil {
			continue
		}
		visible := w.visibility
		if p := ui.Widget(w.parent); p != nil {
			visible = visible && p.globalVisibility
		}
		if visible != w.globalVisibility {
			w.globalVisibility = visible
			ui.InvalidateLayout(h)
		}
		stack = append(stack, w.children...)
	}
	ui.scratch = stack[:0]
}

// updateTransform resolves screen positions and clip bounds top-down.
func (ui *UserInterface) updateTransform() {
	screen := graphics.RectFromPosSize(graphics.Vec2{}, ui.screenSize)
	stack := append(ui.scratch[:0], ui.root)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w := ui.Widget(h)
		if w == nil || !w.globalVisibility {
			continue
		}
		if p := ui.Widget(w.parent); p != nil {
			w.screenPosition = p.screenPosition.Add(w.actualLocalPosition)
			w.clipBounds = p.clipBounds
			if p.clipToBounds {
				w.clipBounds = w.clipBounds.Intersect(p.ScreenBounds())
			}
		} else {
			w.screenPosition = w.actualLocalPosition
			w.clipBounds = screen
		}
		stack = append(stack, w.children...)
	}
	ui.scratch = stack[:0]
}

func (ui *UserInterface) updateControls(dt float32) {
	var updaters []Handle
	for h, c := range ui.nodes.All() {
		if _, ok := c.(Updater); ok {
			updaters = append(updaters, h)
		}
	}
	for _, h := range updaters {
		if c, ok := ui.nodes.Borrow(h); ok {
			c.(Updater).Update(ui, dt)
		}
	}
}

func (ui *UserInterface) updateCursor() {
	if ui.drag.dragging {
		return
	}
	ui.cursorIcon = CursorDefault
	for cur := ui.picked; cur.IsSome(); {
		w := ui.Widget(cur)
		if w == nil {
			break
		}
		if w.cursor != CursorInherit {
			ui.cursorIcon = w.cursor
			break
		}
		cur = w.parent
	}
}

// Cursor returns the pointer shape resolved by the last update.
func (ui *UserInterface) Cursor() CursorIcon {
	return ui.cursorIcon
}
