package ui

import (
	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/pool"
)

// Handle refers to a node stored in a UserInterface. It is a plain
// generational index; a handle to a removed node simply stops resolving.
type Handle = pool.Handle[Control]

// None is the handle that never resolves.
var None = Handle{}

// HorizontalAlignment positions a widget inside the slot its parent gives it.
type HorizontalAlignment int

const (
	HAlignStretch HorizontalAlignment = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
)

// VerticalAlignment positions a widget inside the slot its parent gives it.
type VerticalAlignment int

const (
	VAlignStretch VerticalAlignment = iota
	VAlignTop
	VAlignCenter
	VAlignBottom
)

// CursorIcon is the pointer shape requested while hovering a widget.
// CursorInherit defers to the nearest ancestor that sets one.
type CursorIcon int

const (
	CursorInherit CursorIcon = iota
	CursorDefault
	CursorPointer
	CursorText
	CursorCrosshair
	CursorMove
	CursorResizeHorizontal
	CursorResizeVertical
	CursorNotAllowed
)

// Widget is the record every node carries regardless of its concrete kind.
// Concrete controls embed it and override the Control methods they need.
//
// Geometry fields are written by the layout engine only. Everything else is
// set through a WidgetBuilder before the node is added, or by sending
// ToWidget messages afterwards.
type Widget struct {
	handle   Handle
	name     string
	parent   Handle
	children []Handle

	desiredLocalPosition graphics.Vec2
	width                float32
	height               float32
	minSize              graphics.Vec2
	maxSize              graphics.Vec2
	margin               graphics.Thickness
	hAlign               HorizontalAlignment
	vAlign               VerticalAlignment
	row                  int
	column               int

	visibility       bool
	globalVisibility bool
	enabled          bool
	clipToBounds     bool
	hitTestVisible   bool
	zIndex           int
	opacity          float32
	background       graphics.Brush
	foreground       graphics.Brush
	cursor           CursorIcon
	userData         any

	previewMessages bool
	handleOSEvents  bool
	allowDrag       bool
	allowDrop       bool
	mouseOver       bool

	// Layout cache.
	measureValid        bool
	arrangeValid        bool
	prevMeasure         graphics.Vec2
	prevArrange         graphics.Rect
	desiredSize         graphics.Vec2
	actualSize          graphics.Vec2
	actualLocalPosition graphics.Vec2
	screenPosition      graphics.Vec2
	clipBounds          graphics.Rect
}

func newWidget() Widget {
	return Widget{
		width:            graphics.NaN(),
		height:           graphics.NaN(),
		maxSize:          graphics.V2(graphics.Inf, graphics.Inf),
		visibility:       true,
		globalVisibility: true,
		enabled:          true,
		hitTestVisible:   true,
		opacity:          1,
	}
}

// Base returns w itself. Embedding Widget satisfies this part of Control.
func (w *Widget) Base() *Widget { return w }

// Handle returns the handle assigned when the node was added.
func (w *Widget) Handle() Handle { return w.handle }

// Name returns the debug name.
func (w *Widget) Name() string { return w.name }

// Parent returns the parent handle, or None for the root and detached nodes.
func (w *Widget) Parent() Handle { return w.parent }

// Children returns the child handles in draw order. The slice must not be
// modified.
func (w *Widget) Children() []Handle { return w.children }

// DesiredLocalPosition is the position requested from a Canvas parent.
func (w *Widget) DesiredLocalPosition() graphics.Vec2 { return w.desiredLocalPosition }

// Width returns the explicit width, or NaN when the width is automatic.
func (w *Widget) Width() float32 { return w.width }

// Height returns the explicit height, or NaN when the height is automatic.
func (w *Widget) Height() float32 { return w.height }

// MinSize returns the lower size bound.
func (w *Widget) MinSize() graphics.Vec2 { return w.minSize }

// MaxSize returns the upper size bound.
func (w *Widget) MaxSize() graphics.Vec2 { return w.maxSize }

// Margin returns the outer insets.
func (w *Widget) Margin() graphics.Thickness { return w.margin }

// HorizontalAlignment returns the horizontal alignment.
func (w *Widget) HorizontalAlignment() HorizontalAlignment { return w.hAlign }

// VerticalAlignment returns the vertical alignment.
func (w *Widget) VerticalAlignment() VerticalAlignment { return w.vAlign }

// Row returns the grid row the widget occupies.
func (w *Widget) Row() int { return w.row }

// Column returns the grid column the widget occupies.
func (w *Widget) Column() int { return w.column }

// Visibility returns the widget's own visibility flag.
func (w *Widget) Visibility() bool { return w.visibility }

// IsGloballyVisible reports whether the widget and all its ancestors are
// visible, as of the last update.
func (w *Widget) IsGloballyVisible() bool { return w.globalVisibility }

// Enabled returns the widget's own enabled flag.
func (w *Widget) Enabled() bool { return w.enabled }

// ClipToBounds reports whether descendants are clipped to this widget.
func (w *Widget) ClipToBounds() bool { return w.clipToBounds }

// IsHitTestVisible reports whether the widget takes part in picking.
func (w *Widget) IsHitTestVisible() bool { return w.hitTestVisible }

// ZIndex returns the sort key among siblings.
func (w *Widget) ZIndex() int { return w.zIndex }

// Opacity returns the widget's own opacity.
func (w *Widget) Opacity() float32 { return w.opacity }

// Background returns the fill brush.
func (w *Widget) Background() graphics.Brush { return w.background }

// Foreground returns the content brush.
func (w *Widget) Foreground() graphics.Brush { return w.foreground }

// Cursor returns the requested pointer shape.
func (w *Widget) Cursor() CursorIcon { return w.cursor }

// UserData returns the opaque value attached by the application.
func (w *Widget) UserData() any { return w.userData }

// PreviewMessages reports whether the widget previews descendants' messages.
func (w *Widget) PreviewMessages() bool { return w.previewMessages }

// HandlesOSEvents reports whether the widget observes raw input.
func (w *Widget) HandlesOSEvents() bool { return w.handleOSEvents }

// AllowDrag reports whether a drag may start on this widget.
func (w *Widget) AllowDrag() bool { return w.allowDrag }

// AllowDrop reports whether drags may be dropped on this widget.
func (w *Widget) AllowDrop() bool { return w.allowDrop }

// IsMouseDirectlyOver reports whether the widget is the one under the cursor.
func (w *Widget) IsMouseDirectlyOver() bool { return w.mouseOver }

// IsMeasureValid reports whether the cached desired size is current.
func (w *Widget) IsMeasureValid() bool { return w.measureValid }

// IsArrangeValid reports whether the cached arrangement is current.
func (w *Widget) IsArrangeValid() bool { return w.arrangeValid }

// DesiredSize returns the result of the last measure pass, margins included.
func (w *Widget) DesiredSize() graphics.Vec2 { return w.desiredSize }

// ActualSize returns the size assigned by the last arrange pass.
func (w *Widget) ActualSize() graphics.Vec2 { return w.actualSize }

// ActualLocalPosition returns the offset from the parent assigned by the
// last arrange pass.
func (w *Widget) ActualLocalPosition() graphics.Vec2 { return w.actualLocalPosition }

// ScreenPosition returns the absolute position computed by the last update.
func (w *Widget) ScreenPosition() graphics.Vec2 { return w.screenPosition }

// ScreenBounds returns the absolute rectangle occupied by the widget.
func (w *Widget) ScreenBounds() graphics.Rect {
	return graphics.RectFromPosSize(w.screenPosition, w.actualSize)
}

// ClipBounds returns the region the widget may paint into.
func (w *Widget) ClipBounds() graphics.Rect { return w.clipBounds }

// PreviousMeasure returns the available size passed to the last measure.
func (w *Widget) PreviousMeasure() graphics.Vec2 { return w.prevMeasure }

// PreviousArrange returns the rect passed to the last arrange.
func (w *Widget) PreviousArrange() graphics.Rect { return w.prevArrange }

// HasChild reports whether h is a direct child.
func (w *Widget) HasChild(h Handle) bool {
	for _, c := range w.children {
		if c == h {
			return true
		}
	}
	return false
}

func (w *Widget) addChild(child Handle, inFront bool) {
	if inFront {
		w.children = append(w.children, None)
		copy(w.children[1:], w.children)
		w.children[0] = child
		return
	}
	w.children = append(w.children, child)
}

func (w *Widget) removeChild(child Handle) bool {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			return true
		}
	}
	return false
}

func (w *Widget) commitMeasure(available, desired graphics.Vec2) {
	w.prevMeasure = available
	w.desiredSize = desired
	w.measureValid = true
}

func (w *Widget) commitArrange(final graphics.Rect, position, size graphics.Vec2) {
	w.prevArrange = final
	w.actualLocalPosition = position
	w.actualSize = size
	w.arrangeValid = true
}

// MeasureOverride is the default panel measure: every child gets the same
// available size and the result is the largest child.
func (w *Widget) MeasureOverride(ui *UserInterface, available graphics.Vec2) graphics.Vec2 {
	var size graphics.Vec2
	for _, child := range w.children {
		ui.MeasureNode(child, available)
		if c := ui.Widget(child); c != nil {
			size = size.Max(c.desiredSize)
		}
	}
	return size
}

// ArrangeOverride is the default panel arrange: every child fills the final
// size at the origin.
func (w *Widget) ArrangeOverride(ui *UserInterface, finalSize graphics.Vec2) graphics.Vec2 {
	rect := graphics.RectFromPosSize(graphics.Vec2{}, finalSize)
	for _, child := range w.children {
		ui.ArrangeNode(child, rect)
	}
	return finalSize
}

// Draw fills the background.
func (w *Widget) Draw(dc *graphics.DrawingContext) {
	dc.FillRect(w.ScreenBounds(), w.background)
}

// HandleRoutedMessage applies the base record messages addressed to this
// widget. Controls that override it call it first.
func (w *Widget) HandleRoutedMessage(ui *UserInterface, msg *Message) {
	if msg.Destination != w.handle || msg.Direction != ToWidget {
		return
	}
	layout := false
	switch m := msg.Data.(type) {
	case WidgetName:
		w.name = m.Name
	case WidgetWidth:
		layout = setIfChanged(&w.width, m.Value, sameFloat)
	case WidgetHeight:
		layout = setIfChanged(&w.height, m.Value, sameFloat)
	case WidgetMinSize:
		layout = setIfChanged(&w.minSize, m.Size, sameVec)
	case WidgetMaxSize:
		layout = setIfChanged(&w.maxSize, m.Size, sameVec)
	case WidgetMargin:
		layout = setIfChanged(&w.margin, m.Margin, sameComparable[graphics.Thickness])
	case WidgetHorizontalAlignment:
		layout = setIfChanged(&w.hAlign, m.Alignment, sameComparable[HorizontalAlignment])
	case WidgetVerticalAlignment:
		layout = setIfChanged(&w.vAlign, m.Alignment, sameComparable[VerticalAlignment])
	case WidgetRow:
		layout = setIfChanged(&w.row, m.Row, sameComparable[int])
	case WidgetColumn:
		layout = setIfChanged(&w.column, m.Column, sameComparable[int])
	case WidgetVisibility:
		layout = setIfChanged(&w.visibility, m.Visible, sameComparable[bool])
	case WidgetDesiredPosition:
		layout = setIfChanged(&w.desiredLocalPosition, m.Position, sameVec)
	case WidgetClipToBounds:
		w.clipToBounds = m.Clip
	case WidgetEnabled:
		w.enabled = m.Enabled
	case WidgetHitTestVisibility:
		w.hitTestVisible = m.Visible
	case WidgetOpacity:
		w.opacity = graphics.Clamp(m.Opacity, 0, 1)
	case WidgetBackground:
		w.background = m.Brush
	case WidgetForeground:
		w.foreground = m.Brush
	case WidgetCursor:
		w.cursor = m.Cursor
	case WidgetZIndex:
		w.zIndex = m.Index
	case WidgetUserData:
		w.userData = m.Data
	}
	if layout {
		ui.InvalidateLayout(w.handle)
	}
}

func setIfChanged[T any](dst *T, v T, same func(a, b T) bool) bool {
	if same(*dst, v) {
		return false
	}
	*dst = v
	return true
}

func sameComparable[T comparable](a, b T) bool { return a == b }

// sameFloat treats two NaNs (two automatic sizes) as equal.
func sameFloat(a, b float32) bool {
	return a == b || (graphics.IsNaN(a) && graphics.IsNaN(b))
}

func sameVec(a, b graphics.Vec2) bool {
	return sameFloat(a.X, b.X) && sameFloat(a.Y, b.Y)
}
