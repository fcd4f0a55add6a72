package ui

import "github.com/go-drift/retained/pkg/graphics"

// WidgetBuilder collects the base record settings for a new control.
// Concrete builders take one and finish it with Build.
//
//	text := widgets.NewTextBuilder(ui.NewWidgetBuilder().
//		WithName("title").
//		WithMargin(graphics.Uniform(4))).
//		WithText("Hello").
//		Build(u)
type WidgetBuilder struct {
	w Widget
}

// NewWidgetBuilder returns a builder with default settings: visible,
// enabled, hit-test visible, automatic size, stretch alignment.
func NewWidgetBuilder() *WidgetBuilder {
	return &WidgetBuilder{w: newWidget()}
}

func (b *WidgetBuilder) WithName(name string) *WidgetBuilder {
	b.w.name = name
	return b
}

func (b *WidgetBuilder) WithWidth(width float32) *WidgetBuilder {
	b.w.width = width
	return b
}

func (b *WidgetBuilder) WithHeight(height float32) *WidgetBuilder {
	b.w.height = height
	return b
}

func (b *WidgetBuilder) WithMinSize(size graphics.Vec2) *WidgetBuilder {
	b.w.minSize = size
	return b
}

func (b *WidgetBuilder) WithMaxSize(size graphics.Vec2) *WidgetBuilder {
	b.w.maxSize = size
	return b
}

func (b *WidgetBuilder) WithMargin(margin graphics.Thickness) *WidgetBuilder {
	b.w.margin = margin
	return b
}

func (b *WidgetBuilder) WithHorizontalAlignment(a HorizontalAlignment) *WidgetBuilder {
	b.w.hAlign = a
	return b
}

func (b *WidgetBuilder) WithVerticalAlignment(a VerticalAlignment) *WidgetBuilder {
	b.w.vAlign = a
	return b
}

func (b *WidgetBuilder) OnRow(row int) *WidgetBuilder {
	b.w.row = row
	return b
}

func (b *WidgetBuilder) OnColumn(column int) *WidgetBuilder {
	b.w.column = column
	return b
}

func (b *WidgetBuilder) WithDesiredPosition(pos graphics.Vec2) *WidgetBuilder {
	b.w.desiredLocalPosition = pos
	return b
}

func (b *WidgetBuilder) WithVisibility(visible bool) *WidgetBuilder {
	b.w.visibility = visible
	b.w.globalVisibility = visible
	return b
}

func (b *WidgetBuilder) WithEnabled(enabled bool) *WidgetBuilder {
	b.w.enabled = enabled
	return b
}

func (b *WidgetBuilder) WithClipToBounds(clip bool) *WidgetBuilder {
	b.w.clipToBounds = clip
	return b
}

func (b *WidgetBuilder) WithHitTestVisibility(visible bool) *WidgetBuilder {
	b.w.hitTestVisible = visible
	return b
}

func (b *WidgetBuilder) WithZIndex(z int) *WidgetBuilder {
	b.w.zIndex = z
	return b
}

func (b *WidgetBuilder) WithOpacity(opacity float32) *WidgetBuilder {
	b.w.opacity = graphics.Clamp(opacity, 0, 1)
	return b
}

func (b *WidgetBuilder) WithBackground(brush graphics.Brush) *WidgetBuilder {
	b.w.background = brush
	return b
}

func (b *WidgetBuilder) WithForeground(brush graphics.Brush) *WidgetBuilder {
	b.w.foreground = brush
	return b
}

func (b *WidgetBuilder) WithCursor(cursor CursorIcon) *WidgetBuilder {
	b.w.cursor = cursor
	return b
}

func (b *WidgetBuilder) WithUserData(data any) *WidgetBuilder {
	b.w.userData = data
	return b
}

// WithPreviewMessages lets the control preview messages addressed to its
// descendants. The control must implement MessagePreviewer.
func (b *WidgetBuilder) WithPreviewMessages(preview bool) *WidgetBuilder {
	b.w.previewMessages = preview
	return b
}

// WithHandleOSEvents lets the control observe raw input. The control must
// implement OSEventHandler.
func (b *WidgetBuilder) WithHandleOSEvents(handle bool) *WidgetBuilder {
	b.w.handleOSEvents = handle
	return b
}

func (b *WidgetBuilder) WithAllowDrag(allow bool) *WidgetBuilder {
	b.w.allowDrag = allow
	return b
}

func (b *WidgetBuilder) WithAllowDrop(allow bool) *WidgetBuilder {
	b.w.allowDrop = allow
	return b
}

// WithChild adds an already-built node as a child. It is re-linked when the
// control is added.
func (b *WidgetBuilder) WithChild(h Handle) *WidgetBuilder {
	if h.IsSome() {
		b.w.children = append(b.w.children, h)
	}
	return b
}

// WithChildren adds several already-built nodes as children.
func (b *WidgetBuilder) WithChildren(hs ...Handle) *WidgetBuilder {
	for _, h := range hs {
		b.WithChild(h)
	}
	return b
}

// Build returns the finished record. The builder may be reused.
func (b *WidgetBuilder) Build() Widget {
	w := b.w
	w.children = append([]Handle(nil), b.w.children...)
	return w
}

// Plain is a control with no behavior beyond the base record. Useful as a
// spacer or as a bare container with the default panel layout.
type Plain struct {
	Widget
}

// NewPlain builds a Plain control.
func NewPlain(b *WidgetBuilder) *Plain {
	return &Plain{Widget: b.Build()}
}
