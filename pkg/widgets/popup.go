package widgets

import (
	"fmt"

	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// PlacementKind selects where an opened popup goes.
type PlacementKind int

const (
	// PlaceLeftTop aligns the popup's top-left corner with the target's.
	PlaceLeftTop PlacementKind = iota
	// PlaceRightTop puts the popup to the right of the target, top edges
	// aligned.
	PlaceRightTop
	// PlaceCenter centers the popup over the target.
	PlaceCenter
	// PlaceLeftBottom puts the popup below the target, left edges aligned.
	PlaceLeftBottom
	// PlaceRightBottom puts the popup at the target's bottom-right corner.
	PlaceRightBottom
	// PlaceCursor puts the popup at the cursor.
	PlaceCursor
	// PlacePosition puts the popup at Placement.Position.
	PlacePosition
)

func (k PlacementKind) String() string {
	switch k {
	case PlaceLeftTop:
		return "left_top"
	case PlaceRightTop:
		return "right_top"
	case PlaceCenter:
		return "center"
	case PlaceLeftBottom:
		return "left_bottom"
	case PlaceRightBottom:
		return "right_bottom"
	case PlaceCursor:
		return "cursor"
	case PlacePosition:
		return "position"
	default:
		return fmt.Sprintf("PlacementKind(%d)", int(k))
	}
}

// Placement positions a popup relative to Target. Without a live target
// the screen is used instead.
type Placement struct {
	Kind     PlacementKind
	Target   ui.Handle
	Position graphics.Vec2
}

// Popup requests. Open and Close are echoed FromWidget when they change
// the popup's state.
type (
	PopupOpen           struct{}
	PopupClose          struct{}
	PopupPlacement      struct{ Placement Placement }
	PopupContent        struct{ Content ui.Handle }
	PopupAdjustPosition struct{}
)

// Popup is a modal overlay. While open it is the top picking restriction,
// so only its own subtree can be hit. A press outside it closes it unless
// it stays open; Escape closes it too.
type Popup struct {
	ui.Widget
	open           bool
	staysOpen      bool
	smartPlacement bool
	placement      Placement
	content        ui.Handle
}

// IsOpen reports whether the popup is shown.
func (p *Popup) IsOpen() bool         { return p.open }
func (p *Popup) StaysOpen() bool      { return p.staysOpen }
func (p *Popup) Placement() Placement { return p.placement }
func (p *Popup) Content() ui.Handle   { return p.content }
func (p *Popup) SmartPlacement() bool { return p.smartPlacement }

func (p *Popup) position(u *ui.UserInterface) graphics.Vec2 {
	size := p.ActualSize()
	screen := u.ScreenSize()
	target := u.Widget(p.placement.Target)

	switch p.placement.Kind {
	case PlaceLeftTop:
		if target != nil {
			return target.ScreenPosition()
		}
		return graphics.Vec2{}
	case PlaceRightTop:
		if target != nil {
			return target.ScreenPosition().Add(graphics.V2(target.ActualSize().X, 0))
		}
		return graphics.V2(screen.X-size.X, 0)
	case PlaceCenter:
		if target != nil {
			return target.ScreenPosition().Add(target.ActualSize().Sub(size).Scale(0.5))
		}
		return screen.Sub(size).Scale(0.5)
	case PlaceLeftBottom:
		if target != nil {
			return target.ScreenPosition().Add(graphics.V2(0, target.ActualSize().Y))
		}
		return graphics.V2(0, screen.Y-size.Y)
	case PlaceRightBottom:
		if target != nil {
			return target.ScreenPosition().Add(target.ActualSize())
		}
		return screen.Sub(size)
	case PlaceCursor:
		return u.CursorPosition()
	default:
		return p.placement.Position
	}
}

// onScreen shifts a rectangle at pos so that it stays inside the screen
// where it fits.
func onScreen(pos, size, screen graphics.Vec2) graphics.Vec2 {
	if pos.X+size.X > screen.X {
		pos.X = screen.X - size.X
	}
	if pos.Y+size.Y > screen.Y {
		pos.Y = screen.Y - size.Y
	}
	return pos.Max(graphics.Vec2{})
}

func (p *Popup) openPopup(u *ui.UserInterface) {
	self := p.Handle()
	p.open = true
	u.Send(ui.To(self, ui.WidgetVisibility{Visible: true}))
	u.PushPickingRestriction(ui.RestrictionEntry{Handle: self})
	u.Send(ui.To(self, ui.WidgetTopmost{}))
	u.Send(ui.To(self, ui.WidgetDesiredPosition{Position: p.position(u)}))
	focus := self
	if u.IsValid(p.content) {
		focus = p.content
	}
	u.Send(ui.To(focus, ui.WidgetFocus{}))
	// The popup has no size while hidden, so placement is repeated once
	// layout has run.
	u.Send(ui.To(self, PopupAdjustPosition{}).WithLayout())
}

func (p *Popup) closePopup(u *ui.UserInterface) {
	self := p.Handle()
	p.open = false
	u.Send(ui.To(self, ui.WidgetVisibility{Visible: false}))
	u.RemovePickingRestriction(self)
	if top, ok := u.TopPickingRestriction(); ok {
		u.Send(ui.To(top.Handle, ui.WidgetFocus{}))
	}
	if u.CapturedNode() == self {
		u.ReleaseMouseCapture()
	}
}

// HandleRoutedMessage opens and closes the popup and closes it on Escape or a click outside.
func (p *Popup) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	p.Widget.HandleRoutedMessage(u, msg)
	self := p.Handle()

	if msg.Direction == ui.FromWidget {
		if msg.Destination != self && !u.HasDescendant(msg.Destination, self) {
			return
		}
		if m, ok := msg.Data.(ui.WidgetKeyDown); ok && m.Key == ui.KeyEscape && p.open && !msg.Handled() {
			u.Send(ui.To(self, PopupClose{}))
			msg.SetHandled(true)
		}
		return
	}

	if msg.Destination != self {
		return
	}
	switch m := msg.Data.(type) {
	case PopupOpen:
		if !p.open {
			p.openPopup(u)
			u.Send(msg.Reverse())
		}
	case PopupClose:
		if p.open {
			p.closePopup(u)
			u.Send(msg.Reverse())
		}
	case PopupPlacement:
		if p.placement != m.Placement {
			p.placement = m.Placement
			u.InvalidateLayout(self)
			if p.open {
				u.Send(ui.To(self, ui.WidgetDesiredPosition{Position: p.position(u)}))
			}
			u.Send(msg.Reverse())
		}
	case PopupAdjustPosition:
		if !p.open {
			return
		}
		pos := p.position(u)
		if p.smartPlacement {
			pos = onScreen(pos, p.ActualSize(), u.ScreenSize())
		}
		if pos != p.DesiredLocalPosition() {
			u.Send(ui.To(self, ui.WidgetDesiredPosition{Position: pos}))
		}
	case PopupContent:
		if m.Content != p.content {
			if p.content.IsSome() {
				u.RemoveNode(p.content)
			}
			p.content = m.Content
			if m.Content.IsSome() {
				u.LinkNodes(m.Content, self)
			}
			u.Send(msg.Reverse())
		}
	}
}

// HandleOSEvent closes the popup on a press outside it while it is the top
// picking restriction.
func (p *Popup) HandleOSEvent(self ui.Handle, u *ui.UserInterface, ev ui.OSEvent) {
	in, ok := ev.(ui.MouseInput)
	if !ok || in.State != ui.Pressed || !p.open || p.staysOpen {
		return
	}
	top, ok := u.TopPickingRestriction()
	if !ok || top.Handle != self {
		return
	}
	if !p.ScreenBounds().Contains(u.CursorPosition()) {
		u.Send(ui.To(self, PopupClose{}))
	}
}

// RemoveRef drops references to removed nodes.
func (p *Popup) RemoveRef(removed ui.Handle) {
	if p.content == removed {
		p.content = ui.None
	}
	if p.placement.Target == removed {
		p.placement.Target = ui.None
	}
}

// PopupBuilder builds a Popup. The popup starts closed and hidden.
type PopupBuilder struct {
	wb             *ui.WidgetBuilder
	content        ui.Handle
	placement      Placement
	staysOpen      bool
	smartPlacement bool
}

// NewPopupBuilder creates a builder for a closed Popup.
func NewPopupBuilder(wb *ui.WidgetBuilder) *PopupBuilder {
	return &PopupBuilder{wb: wb, smartPlacement: true}
}

// WithContent sets the single child shown inside the popup.
func (b *PopupBuilder) WithContent(h ui.Handle) *PopupBuilder {
	b.content = h
	return b
}

// WithPlacement sets where the popup opens.
func (b *PopupBuilder) WithPlacement(p Placement) *PopupBuilder {
	b.placement = p
	return b
}

// StaysOpen keeps the popup open on presses outside it.
func (b *PopupBuilder) StaysOpen(stays bool) *PopupBuilder {
	b.staysOpen = stays
	return b
}

// WithSmartPlacement keeps the opened popup inside the screen.
func (b *PopupBuilder) WithSmartPlacement(smart bool) *PopupBuilder {
	b.smartPlacement = smart
	return b
}

// Build adds the popup to u hidden.
func (b *PopupBuilder) Build(u *ui.UserInterface) ui.Handle {
	return u.AddNode(&Popup{
		Widget: b.wb.
			WithChild(b.content).
			WithVisibility(false).
			WithHandleOSEvents(true).
			Build(),
		staysOpen:      b.staysOpen,
		smartPlacement: b.smartPlacement,
		placement:      b.placement,
		content:        b.content,
	})
}
