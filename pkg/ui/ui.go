package ui

import (
	"fmt"
	"iter"

	"github.com/go-drift/retained/pkg/config"
	"github.com/go-drift/retained/pkg/errors"
	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/pool"
)

// RestrictionEntry is a picking restriction. While it is on the stack,
// hit-testing only considers the subtree rooted at Handle. Stop prevents
// entries further down the stack from being tried.
type RestrictionEntry struct {
	Handle Handle
	Stop   bool
}

type dragContext struct {
	dragging bool
	node     Handle
	clickPos graphics.Vec2
}

// UserInterface owns the widget tree and drives a frame: drain queued
// messages, lay out what was invalidated, and route the next input event.
//
// A UserInterface is not safe for concurrent use. Only the Sender obtained
// from Sender() may be used from other goroutines.
type UserInterface struct {
	nodes      *pool.Pool[Control]
	root       Handle
	screenSize graphics.Vec2

	queue  *queue
	cfg    *config.Config
	font   *graphics.Font
	errors errors.ErrorHandler

	picked          Handle
	prevPicked      Handle
	captured        Handle
	captureRenewed  bool
	focused         Handle
	pickingStack    []RestrictionEntry
	cursorPosition  graphics.Vec2
	cursorIcon      CursorIcon
	mouseState      MouseState
	modifiers       KeyboardModifiers
	drag            dragContext
	tweens          []*TweenGroup
	drawingContext  *graphics.DrawingContext
	scratch         []Handle
	invalidateChain []Handle
}

// Option configures a UserInterface.
type Option func(*UserInterface) error

// WithConfig replaces the default configuration.
func WithConfig(cfg *config.Config) Option {
	return func(ui *UserInterface) error {
		if cfg == nil {
			return fmt.Errorf("config must not be nil")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		ui.cfg = cfg
		return nil
	}
}

// WithFont sets the font used for text measurement.
func WithFont(font *graphics.Font) Option {
	return func(ui *UserInterface) error {
		if font == nil {
			return fmt.Errorf("font must not be nil")
		}
		ui.font = font
		return nil
	}
}

// WithErrorHandler routes this instance's reports to h instead of the
// global handler.
func WithErrorHandler(h errors.ErrorHandler) Option {
	return func(ui *UserInterface) error {
		ui.errors = h
		return nil
	}
}

// New creates a UserInterface with an empty Canvas root.
func New(screenSize graphics.Vec2, opts ...Option) (*UserInterface, error) {
	ui := &UserInterface{
		nodes:          pool.New[Control](),
		screenSize:     screenSize.Finite(),
		queue:          &queue{},
		cfg:            config.Default(),
		font:           graphics.DefaultFont(),
		drawingContext: graphics.NewDrawingContext(),
	}
	for _, opt := range opts {
		if err := opt(ui); err != nil {
			return nil, err
		}
	}
	if ui.errors == nil && ui.cfg.Debug.Verbose {
		ui.errors = &errors.LogHandler{Verbose: true}
	}
	ui.root = ui.AddNode(NewCanvas(NewWidgetBuilder()))
	return ui, nil
}

// Root returns the root canvas.
func (ui *UserInterface) Root() Handle { return ui.root }

// Config returns the active configuration.
func (ui *UserInterface) Config() *config.Config { return ui.cfg }

// Font returns the font used for text measurement.
func (ui *UserInterface) Font() *graphics.Font { return ui.font }

// ScreenSize returns the size passed to the last update.
func (ui *UserInterface) ScreenSize() graphics.Vec2 { return ui.screenSize }

// SetScreenSize changes the screen size and invalidates the root.
func (ui *UserInterface) SetScreenSize(size graphics.Vec2) {
	size = size.Finite()
	if size != ui.screenSize {
		ui.screenSize = size
		ui.InvalidateLayout(ui.root)
	}
}

// Sender returns a handle for enqueueing messages.
func (ui *UserInterface) Sender() Sender {
	return Sender{q: ui.queue}
}

// Send enqueues m. It is processed by a later PollMessage, never
// synchronously.
func (ui *UserInterface) Send(m *Message) {
	ui.Sender().Send(m)
}

// QueueLen returns the number of messages waiting.
func (ui *UserInterface) QueueLen() int {
	return ui.queue.len()
}

// Len returns the number of live nodes, the root included.
func (ui *UserInterface) Len() int {
	return ui.nodes.Len()
}

// Nodes yields every live node.
func (ui *UserInterface) Nodes() iter.Seq2[Handle, Control] {
	return ui.nodes.All()
}

// IsValid reports whether h refers to a live node.
func (ui *UserInterface) IsValid(h Handle) bool {
	return ui.nodes.IsValid(h)
}

// Node returns the control behind h.
func (ui *UserInterface) Node(h Handle) (Control, bool) {
	return ui.nodes.Borrow(h)
}

// Widget returns the widget record behind h, or nil when h does not
// resolve.
func (ui *UserInterface) Widget(h Handle) *Widget {
	c, ok := ui.nodes.Borrow(h)
	if !ok {
		return nil
	}
	return c.Base()
}

func (ui *UserInterface) report(op string, kind errors.ErrorKind, h Handle, err error) {
	e := &errors.UIError{Op: op, Kind: kind, Err: err}
	if h.IsSome() {
		e.Widget = h.String()
		if w := ui.Widget(h); w != nil && w.name != "" {
			e.Widget = fmt.Sprintf("%s(%s)", w.name, h)
		}
	}
	if ui.cfg.Debug.Verbose {
		e.StackTrace = errors.CaptureStack()
	}
	errors.ReportTo(ui.errors, e)
}

// AddNode stores c and links it under the root. Children listed in its
// widget record are re-linked under the new node.
func (ui *UserInterface) AddNode(c Control) Handle {
	return ui.AddNodeTo(c, ui.root)
}

// AddNodeTo stores c and links it under parent. An invalid parent leaves
// the node detached.
func (ui *UserInterface) AddNodeTo(c Control, parent Handle) Handle {
	w := c.Base()
	children := w.children
	w.children = nil
	w.parent = None
	w.measureValid = false
	w.arrangeValid = false

	h := ui.nodes.Spawn(c)
	w.handle = h

	if ui.nodes.IsValid(parent) {
		ui.link(h, parent, false)
	}
	for _, child := range children {
		if ui.nodes.IsValid(child) && child != ui.root {
			ui.link(child, h, false)
		}
	}
	return h
}

// LinkNodes makes child the last child of parent, detaching it from its
// previous parent. Layout is invalidated for both parents. A link that
// would make child its own ancestor is reported and ignored unless cycle
// checks are disabled in the configuration.
func (ui *UserInterface) LinkNodes(child, parent Handle) bool {
	return ui.linkChecked("ui.LinkNodes", child, parent, false)
}

// LinkNodesFront is like LinkNodes but makes child the first child.
func (ui *UserInterface) LinkNodesFront(child, parent Handle) bool {
	return ui.linkChecked("ui.LinkNodesFront", child, parent, true)
}

func (ui *UserInterface) linkChecked(op string, child, parent Handle, inFront bool) bool {
	if !ui.nodes.IsValid(child) || !ui.nodes.IsValid(parent) {
		return false
	}
	if child == parent || child == ui.root {
		ui.report(op, errors.KindStructure, child, errors.ErrCycle)
		return false
	}
	if ui.cfg.RejectCycles() && ui.HasDescendant(parent, child) {
		ui.report(op, errors.KindStructure, child, errors.ErrCycle)
		return false
	}
	ui.link(child, parent, inFront)
	return true
}

func (ui *UserInterface) link(child, parent Handle, inFront bool) {
	ui.unlink(child)
	ui.Widget(child).parent = parent
	p := ui.Widget(parent)
	p.addChild(child, inFront)
	ui.sortByZIndex(p)
	ui.InvalidateLayout(child)
	ui.InvalidateLayout(parent)
}

// unlink detaches h from its parent, leaving it parentless.
func (ui *UserInterface) unlink(h Handle) {
	w := ui.Widget(h)
	if w == nil || w.parent.IsNone() {
		return
	}
	parent := w.parent
	w.parent = None
	if p := ui.Widget(parent); p != nil {
		p.removeChild(h)
		ui.InvalidateLayout(parent)
	}
}

// UnlinkNode moves h under the root.
func (ui *UserInterface) UnlinkNode(h Handle) {
	if !ui.nodes.IsValid(h) || h == ui.root {
		return
	}
	ui.link(h, ui.root, false)
}

// MakeTopmost moves h last among its siblings. The node is only topmost
// within its own parent.
func (ui *UserInterface) MakeTopmost(h Handle) {
	w := ui.Widget(h)
	if w == nil {
		return
	}
	if p := ui.Widget(w.parent); p != nil {
		p.removeChild(h)
		p.addChild(h, false)
	}
}

// RemoveNode frees h and its whole subtree. Input state referring to a
// removed node is cleared, and every remaining control implementing
// RefRemover is told about each removed handle. Removing the root is
// ignored.
func (ui *UserInterface) RemoveNode(h Handle) {
	if !ui.nodes.IsValid(h) || h == ui.root {
		return
	}
	ui.unlink(h)

	var removed []Handle
	stack := append(ui.scratch[:0], h)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w := ui.Widget(cur)
		if w == nil {
			continue
		}
		removed = append(removed, cur)
		ui.forget(cur)
		stack = append(stack, w.children...)
		ui.nodes.Free(cur)
	}
	ui.scratch = stack[:0]

	for _, c := range ui.nodes.All() {
		if rr, ok := c.(RefRemover); ok {
			for _, r := range removed {
				rr.RemoveRef(r)
			}
		}
	}
}

// forget clears every piece of routing state that refers to h.
func (ui *UserInterface) forget(h Handle) {
	if ui.prevPicked == h {
		ui.prevPicked = None
	}
	if ui.picked == h {
		ui.picked = None
	}
	if ui.captured == h {
		ui.captured = None
	}
	if ui.focused == h {
		ui.focused = None
	}
	if ui.drag.node == h {
		ui.drag = dragContext{}
	}
	ui.RemovePickingRestriction(h)
}

// HasDescendant reports whether candidate lies in the subtree below of,
// by walking up from candidate. A node is not its own descendant.
func (ui *UserInterface) HasDescendant(candidate, of Handle) bool {
	w := ui.Widget(candidate)
	if w == nil || of.IsNone() {
		return false
	}
	for cur := w.parent; cur.IsSome(); {
		if cur == of {
			return true
		}
		p := ui.Widget(cur)
		if p == nil {
			return false
		}
		cur = p.parent
	}
	return false
}

// FindUp returns the first node, starting at h and walking towards the
// root, for which match returns true.
func (ui *UserInterface) FindUp(h Handle, match func(Control) bool) Handle {
	for cur := h; cur.IsSome(); {
		c, ok := ui.nodes.Borrow(cur)
		if !ok {
			return None
		}
		if match(c) {
			return cur
		}
		cur = c.Base().parent
	}
	return None
}

// FindDown returns the first node in depth-first pre-order below and
// including h for which match returns true.
func (ui *UserInterface) FindDown(h Handle, match func(Control) bool) Handle {
	c, ok := ui.nodes.Borrow(h)
	if !ok {
		return None
	}
	if match(c) {
		return h
	}
	for _, child := range c.Base().children {
		if found := ui.FindDown(child, match); found.IsSome() {
			return found
		}
	}
	return None
}

// FindByName returns the first node named name below and including h.
func (ui *UserInterface) FindByName(h Handle, name string) Handle {
	return ui.FindDown(h, func(c Control) bool { return c.Base().name == name })
}
