package ui

import (
	"fmt"

	"github.com/go-drift/retained/pkg/graphics"
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ButtonState is the state of a key or button.
type ButtonState int

const (
	Released ButtonState = iota
	Pressed
)

// MouseState holds the state of the three main buttons.
type MouseState struct {
	Left   ButtonState
	Right  ButtonState
	Middle ButtonState
}

// KeyboardModifiers holds the modifier keys currently down.
type KeyboardModifiers struct {
	Alt     bool
	Shift   bool
	Control bool
	System  bool
}

// KeyCode identifies a keyboard key independent of layout.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = map[KeyCode]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeySpace:     "space",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
}

func (k KeyCode) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// OSEvent is raw input translated by the embedder.
type OSEvent interface {
	osEvent()
}

// CursorMoved reports the cursor position in screen space.
type CursorMoved struct {
	Position graphics.Vec2
}

// MouseInput reports a button press or release at the last cursor position.
type MouseInput struct {
	Button MouseButton
	State  ButtonState
}

// MouseWheel reports scroll deltas.
type MouseWheel struct {
	X float32
	Y float32
}

// KeyboardInput reports a key press or release.
type KeyboardInput struct {
	Key   KeyCode
	State ButtonState
}

// Character reports a typed character.
type Character struct {
	Rune rune
}

// ModifiersChanged reports the new modifier state.
type ModifiersChanged struct {
	Modifiers KeyboardModifiers
}

func (CursorMoved) osEvent()      {}
func (MouseInput) osEvent()       {}
func (MouseWheel) osEvent()       {}
func (KeyboardInput) osEvent()    {}
func (Character) osEvent()        {}
func (ModifiersChanged) osEvent() {}
