package ui

import "github.com/go-drift/retained/pkg/graphics"

// Base record requests, sent ToWidget. Each changes one attribute of the
// destination's Widget record; those that affect geometry invalidate layout
// when the value actually changes.
type (
	WidgetName                struct{ Name string }
	WidgetWidth               struct{ Value float32 }
	WidgetHeight              struct{ Value float32 }
	WidgetMinSize             struct{ Size graphics.Vec2 }
	WidgetMaxSize             struct{ Size graphics.Vec2 }
	WidgetMargin              struct{ Margin graphics.Thickness }
	WidgetHorizontalAlignment struct{ Alignment HorizontalAlignment }
	WidgetVerticalAlignment   struct{ Alignment VerticalAlignment }
	WidgetRow                 struct{ Row int }
	WidgetColumn              struct{ Column int }
	WidgetVisibility          struct{ Visible bool }
	WidgetEnabled             struct{ Enabled bool }
	WidgetClipToBounds        struct{ Clip bool }
	WidgetHitTestVisibility   struct{ Visible bool }
	WidgetOpacity             struct{ Opacity float32 }
	WidgetBackground          struct{ Brush graphics.Brush }
	WidgetForeground          struct{ Brush graphics.Brush }
	WidgetCursor              struct{ Cursor CursorIcon }
	WidgetDesiredPosition     struct{ Position graphics.Vec2 }
	WidgetUserData            struct{ Data any }
	// WidgetZIndex also reorders the destination's siblings by z-index.
	WidgetZIndex struct{ Index int }
)

// Structural requests, sent ToWidget and carried out by the UserInterface
// after the message has been routed.
type (
	// WidgetRemove removes the destination and its subtree.
	WidgetRemove struct{}
	// WidgetLinkWith re-parents the destination, appending it last.
	WidgetLinkWith struct{ Parent Handle }
	// WidgetLinkWithFront re-parents the destination, inserting it first.
	WidgetLinkWithFront struct{ Parent Handle }
	// WidgetUnlink moves the destination under the root, keeping its
	// screen position.
	WidgetUnlink struct{}
	// WidgetTopmost moves the destination last among its siblings.
	WidgetTopmost struct{}
	// WidgetCenter positions the destination in the middle of its parent.
	WidgetCenter struct{}
	// WidgetFocus gives the destination keyboard focus.
	WidgetFocus struct{}
)

// Input notifications, sent FromWidget by the input router to the picked
// (or focused) node.
type (
	WidgetMouseDown struct {
		Position graphics.Vec2
		Button   MouseButton
	}
	WidgetMouseUp struct {
		Position graphics.Vec2
		Button   MouseButton
	}
	WidgetMouseMove struct {
		Position graphics.Vec2
		State    MouseState
	}
	WidgetMouseWheel struct {
		Position graphics.Vec2
		Amount   float32
	}
	WidgetMouseEnter struct{}
	WidgetMouseLeave struct{}
	WidgetKeyDown    struct{ Key KeyCode }
	WidgetKeyUp      struct{ Key KeyCode }
	WidgetText       struct{ Rune rune }
	WidgetGotFocus   struct{}
	WidgetLostFocus  struct{}
	// WidgetDragStarted is sent to the picked node when a drag of Node begins.
	WidgetDragStarted struct{ Node Handle }
	// WidgetDragOver is sent to the node under the cursor during a drag.
	WidgetDragOver struct{ Node Handle }
	// WidgetDrop is sent to the drop target when Node is released over it.
	WidgetDrop struct{ Node Handle }
)
