// Package ui is a retained-mode widget tree with layout and message routing.
//
// # Nodes
//
// Every node is a Control stored in a generational pool and referred to by
// a Handle. Handles are plain values; once a node is removed its handle
// stops resolving and any later use is a silent no-op. Concrete controls
// embed Widget, which carries the shared record (name, size constraints,
// alignment, visibility, layout cache) and default behavior.
//
//	u, _ := ui.New(graphics.V2(800, 600))
//	panel := u.AddNode(ui.NewPlain(ui.NewWidgetBuilder().WithName("panel")))
//
// # Layout
//
// Layout is two-pass. MeasureNode asks a node how large it wants to be for
// a given available size; ArrangeNode assigns it a final rectangle. Both
// are cached and only recomputed after InvalidateLayout. Controls customize
// layout through MeasureOverride and ArrangeOverride, recursing into their
// children with MeasureNode and ArrangeNode.
//
// # Messages
//
// Widgets and the application talk through messages queued with Send and
// processed by PollMessage, never synchronously. A ToWidget message asks a
// widget to change; the widget applies it and echoes a FromWidget copy
// (Message.Reverse) so observers learn about the change. Routing visits the
// destination and then each ancestor, which lets containers react to
// events from their descendants.
//
//	u.Send(ui.To(panel, ui.WidgetWidth{Value: 120}))
//	for msg, ok := u.PollMessage(); ok; msg, ok = u.PollMessage() {
//		// react to msg
//	}
//
// # Input
//
// ProcessOSEvent hit-tests pointer events and queues notifications for the
// node under the cursor. CaptureMouse and the picking-restriction stack
// narrow where pointer input can go; popups use both.
package ui
