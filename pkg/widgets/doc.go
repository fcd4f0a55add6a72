// Package widgets provides the concrete controls built on package ui.
//
// Every control is created through a builder that takes a configured
// ui.WidgetBuilder for the shared settings and adds its own:
//
//	title := widgets.NewTextBuilder(ui.NewWidgetBuilder().OnRow(0)).
//		WithText("Settings").
//		Build(u)
//	ok := widgets.NewButtonBuilder(ui.NewWidgetBuilder().OnRow(1)).
//		WithText("OK").
//		Build(u)
//	widgets.NewGridBuilder(ui.NewWidgetBuilder().WithChildren(title, ok)).
//		WithRows(widgets.StrictRow(20), widgets.StretchRow()).
//		WithColumns(widgets.StretchColumn()).
//		Build(u)
//
// Children are built first and handed to the parent's WidgetBuilder; Build
// re-links them under the new node.
//
// # Layout containers
//
// Grid, StackPanel, WrapPanel and Border arrange their children. Any other
// control with several children uses the default panel layout, which
// stacks every child over the full slot.
//
// # Messages
//
// Each control defines its own message payloads next to it. Requests are
// sent ToWidget; a control that applies a request echoes it FromWidget
// only when the value actually changed, so observers that answer an echo
// with another request cannot loop forever.
package widgets
