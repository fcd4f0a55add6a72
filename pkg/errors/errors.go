// Package errors provides structured error reporting for the UI core.
//
// Per-frame operations never return errors: stale handles and malformed input
// degrade to no-ops. Conditions worth surfacing, such as a rejected tree link
// or an exhausted message budget, are reported to a pluggable Handler instead.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Sentinel causes carried in UIError.Err.
var (
	// ErrCycle is reported when a link would make a node its own ancestor.
	ErrCycle = stderrors.New("link would create a cycle")
	// ErrMessageBudget is reported when a tick dispatches its maximum
	// number of messages with more still queued.
	ErrMessageBudget = stderrors.New("message budget exhausted")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration load or validation error.
	KindConfig
	// KindLayout indicates a layout pass problem.
	KindLayout
	// KindMessage indicates a message dispatch problem.
	KindMessage
	// KindStructure indicates a rejected tree mutation.
	KindStructure
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindMessage:
		return "message"
	case KindStructure:
		return "structure"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// UIError represents a structured error raised by the UI core.
type UIError struct {
	// Op is the operation that failed (e.g., "ui.LinkNodes").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget describes the node involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ui.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the UI core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
