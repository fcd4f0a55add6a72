package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogHandler is an ErrorHandler that writes one line per error to Out,
// or to stderr when Out is nil.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a UIError.
func (h *LogHandler) HandleError(err *UIError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[ui error] %s [%s]", err.Op, err.Kind)
		if err.Widget != "" {
			fmt.Fprintf(w, " widget=%s", err.Widget)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[ui error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[ui panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[ui panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// RecordingHandler keeps every reported error in memory. Useful in tests
// and for embedders that surface errors in their own UI.
type RecordingHandler struct {
	mu     sync.Mutex
	errors []*UIError
	panics []*PanicError
}

// HandleError records err.
func (h *RecordingHandler) HandleError(err *UIError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, err)
}

// HandlePanic records err.
func (h *RecordingHandler) HandlePanic(err *PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

// Errors returns a copy of the recorded errors.
func (h *RecordingHandler) Errors() []*UIError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*UIError(nil), h.errors...)
}

// Panics returns a copy of the recorded panics.
func (h *RecordingHandler) Panics() []*PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*PanicError(nil), h.panics...)
}

// Reset discards everything recorded so far.
func (h *RecordingHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = nil
	h.panics = nil
}
