package errors

import (
	"fmt"
	"os"
)

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs outside a caller-facing path.
	HandleError(err *Error)
}

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[slate error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "[slate error] %s: %v\n", err.Op, err.Err)
}

var handler ErrorHandler = &LogHandler{}

// SetHandler installs a custom error handler. Passing nil restores the
// default stderr handler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		handler = &LogHandler{}
		return
	}
	handler = h
}

// Report forwards an error to the installed handler.
func Report(err *Error) {
	if err == nil {
		return
	}
	handler.HandleError(err)
}
