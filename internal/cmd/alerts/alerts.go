// Package alerts writes status lines (warnings, hints, results) for CLI
// commands. Alerts go to stderr so they never mix with structured output
// on stdout.
package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agentstation/spotmap/internal/cmd/emoji"
)

// Level represents the severity of an alert.
type Level int

const (
	// LevelError indicates a failure or error condition.
	LevelError Level = iota
	// LevelWarning indicates a potential issue or important notice.
	LevelWarning
	// LevelInfo indicates general informational messages.
	LevelInfo
	// LevelSuccess indicates successful completion of an operation.
	LevelSuccess
)

// String returns the string representation of the alert level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the symbol printed before the message.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return emoji.Error
	case LevelWarning:
		return emoji.Warning
	case LevelSuccess:
		return emoji.Success
	default:
		return emoji.Info
	}
}

func (l Level) color() string {
	switch l {
	case LevelError:
		return "\033[31m"
	case LevelWarning:
		return "\033[33m"
	case LevelSuccess:
		return "\033[32m"
	default:
		return "\033[36m"
	}
}

const reset = "\033[0m"

// Alert is one status line with optional indented details.
type Alert struct {
	Level   Level
	Message string
	Details []string
}

// String returns the alert without color.
func (a Alert) String() string {
	return a.Level.Icon() + " " + a.Message
}

// Writer prints alerts.
type Writer struct {
	w     io.Writer
	color bool
}

// NewWriter creates a Writer on w. Colors are used only when w is a
// terminal and NO_COLOR is unset.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, color: isTerminal(w) && os.Getenv("NO_COLOR") == ""}
}

// Write prints an alert and its details.
func (w *Writer) Write(a Alert) {
	line := a.String()
	if w.color {
		line = a.Level.color() + line + reset
	}
	_, _ = fmt.Fprintln(w.w, line)
	for _, d := range a.Details {
		_, _ = fmt.Fprintf(w.w, "   %s\n", d)
	}
}

// Warning prints a warning.
func (w *Writer) Warning(message string, details ...string) {
	w.Write(Alert{Level: LevelWarning, Message: message, Details: details})
}

// Info prints an informational line.
func (w *Writer) Info(message string, details ...string) {
	w.Write(Alert{Level: LevelInfo, Message: message, Details: details})
}

// Success prints a success line.
func (w *Writer) Success(message string, details ...string) {
	w.Write(Alert{Level: LevelSuccess, Message: message, Details: details})
}

// Error prints an error line.
func (w *Writer) Error(message string, details ...string) {
	w.Write(Alert{Level: LevelError, Message: message, Details: details})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
