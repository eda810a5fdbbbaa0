// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used for status lines in terminal output.
const (
	// Success marks a completed operation or a passing check.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Stop marks a shutdown.
	Stop = "✗"

	// Warning marks a non-fatal issue.
	Warning = "!"

	// Info marks an informational hint.
	Info = "i"
)
