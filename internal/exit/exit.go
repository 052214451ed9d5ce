package exit

import (
	"fmt"
	"io"
	"os"
)

// Process exit codes.
const (
	CodeOK    = 0
	CodeError = 1
	CodeUsage = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// WithOutput redirects the message, keeping the exit code.
func (r *Result) WithOutput(w io.Writer) *Result {
	r.Output = w
	return r
}

// Finish prints the message and returns the exit code.
func (r *Result) Finish() int {
	r.Print()
	return r.ExitCode
}

// Success creates a result that outputs to stdout with CodeOK.
func Success(message string) *Result {
	return &Result{Output: os.Stdout, ExitCode: CodeOK, Message: message}
}

// Error creates a result that outputs to stderr with CodeError.
func Error(message string) *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeError, Message: message}
}

// Usage creates a result for invalid invocations: guidance on stderr with CodeUsage.
func Usage(message string) *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeUsage, Message: message}
}

// Errorf creates an error exit result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
