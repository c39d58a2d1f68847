package wrop

import (
	"fmt"
	"io"
	"os"
)

// Exit statuses produced by the report sink. Warnings are informational and
// keep the success status; only failures flip it.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Report writes the final diagnostic line for r to stderr and returns the
// process exit status: ExitFailure for a failed result, ExitSuccess
// otherwise. A warning prints its line but still reports success.
func Report[T, W any](r Result[T, W]) int {
	return ReportTo(os.Stderr, r)
}

// ReportTo is Report with an explicit destination stream.
func ReportTo[T, W any](w io.Writer, r Result[T, W]) int {
	if r.IsFailure() {
		fmt.Fprintf(w, "Error: %v\n", r.Err())
		return ExitFailure
	}
	if r.IsWarn() {
		fmt.Fprintf(w, "Warning: %v\n", r.Warning())
	}
	return ExitSuccess
}
