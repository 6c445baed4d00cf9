// Package errors holds the user-facing messages and exit-code mapping for the
// go-imports-order application.
package errors

import "errors"

// Per-file result messages, reported as [<path>][<message>] on stdout.
const (
	MsgReadFailed = "failed to read from file"
	MsgNoImports  = "no includes found"
	MsgDone       = "done"
)

// Fatal messages, written to the error stream.
const (
	MsgNoGoFiles  = "no go files to order includes"
	MsgUnexpected = "unexpected error occured"
)

// Sentinel errors returned by the root command.
var (
	ErrWrongArgs = errors.New("expected exactly one path argument")
	ErrNoGoFiles = errors.New(MsgNoGoFiles)
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitWrongArgs  = -1
	ExitUnexpected = -2
	ExitNoGoFiles  = -3
)

// ExitCode maps an error returned by the root command to the process exit
// code. Anything that is not a known sentinel counts as unexpected.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrWrongArgs):
		return ExitWrongArgs
	case errors.Is(err, ErrNoGoFiles):
		return ExitNoGoFiles
	default:
		return ExitUnexpected
	}
}
