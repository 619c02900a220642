// SPDX-License-Identifier: MPL-2.0

// Package runner executes composed command sequences. The shell runner
// interprets the joined && chain in an embedded POSIX shell; the print
// runner writes it out for dry runs.
package runner

import (
	"context"

	"wineceptor-cli/internal/compose"
	"wineceptor-cli/pkg/types"
)

type (
	// Result is the outcome of running a command sequence. A non-nil Error
	// means the runner itself failed; a non-zero ExitCode with nil Error
	// means a command in the chain exited non-zero.
	Result struct {
		ExitCode types.ExitCode
		Error    error
	}

	// Runner executes an ordered command sequence with fail-fast semantics.
	Runner interface {
		Run(ctx context.Context, seq compose.CommandSequence) *Result
	}
)

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code types.ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}
