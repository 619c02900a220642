// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"wineceptor-cli/internal/compose"
	"wineceptor-cli/pkg/types"
)

// ShellRunner runs command sequences in an embedded mvdan/sh interpreter.
// The && chain gives fail-fast semantics natively: a failing command stops
// the chain and its exit status becomes the chain's status.
type ShellRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner creates a ShellRunner wired to the process's std streams.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run parses and executes the joined command chain. The host environment is
// passed through; per-launch variables are already inlined in the chain by
// the composer.
func (r *ShellRunner) Run(ctx context.Context, seq compose.CommandSequence) *Result {
	script := seq.Join()

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "wineceptor")
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to parse command chain: %w", err))
	}

	sh, err := interp.New(
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(r.Stdin, r.Stdout, r.Stderr),
	)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to create interpreter: %w", err))
	}

	if err := sh.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &Result{ExitCode: types.ExitCode(exitStatus)}
		}
		return NewErrorResult(1, fmt.Errorf("command chain execution failed: %w", err))
	}

	return NewSuccessResult()
}
