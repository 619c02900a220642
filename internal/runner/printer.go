// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"fmt"
	"io"

	"wineceptor-cli/internal/compose"
)

// PrintRunner writes the joined command chain instead of executing it.
// Used for dry runs.
type PrintRunner struct {
	Out io.Writer
}

// Run prints the chain and reports success.
func (r *PrintRunner) Run(_ context.Context, seq compose.CommandSequence) *Result {
	fmt.Fprintln(r.Out, seq.Join())
	return NewSuccessResult()
}
