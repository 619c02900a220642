// SPDX-License-Identifier: MPL-2.0

// Package launcher ties the pipeline together: canonicalize the executable,
// locate its prefix, resolve both config scopes, compose the command
// sequence, and hand it to the runner. Every failure surfaces as a single
// error at this boundary.
package launcher

import (
	"context"
	"log/slog"

	"wineceptor-cli/internal/compose"
	"wineceptor-cli/internal/prefix"
	"wineceptor-cli/internal/runner"
	"wineceptor-cli/internal/settings"
	"wineceptor-cli/pkg/fspath"
	"wineceptor-cli/pkg/types"
)

// Launcher runs one executable through the full pipeline. Each Launch call
// is an independent pass over current filesystem state; nothing is cached
// across invocations.
type Launcher struct {
	// MaxDepth bounds the upward prefix search.
	MaxDepth int
	// RuntimeBinary is the default wine binary when no prefix-scope
	// WINE.path override exists.
	RuntimeBinary string
	// Locator finds the enclosing prefix.
	Locator *prefix.Locator
	// Runner executes the composed command sequence.
	Runner runner.Runner
}

// New creates a Launcher with the given startup defaults and runner.
func New(maxDepth int, runtimeBinary string, r runner.Runner) *Launcher {
	return &Launcher{
		MaxDepth:      maxDepth,
		RuntimeBinary: runtimeBinary,
		Locator:       prefix.NewLocator(),
		Runner:        r,
	}
}

// Launch locates the prefix for executablePath, resolves its configuration,
// and runs the composed command sequence. It returns the sequence's exit
// code, or a non-nil error (with exit code 1) when any pipeline step fails.
func (l *Launcher) Launch(ctx context.Context, executablePath string) (types.ExitCode, error) {
	executable, err := fspath.Canonicalize(types.FilesystemPath(executablePath))
	if err != nil {
		return 1, err
	}

	pfx, err := l.Locator.Locate(executable, l.MaxDepth)
	if err != nil {
		return 1, err
	}
	slog.Debug("located wine prefix", "executable", executable, "prefix", pfx.Root)

	prefixCfg, err := settings.LoadPrefixConfig(pfx)
	if err != nil {
		return 1, err
	}
	executableCfg, err := settings.LoadExecutableConfig(executable)
	if err != nil {
		return 1, err
	}

	resolved := settings.Resolve(prefixCfg, executableCfg, l.RuntimeBinary)

	seq, err := compose.Compose(executable, pfx, resolved)
	if err != nil {
		return 1, err
	}
	slog.Debug("composed command sequence", "commands", len(seq))

	result := l.Runner.Run(ctx, seq)
	if result.Error != nil {
		code := result.ExitCode
		if code.IsSuccess() {
			code = 1
		}
		return code, result.Error
	}
	return result.ExitCode, nil
}
