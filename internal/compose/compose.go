// SPDX-License-Identifier: MPL-2.0

// Package compose assembles the ordered, fail-fast command sequence for one
// launch: before-hooks, the wine launch command, a wineserver sync command,
// then after-hooks. The composer never executes anything itself; the
// sequence is handed to a runner.
package compose

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"wineceptor-cli/internal/prefix"
	"wineceptor-cli/internal/settings"
	"wineceptor-cli/pkg/types"
)

const (
	// prefixEnvVar tells wine which prefix to operate on.
	prefixEnvVar = "WINEPREFIX"
	// serverSuffix derives the wineserver binary from the wine binary,
	// matching Wine's convention of sibling binaries in the same bindir.
	serverSuffix = "server"
	// serverWaitFlag makes wineserver block until the prefix's background
	// server process has terminated.
	serverWaitFlag = "-w"
)

// CommandSequence is an ordered list of shell commands. Execution must stop
// at the first command that fails; Join renders that contract as a single
// && chain for the shell.
type CommandSequence []string

// Join renders the sequence as one AND-chained shell command line.
func (s CommandSequence) Join() string {
	return strings.Join(s, " && ")
}

// Compose builds the command sequence for launching executable inside pfx
// with the resolved settings. Order: before-hooks, launch, sync,
// after-hooks. The sync command waits for the prefix's wineserver to
// terminate so after-hooks only run once the environment has quiesced.
func Compose(executable types.FilesystemPath, pfx prefix.Prefix, s settings.Resolved) (CommandSequence, error) {
	launch, err := launchCommand(executable, pfx, s)
	if err != nil {
		return nil, err
	}
	sync, err := syncCommand(pfx, s)
	if err != nil {
		return nil, err
	}

	seq := make(CommandSequence, 0, len(s.BeforeCommands)+2+len(s.AfterCommands))
	seq = append(seq, s.BeforeCommands...)
	seq = append(seq, launch, sync)
	seq = append(seq, s.AfterCommands...)
	return seq, nil
}

// launchCommand builds the single command that starts the executable:
// it scopes wine to the prefix, applies the resolved env assignments in
// order, and invokes the runtime binary with the fixed start subcommand.
func launchCommand(executable types.FilesystemPath, pfx prefix.Prefix, s settings.Resolved) (string, error) {
	quotedPrefix, err := quoteArg(pfx.Root.String())
	if err != nil {
		return "", err
	}
	quotedExecutable, err := quoteArg(executable.String())
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, 6+len(s.EnvVars))
	parts = append(parts, "env", prefixEnvVar+"="+quotedPrefix)
	parts = append(parts, s.EnvVars...)
	parts = append(parts, s.RuntimeBinary, "start", "/unix", quotedExecutable)
	if s.LaunchParams != "" {
		parts = append(parts, s.LaunchParams)
	}
	return strings.Join(parts, " "), nil
}

// syncCommand builds the command that blocks until the prefix's wineserver
// process has exited.
func syncCommand(pfx prefix.Prefix, s settings.Resolved) (string, error) {
	quotedPrefix, err := quoteArg(pfx.Root.String())
	if err != nil {
		return "", err
	}
	server := s.RuntimeBinary + serverSuffix
	return strings.Join([]string{"env", prefixEnvVar + "=" + quotedPrefix, server, serverWaitFlag}, " "), nil
}

// quoteArg shell-quotes a single argument. All quoting decisions live here
// so the rest of the composer treats commands as opaque strings.
func quoteArg(arg string) (string, error) {
	quoted, err := syntax.Quote(arg, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("quoting argument %q: %w", arg, err)
	}
	return quoted, nil
}
