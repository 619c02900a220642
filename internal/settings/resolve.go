// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"log/slog"
	"strings"
)

// Resolved is the read-only view combining both config scopes. It carries
// everything the command composer needs for one launch.
type Resolved struct {
	// RuntimeBinary is the wine binary to invoke (prefix-scope WINE.path,
	// falling back to the startup default).
	RuntimeBinary string
	// EnvVars are "KEY=VALUE" assignments, prefix-scope entries first,
	// executable-scope entries after. Duplicates are retained: later
	// entries override earlier ones once the shell applies them.
	EnvVars []string
	// LaunchParams is the space-joined EXEC_PARAMS value list.
	LaunchParams string
	// BeforeCommands run before the launch command, in file order.
	BeforeCommands []string
	// AfterCommands run after the wine server quiesces, in file order.
	AfterCommands []string
}

// Resolve combines the prefix-scope and executable-scope configs into a
// Resolved settings view. Missing files, sections, and keys all fall back
// to their documented defaults; Resolve itself cannot fail.
func Resolve(prefixCfg, executableCfg Config, defaultRuntimeBinary string) Resolved {
	prefixEnv := EnvVariables(prefixCfg)
	executableEnv := EnvVariables(executableCfg)
	if len(prefixEnv) == 0 {
		slog.Debug("no env variables in prefix config", "path", prefixCfg.Path())
	}
	if len(executableEnv) == 0 {
		slog.Debug("no env variables in executable config", "path", executableCfg.Path())
	}

	return Resolved{
		RuntimeBinary:  RuntimeBinary(prefixCfg, defaultRuntimeBinary),
		EnvVars:        append(prefixEnv, executableEnv...),
		LaunchParams:   LaunchParameters(executableCfg),
		BeforeCommands: BeforeCommands(executableCfg),
		AfterCommands:  AfterCommands(executableCfg),
	}
}

// RuntimeBinary returns the WINE.path override from the prefix-scope
// config, or fallback when the config, section, or key is absent.
func RuntimeBinary(c Config, fallback string) string {
	for _, key := range c.sectionKeys(sectionWine) {
		if key.Name() == keyWinePath && key.Value() != "" {
			return key.Value()
		}
	}
	return fallback
}

// EnvVariables returns the ENV section as "KEY=VALUE" strings in file
// declaration order. Key casing is preserved exactly as written.
func EnvVariables(c Config) []string {
	keys := c.sectionKeys(sectionEnv)
	if len(keys) == 0 {
		return nil
	}
	vars := make([]string, 0, len(keys))
	for _, key := range keys {
		vars = append(vars, key.Name()+"="+key.Value())
	}
	return vars
}

// LaunchParameters returns the EXEC_PARAMS section values (keys ignored)
// in file declaration order, joined with single spaces.
func LaunchParameters(c Config) string {
	return strings.Join(sectionValues(c, sectionExecParams), " ")
}

// BeforeCommands returns the BEFORE section values in file order.
func BeforeCommands(c Config) []string {
	return sectionValues(c, sectionBefore)
}

// AfterCommands returns the AFTER section values in file order.
func AfterCommands(c Config) []string {
	return sectionValues(c, sectionAfter)
}

func sectionValues(c Config, section string) []string {
	keys := c.sectionKeys(section)
	if len(keys) == 0 {
		return nil
	}
	values := make([]string, 0, len(keys))
	for _, key := range keys {
		values = append(values, key.Value())
	}
	return values
}
