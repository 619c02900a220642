// SPDX-License-Identifier: MPL-2.0

// Package settings loads and resolves the two-tier wineceptor configuration:
// a prefix-scope wineceptor.ini inside the prefix root and an
// executable-scope <name>.wineceptor.ini next to the executable. Either
// file may be absent; absence is never an error.
package settings

import (
	"fmt"
	"log/slog"

	"gopkg.in/ini.v1"

	"wineceptor-cli/internal/prefix"
	"wineceptor-cli/pkg/fspath"
	"wineceptor-cli/pkg/types"
)

const (
	// PrefixConfigName is the fixed basename of the prefix-scope config file.
	PrefixConfigName = "wineceptor.ini"
	// ExecutableConfigSuffix is appended to the executable's full filename
	// to form the basename of the executable-scope config file.
	ExecutableConfigSuffix = ".wineceptor.ini"

	sectionWine       = "WINE"
	sectionEnv        = "ENV"
	sectionExecParams = "EXEC_PARAMS"
	sectionBefore     = "BEFORE"
	sectionAfter      = "AFTER"

	keyWinePath = "path"
)

// Config is a tagged present/absent view over a parsed wineceptor INI file.
// The zero value is the absent variant; every resolver function returns its
// documented default on the absent branch instead of erroring.
type Config struct {
	file *ini.File
	path types.FilesystemPath
}

// Present reports whether a config file was found and parsed.
func (c Config) Present() bool { return c.file != nil }

// Path returns the file the config was loaded from, or "" when absent.
func (c Config) Path() types.FilesystemPath { return c.path }

// LoadPrefixConfig loads the prefix-scope config from wineceptor.ini
// directly inside the prefix root. A missing file yields the absent Config
// and no error; an unreadable or malformed file is an error.
func LoadPrefixConfig(p prefix.Prefix) (Config, error) {
	return loadFile(fspath.JoinStr(p.Root, PrefixConfigName))
}

// LoadExecutableConfig loads the executable-scope config from
// <executable filename>.wineceptor.ini in the executable's directory.
func LoadExecutableConfig(executable types.FilesystemPath) (Config, error) {
	return loadFile(executable + ExecutableConfigSuffix)
}

func loadFile(path types.FilesystemPath) (Config, error) {
	if !fspath.IsFile(path) {
		slog.Debug("no config file", "path", path)
		return Config{}, nil
	}

	file, err := ini.Load(path.String())
	if err != nil {
		return Config{}, fmt.Errorf("loading config file %q: %w", path, err)
	}
	slog.Debug("loaded config file", "path", path)
	return Config{file: file, path: path}, nil
}

// sectionKeys returns the keys of the named section in file declaration
// order, or nil when the config or the section is absent.
func (c Config) sectionKeys(section string) []*ini.Key {
	if !c.Present() {
		return nil
	}
	sec, err := c.file.GetSection(section)
	if err != nil {
		return nil
	}
	return sec.Keys()
}
