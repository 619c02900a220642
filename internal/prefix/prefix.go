// SPDX-License-Identifier: MPL-2.0

// Package prefix discovers the Wine prefix enclosing an executable by
// walking upward from the executable's directory until a structurally
// qualifying prefix root is found.
package prefix

import (
	"errors"
	"fmt"
	"log/slog"

	"wineceptor-cli/pkg/fspath"
	"wineceptor-cli/pkg/types"
)

const (
	// markerDriveC is the child directory every Wine prefix root contains.
	markerDriveC = "drive_c"
	// markerTimestamp is the child file every Wine prefix root contains.
	markerTimestamp = ".update-timestamp"
)

var (
	// ErrPrefixNotFound is the sentinel error wrapped by NotFoundError.
	ErrPrefixNotFound = errors.New("wine prefix not found")
	// ErrInvalidSearchDepth is the sentinel error wrapped by InvalidSearchDepthError.
	ErrInvalidSearchDepth = errors.New("invalid search depth")
)

type (
	// Prefix is a directory identified as a Wine prefix root. It is only
	// ever discovered, never created or modified.
	Prefix struct {
		// Root is the prefix root directory.
		Root types.FilesystemPath
	}

	// NotFoundError is returned when no qualifying prefix root exists
	// within the search bounds.
	NotFoundError struct {
		Executable types.FilesystemPath
		MaxDepth   int
	}

	// InvalidSearchDepthError is returned when Locate is called with a
	// maximum depth below 1.
	InvalidSearchDepthError struct {
		Depth int
	}

	// Locator walks upward from an executable looking for a prefix root.
	// HomeDir is a hard stop boundary for the walk; when empty, the
	// current user's home directory is resolved on first use. Tests set
	// it explicitly to keep the walk inside a temp tree.
	Locator struct {
		HomeDir types.FilesystemPath
	}
)

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find a wine prefix for %q, tried with a %d depth", e.Executable, e.MaxDepth)
}

// Unwrap returns ErrPrefixNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrPrefixNotFound }

// Error implements the error interface for InvalidSearchDepthError.
func (e *InvalidSearchDepthError) Error() string {
	return fmt.Sprintf("can't use a search depth less than 1, %d was passed", e.Depth)
}

// Unwrap returns ErrInvalidSearchDepth for errors.Is() compatibility.
func (e *InvalidSearchDepthError) Unwrap() error { return ErrInvalidSearchDepth }

// NewLocator creates a Locator bounded by the current user's home directory.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate walks upward from the executable's containing directory and
// returns the first (nearest) directory that qualifies as a prefix root.
// At most maxDepth directories are examined, and the walk stops when it
// reaches the home directory. The home directory itself is never tested
// as a candidate: it is a boundary, not a prefix. Even a home directory
// that structurally qualifies yields a NotFoundError.
func (l *Locator) Locate(executable types.FilesystemPath, maxDepth int) (Prefix, error) {
	if maxDepth < 1 {
		return Prefix{}, &InvalidSearchDepthError{Depth: maxDepth}
	}

	home := l.HomeDir
	if home == "" {
		resolved, err := fspath.UserHome()
		if err != nil {
			return Prefix{}, err
		}
		home = resolved
	}

	dir := fspath.Dir(executable)
	for steps := 0; steps < maxDepth && dir != home; steps++ {
		if isPrefixRoot(dir) {
			slog.Debug("found wine prefix", "root", dir, "steps", steps)
			return Prefix{Root: dir}, nil
		}
		dir = fspath.Dir(dir)
	}

	return Prefix{}, &NotFoundError{Executable: executable, MaxDepth: maxDepth}
}

// isPrefixRoot reports whether dir has both structural markers as direct
// children: the drive_c directory and the .update-timestamp file.
func isPrefixRoot(dir types.FilesystemPath) bool {
	entries, err := fspath.ListDir(dir)
	if err != nil {
		slog.Debug("skipping unreadable directory during prefix search", "dir", dir, "error", err)
		return false
	}

	var hasDriveC, hasTimestamp bool
	for _, entry := range entries {
		switch entry.Name() {
		case markerDriveC:
			hasDriveC = entry.IsDir()
		case markerTimestamp:
			hasTimestamp = !entry.IsDir()
		}
	}
	return hasDriveC && hasTimestamp
}
