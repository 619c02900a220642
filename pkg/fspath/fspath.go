// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath and os
// functions that accept and return types.FilesystemPath, so callers get
// typed-in/typed-out path operations without casting at every site.
package fspath

import (
	"fmt"
	"os"
	"path/filepath"

	"wineceptor-cli/pkg/types"
)

// Join wraps filepath.Join, accepting and returning types.FilesystemPath.
func Join(elem ...types.FilesystemPath) types.FilesystemPath {
	strs := make([]string, len(elem))
	for i, e := range elem {
		strs[i] = string(e)
	}
	return types.FilesystemPath(filepath.Join(strs...))
}

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments. Use this when joining a validated path with literal constants
// (e.g., "wineceptor.ini") or OS-provided file names (e.g., from os.ReadDir).
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Base wraps filepath.Base for FilesystemPath.
func Base(p types.FilesystemPath) string {
	return filepath.Base(string(p))
}

// Canonicalize resolves a path to its canonical absolute form, following
// symlinks. Returns an error if the path does not exist or the underlying
// OS calls fail.
func Canonicalize(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks for %q: %w", p, err)
	}
	return types.FilesystemPath(resolved), nil
}

// IsFile reports whether p exists and is a regular file.
func IsFile(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether p exists and is a directory.
func IsDir(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && info.IsDir()
}

// ListDir returns the direct children of a directory, non-recursive.
func ListDir(p types.FilesystemPath) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(string(p))
	if err != nil {
		return nil, fmt.Errorf("listing directory %q: %w", p, err)
	}
	return entries, nil
}

// UserHome returns the current user's home directory as a typed path.
func UserHome() (types.FilesystemPath, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return types.FilesystemPath(home), nil
}
