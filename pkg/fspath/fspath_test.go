// SPDX-License-Identifier: MPL-2.0

package fspath

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"wineceptor-cli/pkg/types"
)

// TestJoin verifies typed joining of path segments.
func TestJoin(t *testing.T) {
	t.Parallel()

	got := Join("a", "b", "c")
	want := types.FilesystemPath(filepath.Join("a", "b", "c"))
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

// TestJoinStr verifies joining a typed base with raw string segments.
func TestJoinStr(t *testing.T) {
	t.Parallel()

	got := JoinStr("/prefix", "wineceptor.ini")
	want := types.FilesystemPath(filepath.Join("/prefix", "wineceptor.ini"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

// TestDir verifies the parent directory computation.
func TestDir(t *testing.T) {
	t.Parallel()

	if got := Dir("/a/b/c"); got != "/a/b" {
		t.Errorf("Dir() = %q, want %q", got, "/a/b")
	}
}

// TestBase verifies the basename computation.
func TestBase(t *testing.T) {
	t.Parallel()

	if got := Base("/a/b/game.exe"); got != "game.exe" {
		t.Errorf("Base() = %q, want %q", got, "game.exe")
	}
}

// TestCanonicalize_ResolvesSymlinks verifies that Canonicalize follows
// symlinks to the target's canonical path.
func TestCanonicalize_ResolvesSymlinks(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires elevated privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target.exe")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.exe")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	got, err := Canonicalize(types.FilesystemPath(link))
	if err != nil {
		t.Fatalf("Canonicalize() unexpected error: %v", err)
	}
	want, err := Canonicalize(types.FilesystemPath(target))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Canonicalize(link) = %q, want %q", got, want)
	}
}

// TestCanonicalize_MissingPath verifies that a nonexistent path is an error.
func TestCanonicalize_MissingPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := Canonicalize(types.FilesystemPath(filepath.Join(dir, "missing.exe"))); err == nil {
		t.Error("Canonicalize() expected error for nonexistent path, got nil")
	}
}

// TestIsFileIsDir verifies the existence probes distinguish files from
// directories.
func TestIsFileIsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsFile(types.FilesystemPath(file)) {
		t.Error("IsFile(file) = false, want true")
	}
	if IsFile(types.FilesystemPath(dir)) {
		t.Error("IsFile(dir) = true, want false")
	}
	if !IsDir(types.FilesystemPath(dir)) {
		t.Error("IsDir(dir) = false, want true")
	}
	if IsDir(types.FilesystemPath(file)) {
		t.Error("IsDir(file) = true, want false")
	}
	if IsFile(types.FilesystemPath(filepath.Join(dir, "missing"))) {
		t.Error("IsFile(missing) = true, want false")
	}
}

// TestListDir verifies direct children are returned and missing directories
// are errors.
func TestListDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "b"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := ListDir(types.FilesystemPath(dir))
	if err != nil {
		t.Fatalf("ListDir() unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("ListDir() returned %d entries, want 2", len(entries))
	}

	if _, err := ListDir(types.FilesystemPath(filepath.Join(dir, "missing"))); err == nil {
		t.Error("ListDir() expected error for nonexistent directory, got nil")
	}
}
