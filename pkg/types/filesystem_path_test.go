// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

// TestFilesystemPath_Validate verifies that empty and whitespace-only paths
// are rejected and everything else is accepted.
func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		wantErr bool
	}{
		{name: "absolute path", path: "/home/user/game.exe", wantErr: false},
		{name: "relative path", path: "games/game.exe", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "whitespace only", path: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.path.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidFilesystemPath) {
				t.Errorf("Validate() error = %v, want ErrInvalidFilesystemPath", err)
			}
		})
	}
}

// TestFilesystemPath_String verifies the string conversion round-trips.
func TestFilesystemPath_String(t *testing.T) {
	t.Parallel()

	p := FilesystemPath("/some/path")
	if got := p.String(); got != "/some/path" {
		t.Errorf("String() = %q, want %q", got, "/some/path")
	}
}
