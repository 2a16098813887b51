package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gooseboy/gooseboy/internal/artifact"
	"github.com/gooseboy/gooseboy/internal/cargo"
	"github.com/gooseboy/gooseboy/internal/install"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"toolchain missing", fmt.Errorf("wrapped: %w", cargo.ErrToolchainMissing), exitBuild},
		{"invalid crate", cargo.ErrInvalidCrate, exitBuild},
		{"compile failed", &cargo.CompileError{ExitCode: 101}, exitBuild},
		{"artifact not found", &artifact.NotFoundError{Dir: "target/debug", Name: "my_plugin"}, exitLocate},
		{"ambiguous artifact", &artifact.AmbiguousError{Dir: "d", Candidates: []string{"a", "b"}}, exitLocate},
		{"destination unavailable", fmt.Errorf("install: %w", install.ErrDestinationUnavailable), exitInstall},
		{"copy failed", install.ErrCopyFailed, exitInstall},
		{"anything else", errors.New("bad flag"), exitUsage},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("%s: exitCode = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestProfile(t *testing.T) {
	if got := profile(true); got != cargo.Release {
		t.Errorf("profile(true) = %q, want %q", got, cargo.Release)
	}
	if got := profile(false); got != cargo.Debug {
		t.Errorf("profile(false) = %q, want %q", got, cargo.Debug)
	}
}
