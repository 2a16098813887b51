package cargo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// crateDir creates a temp directory holding a minimal Cargo.toml.
func crateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	manifest := "[package]\nname = \"my-plugin\"\nversion = \"0.1.0\"\n"
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write Cargo.toml: %v", err)
	}
	return dir
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test drives unix stand-in binaries")
	}
}

func TestBuildSuccess(t *testing.T) {
	skipOnWindows(t)
	dir := crateDir(t)

	tc := New()
	tc.Bin = "true" // stands in for a cargo that compiles cleanly

	res, err := tc.Build(context.Background(), BuildRequest{CrateRoot: dir, Profile: Release})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !res.Success || res.ExitCode != 0 {
		t.Errorf("Build() = %+v, want success with exit code 0", res)
	}
	want := filepath.Join(dir, "target", "release")
	if res.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", res.OutputDir, want)
	}
}

func TestBuildCompileFailed(t *testing.T) {
	skipOnWindows(t)
	dir := crateDir(t)

	tc := New()
	tc.Bin = "false" // stands in for a cargo whose build fails

	_, err := tc.Build(context.Background(), BuildRequest{CrateRoot: dir, Profile: Debug})
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Build() error = %v, want *CompileError", err)
	}
	if ce.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ce.ExitCode)
	}
}

func TestBuildToolchainMissing(t *testing.T) {
	dir := crateDir(t)

	tc := New()
	tc.Bin = "definitely-not-cargo-8d1f"

	_, err := tc.Build(context.Background(), BuildRequest{CrateRoot: dir})
	if !errors.Is(err, ErrToolchainMissing) {
		t.Errorf("Build() error = %v, want ErrToolchainMissing", err)
	}
}

func TestBuildInvalidCrate(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir() // no Cargo.toml

	tc := New()
	tc.Bin = "true"

	_, err := tc.Build(context.Background(), BuildRequest{CrateRoot: dir})
	if !errors.Is(err, ErrInvalidCrate) {
		t.Fatalf("Build() error = %v, want ErrInvalidCrate", err)
	}

	// An invalid crate must not leave anything behind.
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("crate root has %d entries after failed build, want 0", len(entries))
	}
}

func TestOutputDir(t *testing.T) {
	tests := []struct {
		profile Profile
		triple  string
		want    string
	}{
		{Debug, "", filepath.Join("t", "debug")},
		{Release, "", filepath.Join("t", "release")},
		{"", "", filepath.Join("t", "debug")},
		{Release, "wasm32-unknown-unknown", filepath.Join("t", "wasm32-unknown-unknown", "release")},
	}
	for _, tt := range tests {
		if got := OutputDir("t", tt.profile, tt.triple); got != tt.want {
			t.Errorf("OutputDir(t, %q, %q) = %q, want %q", tt.profile, tt.triple, got, tt.want)
		}
	}
}
