// Package cargo wraps the cargo build workflow for gooseboy plugin crates.
package cargo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// Profile selects the cargo build profile.
type Profile string

const (
	Debug   Profile = "debug"
	Release Profile = "release"
)

// BuildRequest describes a single build invocation. It is consumed once.
type BuildRequest struct {
	CrateRoot string
	Profile   Profile
	Target    string // optional target triple
}

// BuildResult reports the outcome of a build invocation.
type BuildResult struct {
	Success   bool
	ExitCode  int
	OutputDir string
}

// Toolchain drives a cargo binary. Stdout and Stderr receive the compiler's
// output unmodified so the user sees native diagnostics.
type Toolchain struct {
	Bin    string
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Toolchain wired to the cargo on PATH and the process streams.
func New() *Toolchain {
	return &Toolchain{
		Bin:    "cargo",
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Build runs "cargo build" for the request and blocks until cargo exits.
//
// The returned BuildResult's OutputDir is the conventional profile directory
// under CrateRoot/target. A nonzero cargo exit is reported as *CompileError;
// compile failures belong to cargo and are never retried here.
func (t *Toolchain) Build(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	bin, err := exec.LookPath(t.Bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %q not found on PATH", ErrToolchainMissing, t.Bin)
	}
	if err := checkCrateRoot(req.CrateRoot); err != nil {
		return nil, err
	}

	args := []string{"build"}
	if req.Profile == Release {
		args = append(args, "--release")
	}
	if req.Target != "" {
		args = append(args, "--target", req.Target)
	}

	slog.Debug("running cargo", "bin", bin, "args", args, "dir", req.CrateRoot)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = req.CrateRoot
	cmd.Stdout = t.Stdout
	cmd.Stderr = t.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CompileError{ExitCode: exitErr.ExitCode()}
		}
		return nil, fmt.Errorf("run cargo: %w", err)
	}

	return &BuildResult{
		Success:   true,
		ExitCode:  0,
		OutputDir: OutputDir(filepath.Join(req.CrateRoot, "target"), req.Profile, req.Target),
	}, nil
}

// OutputDir returns the directory cargo writes final artifacts to for the
// given target directory, profile and optional target triple.
func OutputDir(targetDir string, profile Profile, triple string) string {
	if profile == "" {
		profile = Debug
	}
	if triple != "" {
		return filepath.Join(targetDir, triple, string(profile))
	}
	return filepath.Join(targetDir, string(profile))
}

// checkCrateRoot verifies dir holds a cargo manifest.
func checkCrateRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidCrate, dir)
	}
	if _, err := os.Stat(filepath.Join(dir, "Cargo.toml")); err != nil {
		return fmt.Errorf("%w: no Cargo.toml in %s", ErrInvalidCrate, dir)
	}
	return nil
}
