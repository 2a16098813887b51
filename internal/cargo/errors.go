package cargo

import (
	"errors"
	"fmt"
)

var (
	// ErrToolchainMissing reports that no cargo binary could be found.
	ErrToolchainMissing = errors.New("cargo toolchain missing")

	// ErrInvalidCrate reports that the crate root is not a buildable crate.
	ErrInvalidCrate = errors.New("invalid crate")
)

// CompileError reports a cargo build that ran and exited nonzero. The
// compiler's own diagnostics have already been streamed to the terminal.
type CompileError struct {
	ExitCode int
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("cargo build failed with exit code %d", e.ExitCode)
}
