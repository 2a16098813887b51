// Package install copies a located plugin artifact into the mod directory.
package install

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gooseboy/gooseboy/internal/artifact"
)

var (
	// ErrDestinationUnavailable reports that the mod directory could not be
	// created or written.
	ErrDestinationUnavailable = errors.New("destination unavailable")

	// ErrCopyFailed reports an I/O failure while transferring the artifact.
	// The destination file, if one existed, is left untouched.
	ErrCopyFailed = errors.New("copy failed")
)

// Target is the installed artifact's final location.
type Target struct {
	Dir  string
	Name string
	Path string
}

// Install copies the artifact's bytes to destDir under its logical name,
// creating destDir if absent and overwriting any existing file. Re-running
// with an unchanged artifact yields a byte-identical destination file.
//
// The installed name carries no platform prefix or extension: the mod loader
// resolves plugins by canonical crate name regardless of host OS.
func Install(desc artifact.Descriptor, destDir string) (Target, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Target{}, fmt.Errorf("%w: %v", ErrDestinationUnavailable, err)
	}

	src, err := os.Open(desc.SourcePath)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	defer src.Close()

	slog.Debug("installing artifact", "src", desc.SourcePath, "dir", destDir, "name", desc.LogicalName)

	return installFrom(src, destDir, desc.LogicalName)
}

// installFrom stages r's bytes in a temp file inside destDir and renames it
// into place, so a concurrent reader of destDir never sees a partial file.
func installFrom(r io.Reader, destDir, name string) (Target, error) {
	tmp, err := os.CreateTemp(destDir, "."+name+".tmp-*")
	if err != nil {
		return Target{}, fmt.Errorf("%w: %v", ErrDestinationUnavailable, err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return Target{}, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return Target{}, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return Target{}, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	finalPath := filepath.Join(destDir, name)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return Target{}, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	return Target{Dir: destDir, Name: name, Path: finalPath}, nil
}
