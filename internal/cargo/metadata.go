package cargo

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
)

// Metadata is the subset of "cargo metadata" output this tool consumes.
type Metadata struct {
	Packages        []Package `json:"packages"`
	TargetDirectory string    `json:"target_directory"`
	WorkspaceRoot   string    `json:"workspace_root"`
}

// Package describes one workspace member.
type Package struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	ManifestPath string   `json:"manifest_path"`
	Targets      []Target `json:"targets"`
}

// Target describes one build target of a package.
type Target struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

// Metadata runs "cargo metadata --format-version 1 --no-deps" in dir and
// parses the result. A missing or broken manifest is reported as
// ErrInvalidCrate.
func (t *Toolchain) Metadata(ctx context.Context, dir string) (*Metadata, error) {
	bin, err := exec.LookPath(t.Bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %q not found on PATH", ErrToolchainMissing, t.Bin)
	}
	if err := checkCrateRoot(dir); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, bin, "metadata", "--format-version", "1", "--no-deps")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: cargo metadata failed in %s: %v", ErrInvalidCrate, dir, err)
	}
	return parseMetadata(out)
}

func parseMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse cargo metadata: %w", err)
	}
	return &m, nil
}

// FindPackage returns the workspace package with the given name.
func (m *Metadata) FindPackage(name string) (*Package, error) {
	for i := range m.Packages {
		if m.Packages[i].Name == name {
			return &m.Packages[i], nil
		}
	}
	return nil, fmt.Errorf("%w: package %q not found in workspace", ErrInvalidCrate, name)
}

// PackageAt returns the workspace package whose manifest lives in dir,
// falling back to the sole package for single-crate workspaces.
func (m *Metadata) PackageAt(dir string) (*Package, error) {
	manifest := filepath.Join(dir, "Cargo.toml")
	for i := range m.Packages {
		if sameFile(m.Packages[i].ManifestPath, manifest) {
			return &m.Packages[i], nil
		}
	}
	if len(m.Packages) == 1 {
		return &m.Packages[0], nil
	}
	return nil, fmt.Errorf("%w: no package with manifest at %s", ErrInvalidCrate, manifest)
}

// Root returns the directory holding the package's manifest.
func (p *Package) Root() string {
	return filepath.Dir(p.ManifestPath)
}

// IsDylib reports whether the package declares a dynamic-library target.
func (p *Package) IsDylib() bool {
	for _, t := range p.Targets {
		for _, k := range t.Kind {
			if k == "cdylib" || k == "dylib" {
				return true
			}
		}
	}
	return false
}

func sameFile(a, b string) bool {
	ra, err1 := filepath.EvalSymlinks(a)
	rb, err2 := filepath.EvalSymlinks(b)
	if err1 == nil && err2 == nil {
		return ra == rb
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
