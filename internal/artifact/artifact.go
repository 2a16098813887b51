// Package artifact locates compiled plugin libraries in cargo build output.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Descriptor identifies exactly one dynamic-library file in a build
// output directory.
type Descriptor struct {
	SourcePath  string // absolute or caller-relative path to the library file
	LogicalName string // crate name with prefix/extension stripped, underscores
	Extension   string // matched platform extension, including the dot
}

// convention is one platform's dynamic-library naming scheme.
type convention struct {
	prefix string
	ext    string
}

// All three schemes are checked regardless of host OS: the loader consumes a
// canonical name, and matching every scheme is what lets Locate detect an
// output directory polluted with artifacts from another platform.
var conventions = []convention{
	{"lib", ".so"},
	{"lib", ".dylib"},
	{"", ".dll"},
}

// Normalize maps a declared crate name to the identifier cargo uses in
// output file names (hyphens become underscores).
func Normalize(crateName string) string {
	return strings.ReplaceAll(crateName, "-", "_")
}

// Locate scans outputDir (non-recursively; cargo nests intermediate
// directories that must not be searched) for the dynamic-library artifact of
// crateName. Exactly one file must match; zero or several is an error.
func Locate(outputDir, crateName string) (Descriptor, error) {
	name := Normalize(crateName)

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return Descriptor{}, fmt.Errorf("read output dir: %w", err)
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		present[e.Name()] = true
	}

	var matches []Descriptor
	for _, c := range conventions {
		file := c.prefix + name + c.ext
		if present[file] {
			matches = append(matches, Descriptor{
				SourcePath:  filepath.Join(outputDir, file),
				LogicalName: name,
				Extension:   c.ext,
			})
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Descriptor{}, &NotFoundError{Dir: outputDir, Name: name}
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = filepath.Base(m.SourcePath)
		}
		sort.Strings(candidates)
		return Descriptor{}, &AmbiguousError{Dir: outputDir, Candidates: candidates}
	}
}
