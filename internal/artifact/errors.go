package artifact

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no dynamic-library file matched the crate name.
// Usual causes: the crate does not declare a cdylib target, or the manifest
// name does not match what was asked for.
type NotFoundError struct {
	Dir  string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no dynamic library for crate %q in %s (is crate-type set to cdylib?)", e.Name, e.Dir)
}

// AmbiguousError reports multiple files matching the same crate name. The
// locator never picks one: installing the wrong artifact silently is worse
// than failing here.
type AmbiguousError struct {
	Dir        string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple artifacts for one crate in %s: %s", e.Dir, strings.Join(e.Candidates, ", "))
}
